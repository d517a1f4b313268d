package domain

// DaySlot is one cell of the month grid. The leading slots of a month are
// empty placeholders that align day 1 under its weekday column.
type DaySlot struct {
	// Empty marks a placeholder before day 1
	Empty bool `json:"empty"`
	// Date of the slot, ISO (absent on placeholders)
	Date string `json:"date,omitempty" example:"2026-01-15"`
	// Day number within the month, 1-based (0 on placeholders)
	Day int `json:"day,omitempty" example:"15"`
	// Quality bucket for the night, or absent when no record exists
	Bucket QualityBucket `json:"bucket,omitempty" example:"PERFECT"`
}

// CalendarResponse is the response body for the month grid endpoint.
// @Description Month grid slots aligned to weekday columns, Sunday first.
type CalendarResponse struct {
	Year  int       `json:"year" example:"2026"`
	Month int       `json:"month" example:"1"`
	Slots []DaySlot `json:"slots"`
}
