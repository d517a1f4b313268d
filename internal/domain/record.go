package domain

// SleepRecord is one journal entry per calendar night, keyed by date.
// At most one record exists per date; saving again replaces it.
type SleepRecord struct {
	// Date identifies the night being described (YYYY-MM-DD)
	Date string `json:"date"`
	// SleepTime is when the user actually fell asleep (HH:MM, 24-hour)
	SleepTime string `json:"sleepTime"`
	// WakeTime is the following morning's wake-up (HH:MM, 24-hour)
	WakeTime string `json:"wakeTime"`
	// Reasons holds late-night reason IDs; empty unless the night was late
	Reasons []string `json:"reasons"`
}

// UpsertSleepRecordRequest is the request body for saving a night.
// @Description Request payload for creating or replacing the record of a night.
type UpsertSleepRecordRequest struct {
	// Night being described, ISO date
	Date string `json:"date" validate:"required,isodate" example:"2026-01-15"`
	// Time the user fell asleep, 24-hour clock
	SleepTime string `json:"sleep_time" validate:"required,hhmm" example:"23:30"`
	// Next morning's wake-up time, 24-hour clock
	WakeTime string `json:"wake_time" validate:"required,hhmm" example:"07:30"`
	// Late-night reason IDs from the reason catalog
	Reasons []string `json:"reasons" validate:"omitempty,dive,reasonid"`
}

// SleepRecordResponse is a record annotated with its classification.
// @Description Stored sleep record plus derived lateness, duration and bucket.
type SleepRecordResponse struct {
	Date      string   `json:"date" example:"2026-01-15"`
	SleepTime string   `json:"sleep_time" example:"23:30"`
	WakeTime  string   `json:"wake_time" example:"07:30"`
	Reasons   []string `json:"reasons"`
	// Whether the sleep hour fell between 00:00 and 11:59
	IsLate bool `json:"is_late" example:"false"`
	// Total sleep duration in minutes
	DurationMinutes int `json:"duration_minutes" example:"480"`
	// Quality bucket derived from lateness and duration
	Bucket QualityBucket `json:"bucket" example:"PERFECT"`
}

// ToResponse classifies the record for display. Stored records passed API
// validation, so a parse failure here leaves the classification fields zero
// rather than failing the whole listing.
func (r *SleepRecord) ToResponse() SleepRecordResponse {
	resp := SleepRecordResponse{
		Date:      r.Date,
		SleepTime: r.SleepTime,
		WakeTime:  r.WakeTime,
		Reasons:   r.Reasons,
	}
	if resp.Reasons == nil {
		resp.Reasons = []string{}
	}
	if q, err := Classify(r.SleepTime, r.WakeTime); err == nil {
		resp.IsLate = q.IsLate
		resp.DurationMinutes = q.DurationMinutes
		resp.Bucket = q.Bucket
	}
	return resp
}

// SleepRecordListResponse is the response body for listing records.
// @Description All sleep records, newest date first.
type SleepRecordListResponse struct {
	Data []SleepRecordResponse `json:"data"`
}
