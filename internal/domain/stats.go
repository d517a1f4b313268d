package domain

import "time"

// ReasonCount is one ranked late-night reason with its frequency.
type ReasonCount struct {
	ID       string         `json:"id" example:"beh_phone"`
	Label    string         `json:"label" example:"Scrolling on the phone"`
	Count    int            `json:"count" example:"4"`
	Category ReasonCategory `json:"category,omitempty" example:"BEHAVIORAL"`
}

// CategoryCount is one slice of the reason-category distribution. Categories
// with zero hits are omitted entirely.
type CategoryCount struct {
	Category ReasonCategory `json:"category" example:"BEHAVIORAL"`
	Count    int            `json:"count" example:"6"`
}

// Stats is the windowed aggregation over the most recent nights.
// @Description Trailing-window sleep statistics.
type Stats struct {
	// Nights in the window with a late sleep hour
	LateCount int `json:"late_count" example:"3"`
	// Nights in the window with under 7h of sleep
	InsufficientCount int `json:"insufficient_count" example:"2"`
	// Reasons ranked by descending frequency, truncated per window size
	TopReasons []ReasonCount `json:"top_reasons"`
	// Nonzero per-category reason totals
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	// Actual number of nights examined (may be under the window size)
	TotalTracked int `json:"total_tracked" example:"7"`
}

// AnalysisResponse is the response body for the trend narrative endpoint.
// @Description Generated (or cached) coaching narrative.
type AnalysisResponse struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at" example:"2026-01-15T08:12:44Z"`
	// True when an unexpired cached narrative was returned without a new
	// generation call
	Cached bool `json:"cached" example:"false"`
}
