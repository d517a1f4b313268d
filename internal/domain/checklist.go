package domain

// ChecklistItem is one pre-sleep habit on the daily checklist.
type ChecklistItem struct {
	ID       string         `json:"id" example:"dim_lights"`
	Text     string         `json:"text" example:"Dim the lights an hour before bed"`
	Category ReasonCategory `json:"category" example:"PHYSIOLOGICAL"`
}

// ChecklistItems is the fixed pre-sleep checklist catalog.
var ChecklistItems = []ChecklistItem{
	{ID: "sun", Text: "Get sunlight during the day", Category: CategoryPhysiological},
	{ID: "no_caffeine", Text: "No caffeine after mid-afternoon", Category: CategoryPhysiological},
	{ID: "dim_lights", Text: "Dim the lights an hour before bed", Category: CategoryPhysiological},
	{ID: "shower", Text: "Shower early in the evening", Category: CategoryBehavioral},
	{ID: "bed_early", Text: "Get into bed before midnight", Category: CategoryBehavioral},
	{ID: "no_stim", Text: "No stimulating content in bed", Category: CategoryBehavioral},
	{ID: "calm_mind", Text: "Write down tomorrow's worries", Category: CategoryPsychological},
	{ID: "relax", Text: "Do something relaxing before sleep", Category: CategoryPsychological},
}

// ChecklistLogs maps a date (YYYY-MM-DD) to the completed item identifiers
// for that day. Membership toggles are idempotent per (date, item) pair.
type ChecklistLogs map[string][]string

// Completed reports whether itemID is checked off for date.
func (l ChecklistLogs) Completed(date, itemID string) bool {
	for _, id := range l[date] {
		if id == itemID {
			return true
		}
	}
	return false
}

// ChecklistDayResponse is the response body for a single day's checklist.
// @Description Completed checklist item IDs for one date.
type ChecklistDayResponse struct {
	Date      string   `json:"date" example:"2026-01-15"`
	Completed []string `json:"completed"`
}
