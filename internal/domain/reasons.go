package domain

// ReasonCategory groups late-night reasons into four fixed buckets.
// @Description Reason category: PSYCHOLOGICAL, BEHAVIORAL, PHYSIOLOGICAL or EXTERNAL.
type ReasonCategory string

const (
	CategoryPsychological ReasonCategory = "PSYCHOLOGICAL"
	CategoryBehavioral    ReasonCategory = "BEHAVIORAL"
	CategoryPhysiological ReasonCategory = "PHYSIOLOGICAL"
	CategoryExternal      ReasonCategory = "EXTERNAL"
)

// ReasonCategories lists all categories in their canonical display order.
var ReasonCategories = []ReasonCategory{
	CategoryPsychological,
	CategoryBehavioral,
	CategoryPhysiological,
	CategoryExternal,
}

// LateReason is a selectable cause for staying up late.
type LateReason struct {
	ID       string         `json:"id" example:"beh_phone"`
	Label    string         `json:"label" example:"Scrolling on the phone"`
	Category ReasonCategory `json:"category" example:"BEHAVIORAL"`
}

// LateReasons is the fixed reason catalog. Every reason identifier maps to
// exactly one category; aggregation receives this table explicitly rather
// than inferring categories from identifier strings.
var LateReasons = []LateReason{
	{ID: "psy_revenge", Label: "Revenge bedtime procrastination", Category: CategoryPsychological},
	{ID: "psy_mood", Label: "Low mood or feeling down", Category: CategoryPsychological},
	{ID: "psy_escape", Label: "Avoiding tomorrow", Category: CategoryPsychological},
	{ID: "psy_stress", Label: "Stress or racing thoughts", Category: CategoryPsychological},
	{ID: "beh_shower", Label: "Put off showering", Category: CategoryBehavioral},
	{ID: "beh_phone", Label: "Scrolling on the phone", Category: CategoryBehavioral},
	{ID: "beh_binge", Label: "Binge watching", Category: CategoryBehavioral},
	{ID: "beh_game", Label: "Gaming", Category: CategoryBehavioral},
	{ID: "beh_chat", Label: "Chatting", Category: CategoryBehavioral},
	{ID: "beh_work", Label: "Working late", Category: CategoryBehavioral},
	{ID: "beh_learn", Label: "Studying", Category: CategoryBehavioral},
	{ID: "beh_explore", Label: "Falling down rabbit holes", Category: CategoryBehavioral},
	{ID: "beh_zone", Label: "Zoning out", Category: CategoryBehavioral},
	{ID: "phy_self", Label: "Masturbation", Category: CategoryPhysiological},
	{ID: "phy_caffeine", Label: "Caffeine too late", Category: CategoryPhysiological},
	{ID: "phy_hunger", Label: "Late-night hunger", Category: CategoryPhysiological},
	{ID: "phy_excited", Label: "Too wired to sleep", Category: CategoryPhysiological},
	{ID: "ext_social", Label: "Social obligations", Category: CategoryExternal},
	{ID: "ext_other", Label: "Other external causes", Category: CategoryExternal},
}

// ReasonByID returns the catalog entry for a reason identifier.
func ReasonByID(id string) (LateReason, bool) {
	for _, r := range LateReasons {
		if r.ID == id {
			return r, true
		}
	}
	return LateReason{}, false
}
