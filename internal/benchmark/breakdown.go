package benchmark

import "math"

// CostCategory is one line of the indicative cost breakdown with its
// tier-specific percentage of the working budget.
type CostCategory struct {
	ID    string        `json:"id"`
	Label string        `json:"label"`
	Pct   map[Scale]int `json:"pct"`
}

// Categories is the fixed breakdown table. The percentages for a tier are
// indicative and do not necessarily sum to 100; the displayed total is always
// the working budget itself, never the sum of the category amounts.
var Categories = []CostCategory{
	{ID: "legal", Label: "Legal costs (counsel, solicitor, CP funding)", Pct: map[Scale]int{ScaleSmall: 40, ScaleMedium: 55, ScaleLarge: 60, ScaleVeryLarge: 55}},
	{ID: "staff", Label: "Secretariat staff and operations", Pct: map[Scale]int{ScaleSmall: 30, ScaleMedium: 20, ScaleLarge: 15, ScaleVeryLarge: 15}},
	{ID: "accommodation", Label: "Accommodation and hearings", Pct: map[Scale]int{ScaleSmall: 10, ScaleMedium: 10, ScaleLarge: 10, ScaleVeryLarge: 10}},
	{ID: "tech", Label: "Technology and eDiscovery", Pct: map[Scale]int{ScaleSmall: 10, ScaleMedium: 8, ScaleLarge: 8, ScaleVeryLarge: 10}},
	{ID: "other", Label: "Other (comms, travel, experts, contingency)", Pct: map[Scale]int{ScaleSmall: 10, ScaleMedium: 7, ScaleLarge: 7, ScaleVeryLarge: 10}},
}

// CategoryAmount is one computed breakdown line for a given working budget.
type CategoryAmount struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Pct    int     `json:"pct"`
	Amount float64 `json:"amount"`
}

// WorkingBudget resolves the budget in £m for a tier: the user override when
// present, otherwise the tier's average cost.
func WorkingBudget(scale Scale, override *float64) float64 {
	if override != nil && *override > 0 {
		return *override
	}
	return Profiles[scale].AvgCost
}

// Breakdown applies the category percentages for the tier to the working
// budget. Amounts are rounded to one decimal place of £m.
func Breakdown(scale Scale, budget float64) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(Categories))
	for _, cat := range Categories {
		pct := cat.Pct[scale]
		out = append(out, CategoryAmount{
			ID:     cat.ID,
			Label:  cat.Label,
			Pct:    pct,
			Amount: math.Round(budget*float64(pct)/100*10) / 10,
		})
	}
	return out
}
