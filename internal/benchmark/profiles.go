package benchmark

// ScaleProfile carries the planning defaults and display copy for one tier.
type ScaleProfile struct {
	Label         string  `json:"label"`
	CostRange     string  `json:"costRange"`
	DurationRange string  `json:"durationRange"`
	Description   string  `json:"description"`
	AvgCost       float64 `json:"avgCost"`
	AvgMonths     int     `json:"avgMonths"`
}

// ScaleOrder is the display order of the four tiers.
var ScaleOrder = []Scale{ScaleSmall, ScaleMedium, ScaleLarge, ScaleVeryLarge}

// Profiles maps each scale tier to its planning profile.
var Profiles = map[Scale]ScaleProfile{
	ScaleSmall: {
		Label:         "Small / Focused",
		CostRange:     "£1–10m",
		DurationRange: "3–12 months",
		Description:   "Narrow terms of reference, limited witnesses, single issue. E.g. Hutton.",
		AvgCost:       5,
		AvgMonths:     8,
	},
	ScaleMedium: {
		Label:         "Medium",
		CostRange:     "£5–30m",
		DurationRange: "1–3 years",
		Description:   "Moderate scope, multiple witness groups, some oral hearings. E.g. Leveson.",
		AvgCost:       15,
		AvgMonths:     24,
	},
	ScaleLarge: {
		Label:         "Large / Complex",
		CostRange:     "£30–180m",
		DurationRange: "3–8 years",
		Description:   "Broad scope, extensive documentary evidence, prolonged hearings. E.g. Grenfell, Infected Blood.",
		AvgCost:       100,
		AvgMonths:     60,
	},
	ScaleVeryLarge: {
		Label:         "Very Large / Systemic",
		CostRange:     "£150–250m+",
		DurationRange: "5–12+ years",
		Description:   "Multiple modules, systemic issues, massive evidence volumes. E.g. IICSA, Covid-19.",
		AvgCost:       200,
		AvgMonths:     96,
	},
}
