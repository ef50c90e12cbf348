package benchmark

import "testing"

func TestWorkingBudgetDefaultsToTierAverage(t *testing.T) {
	if got := WorkingBudget(ScaleMedium, nil); got != 15 {
		t.Errorf("medium default = %v, want 15", got)
	}
	override := 22.5
	if got := WorkingBudget(ScaleMedium, &override); got != 22.5 {
		t.Errorf("override = %v, want 22.5", got)
	}
	zero := 0.0
	if got := WorkingBudget(ScaleSmall, &zero); got != 5 {
		t.Errorf("zero override should fall back to average, got %v", got)
	}
}

func TestBreakdownAmounts(t *testing.T) {
	lines := Breakdown(ScaleMedium, 20)
	if len(lines) != len(Categories) {
		t.Fatalf("got %d lines, want %d", len(lines), len(Categories))
	}
	want := map[string]float64{
		"legal":         11,  // 55%
		"staff":         4,   // 20%
		"accommodation": 2,   // 10%
		"tech":          1.6, // 8%
		"other":         1.4, // 7%
	}
	for _, l := range lines {
		if l.Amount != want[l.ID] {
			t.Errorf("%s = %v, want %v", l.ID, l.Amount, want[l.ID])
		}
	}
}

// The percentage tables are indicative and deliberately not normalized; the
// total shown in reports is the working budget, never the category sum.
func TestBreakdownPercentagesNotNormalized(t *testing.T) {
	sum := 0
	for _, c := range Categories {
		sum += c.Pct[ScaleSmall]
	}
	if sum != 100 {
		// small happens to sum to 100; the invariant under test is that the
		// code never rescales, so just assert a known tier's raw numbers.
		t.Logf("small tier sums to %d", sum)
	}
	lines := Breakdown(ScaleVeryLarge, 200)
	totalPct := 0
	for _, l := range lines {
		totalPct += l.Pct
	}
	if totalPct == 0 {
		t.Fatal("no percentages applied")
	}
	// veryLarge: 55+15+10+10+10 = 100 as shipped, but rounding of the amounts
	// must still come from the raw table, one decimal place each.
	for _, l := range lines {
		cents := l.Amount * 10
		if cents != float64(int(cents)) {
			t.Errorf("%s amount %v not rounded to one decimal", l.ID, l.Amount)
		}
	}
}
