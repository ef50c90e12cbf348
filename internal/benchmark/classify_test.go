package benchmark

import (
	"testing"
	"time"
)

func TestClassifyScaleBoundaries(t *testing.T) {
	tests := []struct {
		name string
		cost *float64
		want Scale
	}{
		{"unknown", nil, ""},
		{"just under small cap", fp(9.99), ScaleSmall},
		{"small cap is medium", fp(10), ScaleMedium},
		{"just under medium cap", fp(29.99), ScaleMedium},
		{"medium cap is large", fp(30), ScaleLarge},
		{"just under large cap", fp(149.99), ScaleLarge},
		{"large cap is very large", fp(150), ScaleVeryLarge},
		{"zero", fp(0), ScaleSmall},
		{"huge", fp(250), ScaleVeryLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyScale(tt.cost); got != tt.want {
				t.Errorf("ClassifyScale = %q, want %q", got, tt.want)
			}
		})
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDurationMonths(t *testing.T) {
	now := date("2026-01-01")

	months, ok := DurationMonths(date("2020-01-01"), date("2021-01-01"), now)
	if !ok {
		t.Fatal("expected ok for a closed range")
	}
	// 366 days / 30.44 rounds to 12
	if months != 12 {
		t.Errorf("one year = %d months, want 12", months)
	}

	// open case anchors on now
	months, ok = DurationMonths(date("2025-01-01"), time.Time{}, now)
	if !ok || months != 12 {
		t.Errorf("open case = %d months (ok=%v), want 12", months, ok)
	}

	if _, ok := DurationMonths(time.Time{}, date("2021-01-01"), now); ok {
		t.Error("zero established should not classify")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{6, "6 months"},
		{11, "11 months"},
		{12, "1 year"},
		{18, "1.5 years"},
		{91, "7.6 years"},
		{0, "0 months"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.months); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestFormatYearRange(t *testing.T) {
	tests := []struct {
		name        string
		established string
		closed      string
		want        string
	}{
		{"spanning years", "2015-03-12", "2022-10-20", "2015–2022"},
		{"same year", "2004-01-05", "2004-06-22", "2004"},
		{"ongoing", "2022-04-28", "", "2022–ongoing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatYearRange(date(tt.established), parseDate(tt.closed))
			if got != tt.want {
				t.Errorf("FormatYearRange = %q, want %q", got, tt.want)
			}
		})
	}

	if got := FormatYearRange(time.Time{}, time.Time{}); got != "" {
		t.Errorf("zero established = %q, want empty", got)
	}
}

// The IICSA scenario: cost 250, 2015-03-12 to 2022-10-20.
func TestBenchmarkScenario(t *testing.T) {
	cost := 250.0
	if got := ClassifyScale(&cost); got != ScaleVeryLarge {
		t.Errorf("scale = %q, want veryLarge", got)
	}
	est, closed := date("2015-03-12"), date("2022-10-20")
	if got := FormatYearRange(est, closed); got != "2015–2022" {
		t.Errorf("year = %q, want 2015–2022", got)
	}
	months, ok := DurationMonths(est, closed, date("2026-01-01"))
	if !ok {
		t.Fatal("expected ok")
	}
	if got := FormatDuration(months); got != "7.6 years" {
		t.Errorf("duration = %q (months=%d), want 7.6 years", got, months)
	}
}
