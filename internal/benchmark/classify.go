package benchmark

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Scale is the cost-based classification tier of an inquiry.
type Scale string

const (
	ScaleSmall     Scale = "small"
	ScaleMedium    Scale = "medium"
	ScaleLarge     Scale = "large"
	ScaleVeryLarge Scale = "veryLarge"
)

// ValidScale reports whether s is one of the four known tiers.
func ValidScale(s Scale) bool {
	switch s {
	case ScaleSmall, ScaleMedium, ScaleLarge, ScaleVeryLarge:
		return true
	}
	return false
}

// avgMonthDays is the mean Gregorian month length used for duration maths,
// so results depend only on the two instants, not on which months are spanned.
const avgMonthDays = 30.44

// ClassifyScale buckets a cost in £m into a scale tier. Boundaries are
// inclusive on the lower bound and exclusive on the upper bound.
// Returns "" when the cost is unknown.
func ClassifyScale(cost *float64) Scale {
	if cost == nil {
		return ""
	}
	switch c := *cost; {
	case c < 10:
		return ScaleSmall
	case c < 30:
		return ScaleMedium
	case c < 150:
		return ScaleLarge
	default:
		return ScaleVeryLarge
	}
}

// DurationMonths returns the rounded number of 30.44-day months between
// established and closed. A zero closed time means the case is still open and
// now is used as the end point. Returns false when established is zero.
func DurationMonths(established, closed, now time.Time) (int, bool) {
	if established.IsZero() {
		return 0, false
	}
	end := closed
	if end.IsZero() {
		end = now
	}
	days := end.Sub(established).Hours() / 24
	return int(math.Round(days / avgMonthDays)), true
}

// FormatDuration renders a month count as "N months" below a year, otherwise
// as years rounded to one decimal with correct pluralisation.
func FormatDuration(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years := math.Round(float64(months)/12*10) / 10
	s := strconv.FormatFloat(years, 'f', -1, 64)
	if years == 1 {
		return s + " year"
	}
	return s + " years"
}

// FormatYearRange renders the covered years: "2015" when opened and closed in
// the same year, "2015–2022" otherwise, "2015–ongoing" while still open.
func FormatYearRange(established, closed time.Time) string {
	if established.IsZero() {
		return ""
	}
	start := strconv.Itoa(established.Year())
	if closed.IsZero() {
		return start + "–ongoing"
	}
	end := strconv.Itoa(closed.Year())
	if start == end {
		return start
	}
	return start + "–" + end
}
