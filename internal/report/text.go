package report

import (
	"fmt"
	"strconv"
	"strings"
)

var divider = strings.Repeat("─", 60)

// RenderText produces the plain-text report. Section order is fixed: title,
// overall assessment, planning, summary, gap analysis, phase detail. Optional
// sections are omitted entirely rather than rendered empty, except the gap
// section which states explicitly when no gaps exist.
func RenderText(r *Report) string {
	var b strings.Builder

	b.WriteString("INQUIRY CONSULTING ASSESSMENT\n")
	name := r.InquiryName
	if name == "" {
		name = "[Not specified]"
	}
	fmt.Fprintf(&b, "Inquiry: %s\nDate: %s\n\n", name, r.ConsultDate)

	if r.Overall != "" {
		fmt.Fprintf(&b, "OVERALL ASSESSMENT\n%s\n%s\n\n", divider, r.Overall)
	}

	if p := r.Planning; p != nil {
		fmt.Fprintf(&b, "PLANNING & BENCHMARKING\n%s\n", divider)
		fmt.Fprintf(&b, "Scale classification: %s\n", p.Profile.Label)
		fmt.Fprintf(&b, "Typical cost range: %s\n", p.Profile.CostRange)
		fmt.Fprintf(&b, "Typical duration: %s\n", p.Profile.DurationRange)
		if p.CustomBudget != "" {
			fmt.Fprintf(&b, "Working budget estimate: £%sm\n", p.CustomBudget)
		}
		if p.CustomDuration != "" {
			fmt.Fprintf(&b, "Working duration estimate: %s months\n", p.CustomDuration)
		}

		b.WriteString("Indicative cost breakdown:\n")
		for _, line := range p.Breakdown {
			fmt.Fprintf(&b, "  %s: ~£%sm (%d%%)\n", line.Label, formatAmount(line.Amount), line.Pct)
		}

		for _, n := range p.Notes {
			fmt.Fprintf(&b, "%s: %s\n", n.Label, n.Text)
		}

		b.WriteString("\nComparable inquiries:\n")
		for _, c := range p.Comparators {
			cost := "cost unknown"
			if c.Cost != nil {
				cost = "£" + formatAmount(*c.Cost) + "m"
			}
			fmt.Fprintf(&b, "  %s (%s): %s, %s — %s\n",
				c.Name, c.Year, c.Duration, cost, c.Subject)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "SUMMARY\nQuestions assessed: %d / %d\nGaps identified: %d\nHigh-risk gaps: %d\n\n",
		r.Summary.TotalAnswered, r.Summary.TotalQuestions, r.Summary.GapCount, r.Summary.HighRiskCount)

	fmt.Fprintf(&b, "GAP ANALYSIS & ACTION PLAN\n%s\n\n", divider)
	if len(r.Gaps) == 0 {
		b.WriteString("No gaps identified.\n\n")
	}
	for _, g := range r.Gaps {
		fmt.Fprintf(&b, "%d. [%s RISK] %s\n", g.Index, strings.ToUpper(g.RiskLabel), g.Question.Text)
		fmt.Fprintf(&b, "   Phase: %s\n", g.Phase)
		fmt.Fprintf(&b, "   Status: %s\n", g.StatusLabel)
		fmt.Fprintf(&b, "   Action: %s\n", g.Action)
		if g.Note != "" {
			fmt.Fprintf(&b, "   Notes: %s\n", g.Note)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nPHASE-BY-PHASE DETAIL\n%s\n\n", divider)
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "%s\n", p.Name)
		fmt.Fprintf(&b, "  Assessed: %d/%d | Gaps: %d (%d high-risk)\n",
			p.Stats.Answered, p.Stats.Total, p.Stats.Gaps, p.Stats.HighRiskGaps)
		if p.Commentary != "" {
			fmt.Fprintf(&b, "  Commentary: %s\n", p.Commentary)
		}
		for _, n := range p.Notes {
			fmt.Fprintf(&b, "  - %s [%s]: %s\n", n.QuestionText, n.ResponseLabel, n.Note)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatAmount renders £m values without trailing zeros: 11, 1.6, 74.73.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
