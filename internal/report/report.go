// Package report assembles one canonical report value from the current
// assessment state and renders it as plain text or a paginated PDF.
package report

import (
	"strconv"
	"strings"
	"time"

	"inquirykit/internal/assess"
	"inquirykit/internal/benchmark"
	"inquirykit/internal/catalog"
	"inquirykit/internal/model"
)

// Summary holds the headline counters.
type Summary struct {
	TotalAnswered  int `json:"totalAnswered"`
	TotalQuestions int `json:"totalQuestions"`
	GapCount       int `json:"gapCount"`
	HighRiskCount  int `json:"highRiskCount"`
}

// GapEntry is one report row of the gap list, 1-based.
type GapEntry struct {
	Index       int    `json:"index"`
	RiskLabel   string `json:"riskLabel"`
	StatusLabel string `json:"statusLabel"`
	Action      string `json:"action"`
	assess.Gap
}

// PlanningNote is one labelled free-text planning note.
type PlanningNote struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Planning is the benchmarking block. Present only when a scale is selected.
type Planning struct {
	Scale          benchmark.Scale            `json:"scale"`
	Profile        benchmark.ScaleProfile     `json:"profile"`
	CustomBudget   string                     `json:"customBudget,omitempty"`
	CustomDuration string                     `json:"customDuration,omitempty"`
	WorkingBudget  float64                    `json:"workingBudget"`
	Breakdown      []benchmark.CategoryAmount `json:"breakdown"`
	Comparators    []benchmark.Comparator     `json:"comparators"`
	Notes          []PlanningNote             `json:"notes"`
}

// QuestionNote is a per-question note within the phase detail.
type QuestionNote struct {
	QuestionText  string `json:"questionText"`
	ResponseLabel string `json:"responseLabel"`
	Note          string `json:"note"`
}

// PhaseSection is the per-phase detail block.
type PhaseSection struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Stats      assess.PhaseStats `json:"stats"`
	Commentary string            `json:"commentary,omitempty"`
	Notes      []QuestionNote    `json:"notes,omitempty"`
}

// Report is the case-neutral structure handed to the renderers.
type Report struct {
	InquiryName string         `json:"inquiryName"`
	ConsultDate string         `json:"consultDate"`
	Overall     string         `json:"overall,omitempty"`
	Planning    *Planning      `json:"planning,omitempty"`
	Summary     Summary        `json:"summary"`
	Gaps        []GapEntry     `json:"gaps"`
	Phases      []PhaseSection `json:"phases"`
}

// Assemble derives the full report value from an assessment snapshot. now
// anchors the durations of still-open comparator cases.
func Assemble(a *model.Assessment, now time.Time) *Report {
	a.Normalize()

	gaps := assess.ComputeGaps(a.Responses, a.Notes)
	stats := assess.ComputePhaseStats(a.Responses, a.Notes, a.PhaseCommentary)

	r := &Report{
		InquiryName: a.InquiryName,
		ConsultDate: a.ConsultDate,
		Overall:     strings.TrimSpace(a.OverallCommentary),
		Summary: Summary{
			TotalAnswered:  assess.TotalAnswered(a.Responses),
			TotalQuestions: catalog.TotalQuestionCount(),
			GapCount:       len(gaps),
			HighRiskCount:  assess.HighRiskCount(gaps),
		},
	}

	for i, g := range gaps {
		r.Gaps = append(r.Gaps, GapEntry{
			Index:       i + 1,
			RiskLabel:   catalog.RiskLabel[g.Question.Risk],
			StatusLabel: g.Response.StatusLabel(),
			Action:      g.Question.Guidance,
			Gap:         g,
		})
	}

	if benchmark.ValidScale(a.SelectedScale) {
		r.Planning = assemblePlanning(a, now)
	}

	for _, p := range catalog.Phases() {
		sec := PhaseSection{
			ID:         p.ID,
			Name:       p.Name,
			Stats:      stats[p.ID],
			Commentary: strings.TrimSpace(a.PhaseCommentary[p.ID]),
		}
		for _, q := range p.Questions {
			note := strings.TrimSpace(a.Notes[q.ID])
			if note == "" {
				continue
			}
			sec.Notes = append(sec.Notes, QuestionNote{
				QuestionText:  q.Text,
				ResponseLabel: a.Responses[q.ID].Label(),
				Note:          note,
			})
		}
		r.Phases = append(r.Phases, sec)
	}

	return r
}

func assemblePlanning(a *model.Assessment, now time.Time) *Planning {
	scale := a.SelectedScale
	budget := benchmark.WorkingBudget(scale, parseBudget(a.CustomBudget))

	p := &Planning{
		Scale:          scale,
		Profile:        benchmark.Profiles[scale],
		CustomBudget:   a.CustomBudget,
		CustomDuration: a.CustomDuration,
		WorkingBudget:  budget,
		Breakdown:      benchmark.Breakdown(scale, budget),
		Comparators:    benchmark.FilterCases(benchmark.Cases(now), benchmark.Filter{Scale: scale}),
	}

	for _, n := range []PlanningNote{
		{Label: "Scale assessment notes", Text: a.PlanningNotes.ScaleNotes},
		{Label: "Budget notes", Text: a.PlanningNotes.BudgetNotes},
		{Label: "Timeline notes", Text: a.PlanningNotes.TimelineNotes},
		{Label: "Comparator analysis notes", Text: a.PlanningNotes.ComparatorNotes},
	} {
		if strings.TrimSpace(n.Text) != "" {
			n.Text = strings.TrimSpace(n.Text)
			p.Notes = append(p.Notes, n)
		}
	}

	return p
}

func parseBudget(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
