// Package assess derives gap lists and per-phase statistics from the sparse
// per-question response state. All functions are pure over an immutable
// snapshot; they never fail on valid input.
package assess

import (
	"sort"
	"strings"

	"inquirykit/internal/catalog"
)

// Response is an explicit answer to a question. A question with no entry in
// the response map is unanswered; the map never stores an "unanswered" value.
type Response string

const (
	ResponseYes     Response = "yes"
	ResponsePartial Response = "partial"
	ResponseNo      Response = "no"
	ResponseNA      Response = "na"
)

// ValidResponse reports whether r is one of the four answer values.
func ValidResponse(r Response) bool {
	switch r {
	case ResponseYes, ResponsePartial, ResponseNo, ResponseNA:
		return true
	}
	return false
}

// Label returns the display label for a response; an empty response reads as
// not assessed.
func (r Response) Label() string {
	switch r {
	case ResponseYes:
		return "Yes"
	case ResponsePartial:
		return "Partial"
	case ResponseNo:
		return "No"
	case ResponseNA:
		return "N/A"
	}
	return "Not assessed"
}

// StatusLabel is the gap status wording used in reports. Only meaningful for
// the two gap responses.
func (r Response) StatusLabel() string {
	if r == ResponseNo {
		return "NOT IN PLACE"
	}
	return "PARTIALLY IN PLACE"
}

// isGap reports whether the response marks the capability absent or partial.
func isGap(r Response) bool {
	return r == ResponseNo || r == ResponsePartial
}

// Gap is a derived snapshot of one deficient answer. It is never stored;
// recompute rather than patch when the underlying state changes.
type Gap struct {
	Phase      string           `json:"phase"`
	PhaseID    string           `json:"phaseId"`
	PhaseColor string           `json:"phaseColor"`
	Question   catalog.Question `json:"question"`
	Response   Response         `json:"response"`
	Note       string           `json:"note,omitempty"`
}

// PhaseStats summarises one phase's answer state.
type PhaseStats struct {
	Total         int  `json:"total"`
	Answered      int  `json:"answered"`
	Gaps          int  `json:"gaps"`
	HighRiskGaps  int  `json:"highRiskGaps"`
	HasCommentary bool `json:"hasCommentary"`
	NotesCount    int  `json:"notesCount"`
}

var riskRank = map[catalog.Risk]int{
	catalog.RiskHigh:   0,
	catalog.RiskMedium: 1,
	catalog.RiskLow:    2,
}

// ComputeGaps collects every question answered "no" or "partial" and orders
// them by risk severity, then "no" before "partial". Ties keep catalog
// encounter order; the sort must stay stable so report output is reproducible.
func ComputeGaps(responses map[string]Response, notes map[string]string) []Gap {
	gaps := []Gap{}
	for _, p := range catalog.Phases() {
		for _, q := range p.Questions {
			r, ok := responses[q.ID]
			if !ok || !isGap(r) {
				continue
			}
			gaps = append(gaps, Gap{
				Phase:      p.Name,
				PhaseID:    p.ID,
				PhaseColor: p.Color,
				Question:   q,
				Response:   r,
				Note:       notes[q.ID],
			})
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		a, b := gaps[i], gaps[j]
		if riskRank[a.Question.Risk] != riskRank[b.Question.Risk] {
			return riskRank[a.Question.Risk] < riskRank[b.Question.Risk]
		}
		if a.Response != b.Response {
			return a.Response == ResponseNo
		}
		return false
	})
	return gaps
}

// ComputePhaseStats recomputes every phase's counters from scratch. An "na"
// answer counts as assessed but never as a gap.
func ComputePhaseStats(responses map[string]Response, notes map[string]string, commentary map[string]string) map[string]PhaseStats {
	stats := make(map[string]PhaseStats, len(catalog.Phases()))
	for _, p := range catalog.Phases() {
		s := PhaseStats{Total: len(p.Questions)}
		for _, q := range p.Questions {
			if r, ok := responses[q.ID]; ok && ValidResponse(r) {
				s.Answered++
				if isGap(r) {
					s.Gaps++
					if q.Risk == catalog.RiskHigh {
						s.HighRiskGaps++
					}
				}
			}
			if strings.TrimSpace(notes[q.ID]) != "" {
				s.NotesCount++
			}
		}
		s.HasCommentary = strings.TrimSpace(commentary[p.ID]) != ""
		stats[p.ID] = s
	}
	return stats
}

// TotalAnswered counts explicit answers across all phases.
func TotalAnswered(responses map[string]Response) int {
	n := 0
	for _, p := range catalog.Phases() {
		for _, q := range p.Questions {
			if r, ok := responses[q.ID]; ok && ValidResponse(r) {
				n++
			}
		}
	}
	return n
}

// HighRiskCount counts the high-risk entries of an already-computed gap list.
func HighRiskCount(gaps []Gap) int {
	n := 0
	for _, g := range gaps {
		if g.Question.Risk == catalog.RiskHigh {
			n++
		}
	}
	return n
}
