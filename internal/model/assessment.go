package model

import (
	"encoding/json"
	"time"

	"inquirykit/internal/assess"
	"inquirykit/internal/benchmark"
)

// PlanningNotes are the free-text fields of the planning module. Fixed keys.
type PlanningNotes struct {
	ScaleNotes      string `json:"scaleNotes,omitempty"`
	BudgetNotes     string `json:"budgetNotes,omitempty"`
	TimelineNotes   string `json:"timelineNotes,omitempty"`
	ComparatorNotes string `json:"comparatorNotes,omitempty"`
}

// Assessment is the persisted unit: one consulting assessment of one inquiry.
// ID is assigned on first save. Maps are keyed by question id (responses,
// notes) or phase id (phase commentary); an absent key means unanswered.
type Assessment struct {
	ID                string                     `json:"id,omitempty"`
	InquiryName       string                     `json:"inquiryName"`
	ConsultDate       string                     `json:"consultDate"`
	Responses         map[string]assess.Response `json:"responses"`
	Notes             map[string]string          `json:"notes"`
	PhaseCommentary   map[string]string          `json:"phaseCommentary"`
	OverallCommentary string                     `json:"overallCommentary,omitempty"`
	SelectedScale     benchmark.Scale            `json:"selectedScale,omitempty"`
	CustomBudget      string                     `json:"customBudget,omitempty"`
	CustomDuration    string                     `json:"customDuration,omitempty"`
	PlanningNotes     PlanningNotes              `json:"planningNotes"`
	SavedAt           time.Time                  `json:"savedAt"`
}

// AssessmentSummary is the list row returned by List: enough to pick one.
type AssessmentSummary struct {
	ID          string    `json:"id"`
	InquiryName string    `json:"inquiryName"`
	ConsultDate string    `json:"consultDate"`
	SavedAt     time.Time `json:"savedAt"`
}

// Normalize ensures the keyed maps are non-nil so lookups and JSON output are
// uniform regardless of how the value was produced.
func (a *Assessment) Normalize() {
	if a.Responses == nil {
		a.Responses = map[string]assess.Response{}
	}
	if a.Notes == nil {
		a.Notes = map[string]string{}
	}
	if a.PhaseCommentary == nil {
		a.PhaseCommentary = map[string]string{}
	}
}

// ExportFilename names the JSON download: {inquiryName|"assessment"}-{date}.json.
func (a *Assessment) ExportFilename() string {
	name := a.InquiryName
	if name == "" {
		name = "assessment"
	}
	date := a.ConsultDate
	if date == "" {
		date = "export"
	}
	return name + "-" + date + ".json"
}

// ExportJSON serializes the assessment for file download, indented.
func (a *Assessment) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// ImportAssessment parses an exported assessment file. A malformed file is a
// distinct error from I/O failure; callers surface it as "invalid JSON file".
func ImportAssessment(data []byte) (*Assessment, error) {
	var a Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, ErrInvalidImport
	}
	a.Normalize()
	return &a, nil
}
