package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"inquirykit/internal/assess"
	"inquirykit/internal/benchmark"
	"inquirykit/internal/model"
)

var assembleNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func fullAssessment() *model.Assessment {
	return &model.Assessment{
		InquiryName: "Test Inquiry",
		ConsultDate: "2026-08-01",
		Responses: map[string]assess.Response{
			"est-1":  assess.ResponseYes,
			"est-2":  assess.ResponseNo,      // high risk gap
			"est-6":  assess.ResponsePartial, // medium risk gap
			"team-1": assess.ResponseNA,
		},
		Notes:             map[string]string{"est-2": "consultation outstanding"},
		PhaseCommentary:   map[string]string{"establish": "setup underway"},
		OverallCommentary: "The inquiry is at an early stage.",
		SelectedScale:     benchmark.ScaleMedium,
		CustomBudget:      "20",
		CustomDuration:    "30",
		PlanningNotes:     model.PlanningNotes{BudgetNotes: "tight envelope"},
	}
}

func TestAssembleSummaryAndGaps(t *testing.T) {
	r := Assemble(fullAssessment(), assembleNow)

	if r.Summary.TotalAnswered != 4 {
		t.Errorf("totalAnswered = %d, want 4", r.Summary.TotalAnswered)
	}
	if r.Summary.GapCount != 2 || r.Summary.HighRiskCount != 1 {
		t.Errorf("gaps = %d high = %d, want 2/1", r.Summary.GapCount, r.Summary.HighRiskCount)
	}
	if len(r.Gaps) != 2 {
		t.Fatalf("gap entries = %d", len(r.Gaps))
	}
	first := r.Gaps[0]
	if first.Index != 1 || first.Question.ID != "est-2" {
		t.Errorf("first gap = #%d %s, want #1 est-2", first.Index, first.Question.ID)
	}
	if first.StatusLabel != "NOT IN PLACE" || first.RiskLabel != "High" {
		t.Errorf("labels = %s / %s", first.StatusLabel, first.RiskLabel)
	}
	if first.Action == "" {
		t.Error("gap action should carry the question guidance")
	}
}

func TestAssemblePlanningBlock(t *testing.T) {
	r := Assemble(fullAssessment(), assembleNow)
	if r.Planning == nil {
		t.Fatal("planning block missing with a selected scale")
	}
	p := r.Planning
	if p.WorkingBudget != 20 {
		t.Errorf("working budget = %v, want the 20 override", p.WorkingBudget)
	}
	if len(p.Breakdown) != len(benchmark.Categories) {
		t.Errorf("breakdown lines = %d", len(p.Breakdown))
	}
	for _, c := range p.Comparators {
		if c.Scale != benchmark.ScaleMedium {
			t.Errorf("comparator %s has scale %s", c.Name, c.Scale)
		}
	}
	if len(p.Notes) != 1 || p.Notes[0].Label != "Budget notes" {
		t.Errorf("planning notes = %+v", p.Notes)
	}
}

func TestAssembleOmitsPlanningWithoutScale(t *testing.T) {
	a := fullAssessment()
	a.SelectedScale = ""
	r := Assemble(a, assembleNow)
	if r.Planning != nil {
		t.Error("planning block should be omitted when no scale is selected")
	}
	if strings.Contains(RenderText(r), "PLANNING & BENCHMARKING") {
		t.Error("text report should not contain a planning section")
	}
}

func TestRenderTextSectionOrder(t *testing.T) {
	text := RenderText(Assemble(fullAssessment(), assembleNow))

	sections := []string{
		"INQUIRY CONSULTING ASSESSMENT",
		"OVERALL ASSESSMENT",
		"PLANNING & BENCHMARKING",
		"SUMMARY",
		"GAP ANALYSIS & ACTION PLAN",
		"PHASE-BY-PHASE DETAIL",
	}
	last := -1
	for _, s := range sections {
		i := strings.Index(text, s)
		if i < 0 {
			t.Fatalf("section %q missing", s)
		}
		if i < last {
			t.Fatalf("section %q out of order", s)
		}
		last = i
	}
}

func TestRenderTextGapEntries(t *testing.T) {
	text := RenderText(Assemble(fullAssessment(), assembleNow))

	for _, want := range []string{
		"1. [HIGH RISK] Have terms of reference been drafted and consulted on?",
		"Status: NOT IN PLACE",
		"Status: PARTIALLY IN PLACE",
		"Notes: consultation outstanding",
		"Questions assessed: 4 /",
		"Working budget estimate: £20m",
		"Commentary: setup underway",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderTextNoGaps(t *testing.T) {
	a := &model.Assessment{InquiryName: "Clean", ConsultDate: "2026-08-01"}
	text := RenderText(Assemble(a, assembleNow))
	if !strings.Contains(text, "No gaps identified.") {
		t.Error("empty gap list must state itself explicitly")
	}
	if !strings.Contains(text, "Inquiry: Clean") {
		t.Error("title missing")
	}
}

func TestRenderTextComparatorWithoutCost(t *testing.T) {
	r := Assemble(fullAssessment(), assembleNow)
	r.Planning.Comparators = append(r.Planning.Comparators, benchmark.Comparator{
		Case: benchmark.Case{Name: "Undercosted Inquiry", Subject: "Test subject"},
		Year: "2020–ongoing",
	})

	text := RenderText(r)
	if !strings.Contains(text, "Undercosted Inquiry (2020–ongoing): , cost unknown — Test subject") {
		t.Error("nil-cost comparator not rendered with an explicit unknown cost")
	}
}

func TestRenderTextDeterministic(t *testing.T) {
	a := fullAssessment()
	first := RenderText(Assemble(a, assembleNow))
	second := RenderText(Assemble(a, assembleNow))
	if first != second {
		t.Error("identical state must render identically")
	}
}

func TestRenderPDFNonASCIIText(t *testing.T) {
	a := fullAssessment()
	// The planning profile ranges carry "£" and an en-dash; push more
	// non-ASCII through the wrapped body and gap-table paths too.
	a.Notes["est-2"] = "budget capped at £5m – chair's view"
	a.PhaseCommentary["establish"] = "café-style sessions considered — rejected"

	data, err := RenderPDF(Assemble(a, assembleNow))
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(Assemble(fullAssessment(), assembleNow))
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}

	empty, err := RenderPDF(Assemble(&model.Assessment{ConsultDate: "2026-08-01"}, assembleNow))
	if err != nil {
		t.Fatalf("RenderPDF empty: %v", err)
	}
	if len(empty) == 0 {
		t.Error("empty assessment should still render a document")
	}
}
