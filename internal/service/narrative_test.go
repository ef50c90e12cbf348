package service

import (
	"fmt"
	"strings"
	"testing"

	"inquirykit/internal/assess"
	"inquirykit/internal/benchmark"
	"inquirykit/internal/catalog"
	"inquirykit/internal/model"
)

func testAssessment() *model.Assessment {
	phases := catalog.Phases()
	q1 := phases[0].Questions[0]
	q2 := phases[0].Questions[1]

	return &model.Assessment{
		InquiryName: "Test Inquiry",
		ConsultDate: "2026-08-01",
		Responses: map[string]assess.Response{
			q1.ID: assess.ResponseYes,
			q2.ID: assess.ResponseNo,
		},
		Notes: map[string]string{
			q2.ID: "procurement not started",
		},
		PhaseCommentary: map[string]string{
			phases[0].ID: "early days",
		},
		SelectedScale:  benchmark.ScaleMedium,
		CustomBudget:   "25",
		CustomDuration: "30",
	}
}

func TestBuildContextHeaderAndPlanning(t *testing.T) {
	ctx := BuildContext(testAssessment())

	for _, want := range []string{
		"Assessment for: Test Inquiry (2026-08-01)",
		"Scale classification: medium",
		"Working budget: £25m",
		"Working duration: 30 months",
	} {
		if !strings.Contains(ctx, want) {
			t.Errorf("context missing %q", want)
		}
	}
}

func TestBuildContextUnnamedInquiry(t *testing.T) {
	a := testAssessment()
	a.InquiryName = ""
	if !strings.Contains(BuildContext(a), "Assessment for: Unnamed inquiry") {
		t.Error("empty name should fall back to Unnamed inquiry")
	}
}

func TestBuildContextAnsweredQuestionsAndGaps(t *testing.T) {
	a := testAssessment()
	ctx := BuildContext(a)

	phases := catalog.Phases()
	q1 := phases[0].Questions[0]
	q2 := phases[0].Questions[1]

	if !strings.Contains(ctx, fmt.Sprintf("- [Yes] %s", q1.Text)) {
		t.Error("answered question missing from context")
	}
	if !strings.Contains(ctx, fmt.Sprintf("- [No] %s | Notes: procurement not started", q2.Text)) {
		t.Error("no-response with note missing from context")
	}
	if !strings.Contains(ctx, "Phase commentary: early days") {
		t.Error("phase commentary missing from context")
	}
	if !strings.Contains(ctx, "GAPS IDENTIFIED (1 total):") {
		t.Error("gap section missing from context")
	}
	if !strings.Contains(ctx, "(Not in place)") {
		t.Error("gap status missing from context")
	}

	// Unanswered questions must not appear.
	q3 := phases[0].Questions[2]
	if strings.Contains(ctx, q3.Text) {
		t.Error("unanswered question leaked into context")
	}
}

func TestBuildContextDeterministic(t *testing.T) {
	a := testAssessment()
	first := BuildContext(a)
	for i := 0; i < 5; i++ {
		if BuildContext(a) != first {
			t.Fatal("context output is not deterministic")
		}
	}
}

func TestPromptsCarryIntent(t *testing.T) {
	a := testAssessment()
	phases := catalog.Phases()

	overall := overallPrompt(a)
	if !strings.Contains(overall, "overall assessment narrative") {
		t.Error("overall prompt missing its instruction")
	}

	phase := phasePrompt(a, phases[0])
	if !strings.Contains(phase, fmt.Sprintf("%q phase", phases[0].Name)) {
		t.Error("phase prompt missing phase name")
	}

	gaps := assess.ComputeGaps(a.Responses, a.Notes)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	gap := gapPrompt(a, &gaps[0])
	if !strings.Contains(gap, "GAP: "+gaps[0].Question.Text) {
		t.Error("gap prompt missing the gap question")
	}
	if !strings.Contains(gap, "Consultant notes: procurement not started") {
		t.Error("gap prompt missing consultant notes")
	}
}
