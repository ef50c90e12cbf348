package assess

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"inquirykit/internal/catalog"
)

// The establish phase has ten questions; est-1..est-5 are high risk,
// est-6 and est-7 medium. Tests lean on those fixed catalog facts.

func TestComputePhaseStatsScenario(t *testing.T) {
	// five questions touched: yes, no(high), partial(medium), na, unanswered
	responses := map[string]Response{
		"est-1": ResponseYes,
		"est-2": ResponseNo,      // high
		"est-6": ResponsePartial, // medium
		"est-4": ResponseNA,
	}
	stats := ComputePhaseStats(responses, nil, nil)

	s := stats["establish"]
	want := PhaseStats{Total: 10, Answered: 4, Gaps: 2, HighRiskGaps: 1}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("establish stats mismatch (-want +got):\n%s", diff)
	}

	// untouched phases are all zeros apart from the totals
	team := stats["team"]
	if team.Total != 11 || team.Answered != 0 || team.Gaps != 0 {
		t.Errorf("team stats = %+v, want empty with total 11", team)
	}
}

func TestPhaseStatsInvariants(t *testing.T) {
	responses := map[string]Response{}
	for i, q := range catalog.AllQuestions() {
		switch i % 5 {
		case 0:
			responses[q.ID] = ResponseYes
		case 1:
			responses[q.ID] = ResponseNo
		case 2:
			responses[q.ID] = ResponsePartial
		case 3:
			responses[q.ID] = ResponseNA
		}
		// every fifth left unanswered
	}
	for id, s := range ComputePhaseStats(responses, nil, nil) {
		if s.Answered > s.Total {
			t.Errorf("%s: answered %d > total %d", id, s.Answered, s.Total)
		}
		if s.Gaps > s.Total {
			t.Errorf("%s: gaps %d > total %d", id, s.Gaps, s.Total)
		}
		if s.HighRiskGaps > s.Gaps {
			t.Errorf("%s: highRiskGaps %d > gaps %d", id, s.HighRiskGaps, s.Gaps)
		}
	}
}

func TestNAIsAnsweredButNeverAGap(t *testing.T) {
	responses := map[string]Response{"est-2": ResponseNA}
	s := ComputePhaseStats(responses, nil, nil)["establish"]
	if s.Answered != 1 || s.Gaps != 0 {
		t.Errorf("na answer: %+v, want answered 1 gaps 0", s)
	}
	if len(ComputeGaps(responses, nil)) != 0 {
		t.Error("na answer produced a gap")
	}
}

func TestPhaseStatsCommentaryAndNotes(t *testing.T) {
	notes := map[string]string{
		"est-1": "spoken to GLD",
		"est-2": "   ", // whitespace only does not count
	}
	commentary := map[string]string{
		"establish": "good progress",
		"team":      "  ",
	}
	stats := ComputePhaseStats(nil, notes, commentary)
	if got := stats["establish"]; !got.HasCommentary || got.NotesCount != 1 {
		t.Errorf("establish = %+v, want commentary and one note", got)
	}
	if stats["team"].HasCommentary {
		t.Error("whitespace commentary should not count")
	}
}

func TestComputeGapsOrdering(t *testing.T) {
	responses := map[string]Response{
		"est-10":  ResponsePartial, // medium
		"est-1":   ResponsePartial, // high
		"est-2":   ResponseNo,      // high
		"evid-10": ResponseNo,      // low
		"est-6":   ResponseNo,      // medium
		"team-1":  ResponseYes,
		"team-2":  ResponseNA,
	}
	gaps := ComputeGaps(responses, nil)
	if len(gaps) != 5 {
		t.Fatalf("got %d gaps, want 5", len(gaps))
	}

	// adjacent pairs never decrease in severity; within a tier "no" never
	// follows "partial"
	rank := map[catalog.Risk]int{catalog.RiskHigh: 0, catalog.RiskMedium: 1, catalog.RiskLow: 2}
	for i := 1; i < len(gaps); i++ {
		a, b := gaps[i-1], gaps[i]
		if rank[a.Question.Risk] > rank[b.Question.Risk] {
			t.Fatalf("risk order violated at %d: %s after %s", i, b.Question.Risk, a.Question.Risk)
		}
		if a.Question.Risk == b.Question.Risk && a.Response == ResponsePartial && b.Response == ResponseNo {
			t.Fatalf("status order violated at %d within tier %s", i, a.Question.Risk)
		}
	}

	wantIDs := []string{"est-2", "est-1", "est-6", "est-10", "evid-10"}
	for i, g := range gaps {
		if g.Question.ID != wantIDs[i] {
			t.Errorf("position %d = %s, want %s", i, g.Question.ID, wantIDs[i])
		}
	}
}

func TestComputeGapsStableAndIdempotent(t *testing.T) {
	responses := map[string]Response{
		// three high-risk "no" answers from different phases; ties must keep
		// catalog encounter order
		"est-1":  ResponseNo,
		"team-1": ResponseNo,
		"ops-1":  ResponseNo,
	}
	first := ComputeGaps(responses, nil)
	second := ComputeGaps(responses, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("recompute differs (-first +second):\n%s", diff)
	}
	wantIDs := []string{"est-1", "team-1", "ops-1"}
	for i, g := range first {
		if g.Question.ID != wantIDs[i] {
			t.Errorf("position %d = %s, want %s (encounter order)", i, g.Question.ID, wantIDs[i])
		}
	}
}

func TestComputeGapsCarriesNotes(t *testing.T) {
	responses := map[string]Response{"est-2": ResponseNo}
	notes := map[string]string{"est-2": "no ToR consultation yet"}
	gaps := ComputeGaps(responses, notes)
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps", len(gaps))
	}
	g := gaps[0]
	if g.Note != "no ToR consultation yet" {
		t.Errorf("note = %q", g.Note)
	}
	if g.Phase != "Establish & Scope" || g.PhaseID != "establish" {
		t.Errorf("phase context = %s/%s", g.Phase, g.PhaseID)
	}
}

func TestEmptyResponsesMeanNoGaps(t *testing.T) {
	if gaps := ComputeGaps(nil, nil); len(gaps) != 0 {
		t.Errorf("expected no gaps, got %d", len(gaps))
	}
	if n := TotalAnswered(nil); n != 0 {
		t.Errorf("TotalAnswered(nil) = %d", n)
	}
}

func TestStatusLabels(t *testing.T) {
	if ResponseNo.StatusLabel() != "NOT IN PLACE" {
		t.Error("no label wrong")
	}
	if ResponsePartial.StatusLabel() != "PARTIALLY IN PLACE" {
		t.Error("partial label wrong")
	}
	if ResponseNA.Label() != "N/A" || Response("").Label() != "Not assessed" {
		t.Error("response labels wrong")
	}
}
