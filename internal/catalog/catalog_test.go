package catalog

import "testing"

func TestQuestionIDsGloballyUnique(t *testing.T) {
	seen := map[string]string{}
	for _, p := range Phases() {
		for _, q := range p.Questions {
			if q.ID == "" {
				t.Fatalf("phase %s has a question with empty id", p.ID)
			}
			if prev, ok := seen[q.ID]; ok {
				t.Errorf("question id %s appears in both %s and %s", q.ID, prev, p.ID)
			}
			seen[q.ID] = p.ID
		}
	}
}

func TestAllQuestionsMatchesTotalCount(t *testing.T) {
	all := AllQuestions()
	if len(all) != TotalQuestionCount() {
		t.Fatalf("AllQuestions returned %d, TotalQuestionCount is %d", len(all), TotalQuestionCount())
	}
	for _, q := range all {
		if q.PhaseID == "" || q.PhaseName == "" {
			t.Errorf("question %s is missing phase context", q.ID)
		}
	}
}

func TestAllQuestionsPreservePhaseOrder(t *testing.T) {
	all := AllQuestions()
	idx := 0
	for _, p := range Phases() {
		for _, q := range p.Questions {
			if all[idx].ID != q.ID {
				t.Fatalf("position %d: got %s, want %s", idx, all[idx].ID, q.ID)
			}
			idx++
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("est-1")
	if !ok {
		t.Fatal("est-1 not found")
	}
	if q.PhaseID != "establish" {
		t.Errorf("est-1 phase = %s, want establish", q.PhaseID)
	}
	if q.Risk != RiskHigh {
		t.Errorf("est-1 risk = %s, want high", q.Risk)
	}

	if _, ok := QuestionByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestEveryQuestionHasRiskAndGuidance(t *testing.T) {
	valid := map[Risk]bool{RiskHigh: true, RiskMedium: true, RiskLow: true}
	for _, q := range AllQuestions() {
		if !valid[q.Risk] {
			t.Errorf("question %s has invalid risk %q", q.ID, q.Risk)
		}
		if q.Guidance == "" {
			t.Errorf("question %s has no guidance", q.ID)
		}
	}
}
