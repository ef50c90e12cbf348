package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"inquirykit/internal/assess"
	"inquirykit/internal/benchmark"
)

func sampleAssessment() *Assessment {
	return &Assessment{
		ID:          "5e3f2c1a-0000-4000-8000-000000000001",
		InquiryName: "Test Inquiry",
		ConsultDate: "2026-08-01",
		Responses: map[string]assess.Response{
			"est-1": assess.ResponseYes,
			"est-2": assess.ResponseNo,
			"est-3": assess.ResponsePartial,
		},
		Notes:             map[string]string{"est-2": "no statutory confirmation"},
		PhaseCommentary:   map[string]string{"establish": "early days"},
		OverallCommentary: "overall view",
		SelectedScale:     benchmark.ScaleMedium,
		CustomBudget:      "22",
		CustomDuration:    "30",
		PlanningNotes:     PlanningNotes{ScaleNotes: "mid-scale", ComparatorNotes: "cf. Brook House"},
		SavedAt:           time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	orig := sampleAssessment()
	data, err := orig.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportAssessment(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("round trip mismatch (-orig +got):\n%s", diff)
	}
}

func TestImportInvalidJSONIsDistinct(t *testing.T) {
	_, err := ImportAssessment([]byte("{not json"))
	if !errors.Is(err, ErrInvalidImport) {
		t.Errorf("err = %v, want ErrInvalidImport", err)
	}
}

func TestImportNormalizesMissingMaps(t *testing.T) {
	a, err := ImportAssessment([]byte(`{"inquiryName":"X","consultDate":"2026-01-01"}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if a.Responses == nil || a.Notes == nil || a.PhaseCommentary == nil {
		t.Error("maps should be normalized to empty, not nil")
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name    string
		inquiry string
		date    string
		want    string
	}{
		{"named", "Test Inquiry", "2026-08-01", "Test Inquiry-2026-08-01.json"},
		{"unnamed", "", "2026-08-01", "assessment-2026-08-01.json"},
		{"no date", "X", "", "X-export.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Assessment{InquiryName: tt.inquiry, ConsultDate: tt.date}
			if got := a.ExportFilename(); got != tt.want {
				t.Errorf("filename = %q, want %q", got, tt.want)
			}
		})
	}
}
