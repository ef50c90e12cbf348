package workbook

import (
	"testing"
	"time"

	"inquirykit/internal/catalog"
)

func TestBuildSheets(t *testing.T) {
	f, err := Build(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := len(catalog.Phases()) + 1
	if len(sheets) != want {
		t.Fatalf("got %d sheets, want %d: %v", len(sheets), want, sheets)
	}

	for i, phase := range catalog.Phases() {
		if sheets[i] != phase.Name {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i], phase.Name)
		}
	}
	if sheets[len(sheets)-1] != "Benchmarks" {
		t.Errorf("last sheet = %q, want Benchmarks", sheets[len(sheets)-1])
	}
}

func TestBuildPhaseRows(t *testing.T) {
	f, err := Build(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer f.Close()

	phase := catalog.Phases()[0]

	header, err := f.GetCellValue(phase.Name, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if header != "Action Item" {
		t.Errorf("header B2 = %q, want Action Item", header)
	}

	first, err := f.GetCellValue(phase.Name, "B3")
	if err != nil {
		t.Fatal(err)
	}
	if first != phase.Questions[0].Text {
		t.Errorf("first row = %q, want %q", first, phase.Questions[0].Text)
	}

	status, err := f.GetCellValue(phase.Name, "F3")
	if err != nil {
		t.Fatal(err)
	}
	if status != "Not Started" {
		t.Errorf("status F3 = %q, want Not Started", status)
	}
}

func TestBuildBenchmarkRows(t *testing.T) {
	f, err := Build(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Benchmarks", "A3")
	if err != nil {
		t.Fatal(err)
	}
	if name == "" {
		t.Error("first benchmark row is empty")
	}
}
