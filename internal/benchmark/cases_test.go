package benchmark

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func TestCasesSortedByCostUnknownLast(t *testing.T) {
	cases := Cases(testNow)
	if len(cases) == 0 {
		t.Fatal("no comparator cases")
	}
	prev := -1.0
	for i, c := range cases {
		cost := sortCost(c.Cost)
		if cost < prev {
			t.Fatalf("case %d (%s) out of order: %v after %v", i, c.Name, cost, prev)
		}
		prev = cost
	}
	// unknown costs collect at the tail
	last := cases[len(cases)-1]
	if last.Cost != nil {
		t.Errorf("last case %s has known cost, expected unknown-cost tail", last.Name)
	}
}

func TestCasesDerivedFields(t *testing.T) {
	var iicsa *Comparator
	for i := range Cases(testNow) {
		c := Cases(testNow)[i]
		if c.Name == "IICSA" {
			iicsa = &c
			break
		}
	}
	if iicsa == nil {
		t.Fatal("IICSA not in comparator table")
	}
	if iicsa.Scale != ScaleVeryLarge {
		t.Errorf("IICSA scale = %q, want veryLarge", iicsa.Scale)
	}
	if iicsa.Year != "2015–2022" {
		t.Errorf("IICSA year = %q", iicsa.Year)
	}
	if iicsa.Duration != "7.6 years" {
		t.Errorf("IICSA duration = %q", iicsa.Duration)
	}
}

func TestFilterCases(t *testing.T) {
	all := Cases(testNow)

	for _, c := range FilterCases(all, Filter{Subject: "health"}) {
		if c.SubjectArea != "health" {
			t.Errorf("subject filter leaked %s (%s)", c.Name, c.SubjectArea)
		}
	}

	for _, c := range FilterCases(all, Filter{Type: "non-statutory"}) {
		if c.Type != "Non-statutory" {
			t.Errorf("type filter leaked %s (%s)", c.Name, c.Type)
		}
	}

	// "statutory" matches the devolved variants too
	n := len(FilterCases(all, Filter{Type: "statutory"}))
	plain := 0
	for _, c := range all {
		if c.Type == "Statutory" {
			plain++
		}
	}
	if n <= plain {
		t.Errorf("statutory filter matched %d, expected devolved variants beyond the %d plain ones", n, plain)
	}

	for _, c := range FilterCases(all, Filter{Scale: ScaleVeryLarge}) {
		if c.Scale != ScaleVeryLarge {
			t.Errorf("scale filter leaked %s (%s)", c.Name, c.Scale)
		}
	}

	if got, want := len(FilterCases(all, Filter{Subject: "all", Type: "all", Status: "all"})), len(all); got != want {
		t.Errorf("all-filters returned %d, want %d", got, want)
	}
}
