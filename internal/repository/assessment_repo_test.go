package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"inquirykit/internal/model"
)

// execCall records one Exec invocation for later inspection.
type execCall struct {
	sql  string
	args []any
}

// fakeDB returns scripted command tags from Exec, in order.
type fakeDB struct {
	tags  []pgconn.CommandTag
	calls []execCall
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if len(f.tags) == 0 {
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	tag := f.tags[0]
	f.tags = f.tags[1:]
	return tag, nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestSaveAssignsIDOnFirstSave(t *testing.T) {
	db := &fakeDB{}
	repo := NewAssessmentRepository(db)

	a := &model.Assessment{InquiryName: "Test Inquiry", ConsultDate: "2026-03-01"}
	saved, err := repo.Save(context.Background(), 7, a)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if saved.SavedAt.IsZero() {
		t.Error("expected savedAt to be set")
	}
	if len(db.calls) != 1 {
		t.Fatalf("expected 1 exec, got %d", len(db.calls))
	}
}

func TestSaveRemintsIDWhenOwnedByAnotherUser(t *testing.T) {
	// The upsert's ownership clause makes a foreign-owned id affect zero
	// rows. Save must not report success for a write that stored nothing.
	db := &fakeDB{tags: []pgconn.CommandTag{
		pgconn.NewCommandTag("INSERT 0 0"),
		pgconn.NewCommandTag("INSERT 0 1"),
	}}
	repo := NewAssessmentRepository(db)

	const importedID = "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0"
	a := &model.Assessment{ID: importedID, InquiryName: "Imported Inquiry"}
	saved, err := repo.Save(context.Background(), 7, a)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == importedID {
		t.Error("expected a fresh id, got the imported one")
	}
	if saved.ID == "" {
		t.Error("expected a fresh id to be assigned")
	}
	if len(db.calls) != 2 {
		t.Fatalf("expected 2 execs, got %d", len(db.calls))
	}
	if got := db.calls[1].args[0]; got != saved.ID {
		t.Errorf("second exec wrote id %v, want %v", got, saved.ID)
	}
}

func TestSaveKeepsIDWhenRowUpdated(t *testing.T) {
	db := &fakeDB{tags: []pgconn.CommandTag{pgconn.NewCommandTag("INSERT 0 1")}}
	repo := NewAssessmentRepository(db)

	const id = "11111111-2222-3333-4444-555555555555"
	a := &model.Assessment{ID: id, InquiryName: "Existing Inquiry"}
	saved, err := repo.Save(context.Background(), 3, a)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID != id {
		t.Errorf("id changed on update: got %s, want %s", saved.ID, id)
	}
	if len(db.calls) != 1 {
		t.Fatalf("expected 1 exec, got %d", len(db.calls))
	}
}
