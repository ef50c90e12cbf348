package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"inquirykit/internal/model"
	"inquirykit/pkg/metrics"
)

// DB is the subset of pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AssessmentRepository struct {
	db DB
}

func NewAssessmentRepository(db DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

const saveQuery = `
        INSERT INTO assessments (id, user_id, inquiry_name, consult_date, payload, saved_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE
        SET inquiry_name = EXCLUDED.inquiry_name,
            consult_date = EXCLUDED.consult_date,
            payload      = EXCLUDED.payload,
            saved_at     = EXCLUDED.saved_at
        WHERE assessments.user_id = EXCLUDED.user_id
    `

// Save upserts an assessment for a user. A new assessment gets a uuid on
// first save; saved_at is refreshed on every save. When the id already
// belongs to another user's record (an imported export file), the other
// record is left untouched and this one is stored under a fresh uuid.
// Returns the stored assessment with id and saved_at filled in.
func (r *AssessmentRepository) Save(ctx context.Context, userID int, a *model.Assessment) (*model.Assessment, error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("save", "assessments", time.Since(start))
	}()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.SavedAt = time.Now().UTC()
	a.Normalize()

	tag, err := r.execSave(ctx, userID, a)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		a.ID = uuid.NewString()
		if _, err := r.execSave(ctx, userID, a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (r *AssessmentRepository) execSave(ctx context.Context, userID int, a *model.Assessment) (pgconn.CommandTag, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return r.db.Exec(ctx, saveQuery, a.ID, userID, a.InquiryName, a.ConsultDate, payload, a.SavedAt)
}

// FindByID loads one assessment. Scoped by user_id so one user can never
// read another's saved work; a wrong owner surfaces as pgx.ErrNoRows.
func (r *AssessmentRepository) FindByID(ctx context.Context, userID int, id string) (*model.Assessment, error) {
	start := time.Now()

	query := `
        SELECT payload
        FROM assessments
        WHERE id = $1 AND user_id = $2
    `
	var payload []byte
	err := r.db.QueryRow(ctx, query, id, userID).Scan(&payload)
	metrics.RecordDBQueryDuration("find", "assessments", time.Since(start))
	if err != nil {
		return nil, err
	}

	var a model.Assessment
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, err
	}
	a.Normalize()
	return &a, nil
}

// List returns summaries of a user's assessments, most recent first.
func (r *AssessmentRepository) List(ctx context.Context, userID int) ([]model.AssessmentSummary, error) {
	start := time.Now()

	query := `
        SELECT id, inquiry_name, consult_date, saved_at
        FROM assessments
        WHERE user_id = $1
        ORDER BY saved_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	metrics.RecordDBQueryDuration("list", "assessments", time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.AssessmentSummary{}
	for rows.Next() {
		var s model.AssessmentSummary
		if err := rows.Scan(&s.ID, &s.InquiryName, &s.ConsultDate, &s.SavedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Delete removes an assessment. Returns the number of rows removed so the
// caller can distinguish "deleted" from "not found or not yours".
func (r *AssessmentRepository) Delete(ctx context.Context, userID int, id string) (int64, error) {
	start := time.Now()

	query := `
        DELETE FROM assessments
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	metrics.RecordDBQueryDuration("delete", "assessments", time.Since(start))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
