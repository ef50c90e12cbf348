package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"inquirykit/internal/model"
	"inquirykit/internal/repository"
	"inquirykit/pkg/metrics"
)

// ErrAssessmentNotFound covers both a missing id and an id owned by
// someone else; the caller cannot tell which.
var ErrAssessmentNotFound = errors.New("assessment not found")

const currentAssessmentTTL = 30 * 24 * time.Hour

// AssessmentService persists assessments and tracks each user's current
// working assessment in redis so a session resumes where it left off.
type AssessmentService struct {
	repo   *repository.AssessmentRepository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewAssessmentService(repo *repository.AssessmentRepository, rdb *redis.Client, logger *zap.Logger) *AssessmentService {
	return &AssessmentService{repo: repo, rdb: rdb, logger: logger}
}

// Save stores the assessment and marks it as the user's current one.
func (s *AssessmentService) Save(ctx context.Context, userID int, a *model.Assessment) (*model.Assessment, error) {
	saved, err := s.repo.Save(ctx, userID, a)
	if err != nil {
		metrics.IncrementAssessmentSaved("failed")
		return nil, err
	}
	metrics.IncrementAssessmentSaved("success")

	s.setCurrent(ctx, userID, saved.ID)
	return saved, nil
}

// Load returns one saved assessment and marks it current.
func (s *AssessmentService) Load(ctx context.Context, userID int, id string) (*model.Assessment, error) {
	a, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}

	s.setCurrent(ctx, userID, a.ID)
	return a, nil
}

// List returns the user's saved assessments, most recent first.
func (s *AssessmentService) List(ctx context.Context, userID int) ([]model.AssessmentSummary, error) {
	return s.repo.List(ctx, userID)
}

// Delete removes a saved assessment. If it was the user's current one,
// the pointer is cleared too.
func (s *AssessmentService) Delete(ctx context.Context, userID int, id string) error {
	n, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAssessmentNotFound
	}

	if current, _ := s.CurrentID(ctx, userID); current == id {
		s.ClearCurrent(ctx, userID)
	}
	return nil
}

// CurrentID returns the id of the user's current working assessment, or
// "" when none is set.
func (s *AssessmentService) CurrentID(ctx context.Context, userID int) (string, error) {
	id, err := s.rdb.Get(ctx, currentKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}

// ClearCurrent drops the current-assessment pointer, used on sign-out and
// on delete.
func (s *AssessmentService) ClearCurrent(ctx context.Context, userID int) {
	if err := s.rdb.Del(ctx, currentKey(userID)).Err(); err != nil {
		s.logger.Warn("Failed to clear current assessment pointer",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *AssessmentService) setCurrent(ctx context.Context, userID int, id string) {
	if err := s.rdb.Set(ctx, currentKey(userID), id, currentAssessmentTTL).Err(); err != nil {
		s.logger.Warn("Failed to set current assessment pointer",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
	}
}

func currentKey(userID int) string {
	return fmt.Sprintf("assessment:current:%d", userID)
}
