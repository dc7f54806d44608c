package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"pathwise/internal/models/db_models"
)

// QuizSessionRepository is deliberately narrow: the recommendation service
// needs exactly create, update-in-place, and the caller's history.
type QuizSessionRepository interface {
	Create(ctx context.Context, session *db_models.QuizSession) error
	UpdateResults(ctx context.Context, id uuid.UUID, phase2Answers, results datatypes.JSON) error
	FindByID(ctx context.Context, id string) (*db_models.QuizSession, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.QuizSession, error)
}

type quizSessionRepository struct {
	db *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) QuizSessionRepository {
	return &quizSessionRepository{db: db}
}

func (r *quizSessionRepository) Create(ctx context.Context, session *db_models.QuizSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *quizSessionRepository) UpdateResults(ctx context.Context, id uuid.UUID, phase2Answers, results datatypes.JSON) error {
	return r.db.WithContext(ctx).
		Model(&db_models.QuizSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"phase2_answers": phase2Answers,
			"results":        results,
		}).Error
}

func (r *quizSessionRepository) FindByID(ctx context.Context, id string) (*db_models.QuizSession, error) {
	var session db_models.QuizSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *quizSessionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.QuizSession, error) {
	var sessions []db_models.QuizSession
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
