package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pathwise/internal/models/db_models"
)

type CareerTreeRepository interface {
	Create(ctx context.Context, tree *db_models.CareerTree) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CareerTree, error)
}

type careerTreeRepository struct {
	db *gorm.DB
}

func NewCareerTreeRepository(db *gorm.DB) CareerTreeRepository {
	return &careerTreeRepository{db: db}
}

func (r *careerTreeRepository) Create(ctx context.Context, tree *db_models.CareerTree) error {
	return r.db.WithContext(ctx).Create(tree).Error
}

func (r *careerTreeRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CareerTree, error) {
	var trees []db_models.CareerTree
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&trees).Error
	if err != nil {
		return nil, err
	}
	return trees, nil
}
