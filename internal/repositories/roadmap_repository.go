package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pathwise/internal/models/db_models"
)

type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *db_models.Roadmap) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Roadmap, error)
}

type roadmapRepository struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

func (r *roadmapRepository) Create(ctx context.Context, roadmap *db_models.Roadmap) error {
	return r.db.WithContext(ctx).Create(roadmap).Error
}

func (r *roadmapRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Roadmap, error) {
	var roadmaps []db_models.Roadmap
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&roadmaps).Error
	if err != nil {
		return nil, err
	}
	return roadmaps, nil
}
