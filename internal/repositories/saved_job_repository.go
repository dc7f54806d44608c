package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"pathwise/internal/models/db_models"
)

type SavedJobRepository interface {
	// Upsert inserts the job, or leaves the existing row untouched when the
	// (account, jobId) pair is already saved, and returns the stored row.
	Upsert(ctx context.Context, job *db_models.SavedJob) (*db_models.SavedJob, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.SavedJob, error)
	UpdateStatus(ctx context.Context, accountID, id uuid.UUID, status string) (int64, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Upsert(ctx context.Context, job *db_models.SavedJob) (*db_models.SavedJob, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "job_id"}},
			DoNothing: true,
		}).
		Create(job).Error
	if err != nil {
		return nil, err
	}

	// On conflict nothing was written, so re-read the stored row either way.
	var stored db_models.SavedJob
	err = r.db.WithContext(ctx).
		Where("account_id = ? AND job_id = ?", job.AccountID, job.JobID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *savedJobRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.SavedJob, error) {
	var jobs []db_models.SavedJob
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *savedJobRepository) UpdateStatus(ctx context.Context, accountID, id uuid.UUID, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.SavedJob{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *savedJobRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.SavedJob{}).Error
}
