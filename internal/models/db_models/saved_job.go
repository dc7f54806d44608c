package db_models

import (
	"github.com/google/uuid"
)

// SavedJob statuses follow the application pipeline.
const (
	JobStatusSaved        = "saved"
	JobStatusApplied      = "applied"
	JobStatusInterviewing = "interviewing"
	JobStatusOffer        = "offer"
	JobStatusRejected     = "rejected"
)

func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusSaved, JobStatusApplied, JobStatusInterviewing, JobStatusOffer, JobStatusRejected:
		return true
	}
	return false
}

type SavedJob struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_account_job"`
	// JobID is the upstream job board identifier, unique per account.
	JobID    string `gorm:"uniqueIndex:idx_account_job"`
	Title    string
	Company  string
	Location string
	URL      string
	Source   string
	Status   string `gorm:"default:saved"`
}
