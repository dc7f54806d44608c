package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Roadmap struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	CareerGoal string
	// Stages is the generated stage list, serialized as returned to the caller.
	Stages datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
