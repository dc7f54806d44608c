package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizSession is the durable record of one full quiz run. It is written at
// most twice: created when phase-1 answers are submitted, updated in place
// when the results are computed. Anonymous runs never create one.
type QuizSession struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	Phase1Answers   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Phase2Questions datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Phase2Answers   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Results         datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
