package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CareerTree struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	RootTitle string
	FormInput datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	TreeData  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
