package db_models

import (
	"gorm.io/datatypes"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Phone        string
	Role         string
	// Interests is a JSON-serialized list of interest labels.
	Interests datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	QuizSessions []QuizSession
	Roadmaps     []Roadmap
	CareerTrees  []CareerTree
	SavedJobs    []SavedJob
}
