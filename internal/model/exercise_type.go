package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ExerciseType is shared reference data. It is seeded once and never
// mutated or deleted by request handling.
type ExerciseType struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	Muscles     pq.StringArray `gorm:"type:text[]" json:"muscles"`
	Equipment   datatypes.JSON `json:"equipment"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (ExerciseType) TableName() string {
	return "exercise_types"
}
