package model

import "time"

// ExerciseExecution is one logged performance of an exercise type
// within a training session. It carries no user column: ownership is
// derived through the parent session on every access.
type ExerciseExecution struct {
	ID                int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	TrainingSessionID int64            `gorm:"not null;index" json:"trainingSessionId"`
	ExerciseTypeID    int64            `gorm:"not null" json:"exerciseTypeId"`
	Weight            float64          `gorm:"type:decimal(10,2);not null" json:"weight"`
	Sets              int              `gorm:"not null" json:"sets"`
	Reps              int              `gorm:"not null" json:"reps"`
	Notes             *string          `gorm:"size:500" json:"notes"`
	Version           int64            `gorm:"not null;default:1" json:"version"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	TrainingSession   *TrainingSession `gorm:"foreignKey:TrainingSessionID" json:"trainingSession,omitempty"`
	ExerciseType      *ExerciseType    `gorm:"foreignKey:ExerciseTypeID" json:"exerciseType,omitempty"`
}

func (ExerciseExecution) TableName() string {
	return "exercise_executions"
}
