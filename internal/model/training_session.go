package model

import "time"

// TrainingSession is a user-owned workout bounded by start/end time.
// StartTime and EndTime are stored in UTC; EndTime is strictly after
// StartTime. UserID is assigned from the authenticated identity on
// create and never changes afterwards.
type TrainingSession struct {
	ID         int64               `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string              `gorm:"not null;size:100" json:"name"`
	StartTime  time.Time           `gorm:"not null" json:"startTime"`
	EndTime    time.Time           `gorm:"not null" json:"endTime"`
	Notes      *string             `gorm:"size:1000" json:"notes"`
	UserID     string              `gorm:"type:uuid;not null;index" json:"userId"`
	Version    int64               `gorm:"not null;default:1" json:"version"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
	Executions []ExerciseExecution `gorm:"foreignKey:TrainingSessionID" json:"executions,omitempty"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}
