package store

import (
	"context"
	"time"

	"github.com/befit/api/internal/model"
	"gorm.io/gorm"
)

// ownedSessions is the subquery binding an execution to its owner
// through the parent session.
const ownedSessions = "exercise_executions.training_session_id IN (SELECT id FROM training_sessions WHERE user_id = ?)"

type ExecutionStore struct {
	db *gorm.DB
}

func NewExecutionStore(db *gorm.DB) *ExecutionStore {
	return &ExecutionStore{db: db}
}

// List returns the user's executions, newest parent session first.
func (s *ExecutionStore) List(ctx context.Context, userID string) ([]model.ExerciseExecution, error) {
	var executions []model.ExerciseExecution
	err := s.db.WithContext(ctx).
		Preload("ExerciseType").
		Preload("TrainingSession").
		Joins("JOIN training_sessions ON training_sessions.id = exercise_executions.training_session_id").
		Where("training_sessions.user_id = ?", userID).
		Order("training_sessions.start_time DESC").
		Find(&executions).Error
	return executions, err
}

// ListSince returns the user's executions whose parent session started
// at or after the given UTC instant. Feeds the statistics aggregator.
func (s *ExecutionStore) ListSince(ctx context.Context, userID string, since time.Time) ([]model.ExerciseExecution, error) {
	var executions []model.ExerciseExecution
	err := s.db.WithContext(ctx).
		Preload("ExerciseType").
		Joins("JOIN training_sessions ON training_sessions.id = exercise_executions.training_session_id").
		Where("training_sessions.user_id = ? AND training_sessions.start_time >= ?", userID, since).
		Find(&executions).Error
	return executions, err
}

func (s *ExecutionStore) Get(ctx context.Context, userID string, id int64) (*model.ExerciseExecution, error) {
	var execution model.ExerciseExecution
	err := s.db.WithContext(ctx).
		Preload("ExerciseType").
		Preload("TrainingSession").
		Joins("JOIN training_sessions ON training_sessions.id = exercise_executions.training_session_id").
		Where("exercise_executions.id = ? AND training_sessions.user_id = ?", id, userID).
		First(&execution).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &execution, nil
}

// Create persists a new execution after re-resolving the submitted
// session reference within the user's scope. A reference to someone
// else's session rejects the whole write.
func (s *ExecutionStore) Create(ctx context.Context, userID string, execution *model.ExerciseExecution) error {
	owned, err := s.sessionOwned(ctx, userID, execution.TrainingSessionID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrSessionNotOwned
	}
	execution.Version = 1
	return s.db.WithContext(ctx).Create(execution).Error
}

// Update commits the execution's fields with the same version check as
// session updates. The session reference is re-validated on every
// update because the client resubmits it, and a reattachment to a
// session outside the user's scope must be rejected.
func (s *ExecutionStore) Update(ctx context.Context, userID string, execution *model.ExerciseExecution) error {
	owned, err := s.sessionOwned(ctx, userID, execution.TrainingSessionID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrSessionNotOwned
	}

	res := s.db.WithContext(ctx).
		Model(&model.ExerciseExecution{}).
		Where("id = ? AND version = ? AND "+ownedSessions, execution.ID, execution.Version, userID).
		Updates(map[string]interface{}{
			"training_session_id": execution.TrainingSessionID,
			"exercise_type_id":    execution.ExerciseTypeID,
			"weight":              execution.Weight,
			"sets":                execution.Sets,
			"reps":                execution.Reps,
			"notes":               execution.Notes,
			"version":             execution.Version + 1,
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		err := s.db.WithContext(ctx).
			Model(&model.ExerciseExecution{}).
			Where("exercise_executions.id = ? AND "+ownedSessions, execution.ID, userID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	execution.Version++
	return nil
}

// Delete removes one execution. No cascade; a second call on the same
// id is a no-op.
func (s *ExecutionStore) Delete(ctx context.Context, userID string, id int64) error {
	return s.db.WithContext(ctx).
		Where("exercise_executions.id = ? AND "+ownedSessions, id, userID).
		Delete(&model.ExerciseExecution{}).Error
}

func (s *ExecutionStore) sessionOwned(ctx context.Context, userID string, sessionID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.TrainingSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Count(&count).Error
	return count > 0, err
}
