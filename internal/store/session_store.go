package store

import (
	"context"
	"time"

	"github.com/befit/api/internal/model"
	"gorm.io/gorm"
)

type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// List returns the user's sessions, newest start time first.
func (s *SessionStore) List(ctx context.Context, userID string) ([]model.TrainingSession, error) {
	var sessions []model.TrainingSession
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&sessions).Error
	return sessions, err
}

// Get fetches one session with its executions and their exercise types.
func (s *SessionStore) Get(ctx context.Context, userID string, id int64) (*model.TrainingSession, error) {
	var session model.TrainingSession
	err := s.db.WithContext(ctx).
		Preload("Executions.ExerciseType").
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Owned reports whether the session exists within the user's scope.
func (s *SessionStore) Owned(ctx context.Context, userID string, id int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.TrainingSession{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *SessionStore) Create(ctx context.Context, session *model.TrainingSession) error {
	session.Version = 1
	return s.db.WithContext(ctx).Create(session).Error
}

// Update commits the session's fields with an optimistic version check.
// A write that touches zero rows is re-checked against the user's scope:
// a vanished or reassigned row becomes ErrNotFound, a row that is still
// there is an unexplained race and becomes ErrConflict.
func (s *SessionStore) Update(ctx context.Context, userID string, session *model.TrainingSession) error {
	res := s.db.WithContext(ctx).
		Model(&model.TrainingSession{}).
		Where("id = ? AND user_id = ? AND version = ?", session.ID, userID, session.Version).
		Updates(map[string]interface{}{
			"name":       session.Name,
			"start_time": session.StartTime,
			"end_time":   session.EndTime,
			"notes":      session.Notes,
			"version":    session.Version + 1,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		owned, err := s.Owned(ctx, userID, session.ID)
		if err != nil {
			return err
		}
		if !owned {
			return ErrNotFound
		}
		return ErrConflict
	}
	session.Version++
	return nil
}

// Delete removes the session and every execution referencing it in one
// transaction. Deleting an id that is already gone (or was never the
// user's) is a no-op, not an error.
func (s *SessionStore) Delete(ctx context.Context, userID string, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session model.TrainingSession
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&session).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Where("training_session_id = ?", session.ID).
			Delete(&model.ExerciseExecution{}).Error; err != nil {
			return err
		}
		return tx.Delete(&session).Error
	})
}
