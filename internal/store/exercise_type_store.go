package store

import (
	"context"

	"github.com/befit/api/internal/model"
	"gorm.io/gorm"
)

// ExerciseTypeStore reads the shared exercise catalogue. Reference data
// is not user-owned, so there is no identity parameter here.
type ExerciseTypeStore struct {
	db *gorm.DB
}

func NewExerciseTypeStore(db *gorm.DB) *ExerciseTypeStore {
	return &ExerciseTypeStore{db: db}
}

func (s *ExerciseTypeStore) List(ctx context.Context) ([]model.ExerciseType, error) {
	var types []model.ExerciseType
	err := s.db.WithContext(ctx).Order("name").Find(&types).Error
	return types, err
}

func (s *ExerciseTypeStore) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.ExerciseType{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
