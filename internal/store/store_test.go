package store

import (
	"os"
	"testing"
	"time"

	"github.com/befit/api/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.ExerciseType{},
		&model.TrainingSession{},
		&model.ExerciseExecution{},
	)
	require.NoError(t, err)

	db.Exec("DELETE FROM exercise_executions")
	db.Exec("DELETE FROM training_sessions")
	db.Exec("DELETE FROM exercise_types")

	return db
}

const (
	userA = "11111111-1111-4111-8111-111111111111"
	userB = "22222222-2222-4222-8222-222222222222"
)

func seedSession(t *testing.T, db *gorm.DB, userID, name string, start time.Time) *model.TrainingSession {
	t.Helper()
	session := &model.TrainingSession{
		Name:      name,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		UserID:    userID,
		Version:   1,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}

func seedExerciseType(t *testing.T, db *gorm.DB, name string) *model.ExerciseType {
	t.Helper()
	typ := &model.ExerciseType{Name: name, Description: name}
	require.NoError(t, db.Create(typ).Error)
	return typ
}

func seedExecution(t *testing.T, db *gorm.DB, sessionID, typeID int64, weight float64) *model.ExerciseExecution {
	t.Helper()
	execution := &model.ExerciseExecution{
		TrainingSessionID: sessionID,
		ExerciseTypeID:    typeID,
		Weight:            weight,
		Sets:              3,
		Reps:              8,
		Version:           1,
	}
	require.NoError(t, db.Create(execution).Error)
	return execution
}
