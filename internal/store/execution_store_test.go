package store

import (
	"context"
	"testing"
	"time"

	"github.com/befit/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionCreateRejectsForeignSession(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	theirs := seedSession(t, db, userB, "Theirs", time.Now().UTC())

	execution := &model.ExerciseExecution{
		TrainingSessionID: theirs.ID,
		ExerciseTypeID:    typ.ID,
		Weight:            100,
		Sets:              3,
		Reps:              8,
	}
	err := executions.Create(ctx, userA, execution)
	assert.ErrorIs(t, err, ErrSessionNotOwned)

	// whole write rejected, nothing persisted
	var count int64
	require.NoError(t, db.Model(&model.ExerciseExecution{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExecutionTransitiveOwnership(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	mine := seedSession(t, db, userA, "Leg Day", time.Now().UTC())
	created := seedExecution(t, db, mine.ID, typ.ID, 100)

	got, err := executions.Get(ctx, userA, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExerciseType)
	assert.Equal(t, "Barbell squat", got.ExerciseType.Name)

	// the execution has no owner column; a different user still cannot
	// see or remove it through their own scope
	_, err = executions.Get(ctx, userB, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := executions.List(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, executions.Delete(ctx, userB, created.ID))
	_, err = executions.Get(ctx, userA, created.ID)
	assert.NoError(t, err)
}

func TestExecutionUpdateRejectsReattachment(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	mine := seedSession(t, db, userA, "Mine", time.Now().UTC())
	theirs := seedSession(t, db, userB, "Theirs", time.Now().UTC())
	created := seedExecution(t, db, mine.ID, typ.ID, 100)

	created.TrainingSessionID = theirs.ID
	err := executions.Update(ctx, userA, created)
	assert.ErrorIs(t, err, ErrSessionNotOwned)

	reloaded, err := executions.Get(ctx, userA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, reloaded.TrainingSessionID)
}

func TestExecutionUpdateStaleVersionConflicts(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	mine := seedSession(t, db, userA, "Mine", time.Now().UTC())
	created := seedExecution(t, db, mine.ID, typ.ID, 100)

	winner := *created
	winner.Weight = 105
	require.NoError(t, executions.Update(ctx, userA, &winner))

	stale := *created
	stale.Weight = 95
	err := executions.Update(ctx, userA, &stale)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecutionUpdateVanishedRowIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	mine := seedSession(t, db, userA, "Mine", time.Now().UTC())
	created := seedExecution(t, db, mine.ID, typ.ID, 100)
	require.NoError(t, executions.Delete(ctx, userA, created.ID))

	created.Weight = 120
	err := executions.Update(ctx, userA, created)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecutionListSinceWindow(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	now := time.Now().UTC()

	recent := seedSession(t, db, userA, "Recent", now.Add(-24*time.Hour))
	ancient := seedSession(t, db, userA, "Ancient", now.Add(-40*24*time.Hour))
	foreign := seedSession(t, db, userB, "Foreign", now.Add(-24*time.Hour))

	inWindow := seedExecution(t, db, recent.ID, typ.ID, 100)
	seedExecution(t, db, ancient.ID, typ.ID, 90)
	seedExecution(t, db, foreign.ID, typ.ID, 80)

	got, err := executions.ListSince(ctx, userA, now.AddDate(0, 0, -28))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inWindow.ID, got[0].ID)
	require.NotNil(t, got[0].ExerciseType)
}

func TestExecutionDeleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	executions := NewExecutionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	mine := seedSession(t, db, userA, "Mine", time.Now().UTC())
	created := seedExecution(t, db, mine.ID, typ.ID, 100)

	require.NoError(t, executions.Delete(ctx, userA, created.ID))
	assert.NoError(t, executions.Delete(ctx, userA, created.ID))

	// the parent session is untouched
	var count int64
	require.NoError(t, db.Model(&model.TrainingSession{}).
		Where("id = ?", mine.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
