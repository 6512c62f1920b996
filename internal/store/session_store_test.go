package store

import (
	"context"
	"testing"
	"time"

	"github.com/befit/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionOwnershipIsolation(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	created := seedSession(t, db, userA, "Leg Day", time.Now().UTC())

	// another user's listing never contains the session
	got, err := sessions.List(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, got)

	// lookup by id behaves exactly like a missing row
	_, err = sessions.Get(ctx, userB, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sessions.Get(ctx, userA, created.ID+9999)
	assert.ErrorIs(t, err, ErrNotFound)

	owned, err := sessions.Owned(ctx, userB, created.ID)
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestSessionListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	seedSession(t, db, userA, "old", base)
	seedSession(t, db, userA, "new", base.Add(48*time.Hour))
	seedSession(t, db, userA, "middle", base.Add(24*time.Hour))

	got, err := sessions.List(ctx, userA)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, "middle", got[1].Name)
	assert.Equal(t, "old", got[2].Name)
}

func TestSessionUpdateBumpsVersion(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	created := seedSession(t, db, userA, "Leg Day", time.Now().UTC())

	created.Name = "Push Day"
	require.NoError(t, sessions.Update(ctx, userA, created))
	assert.Equal(t, int64(2), created.Version)

	reloaded, err := sessions.Get(ctx, userA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", reloaded.Name)
	assert.Equal(t, int64(2), reloaded.Version)
}

func TestSessionUpdateStaleVersionConflicts(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	created := seedSession(t, db, userA, "Leg Day", time.Now().UTC())

	// a concurrent writer moved the row forward
	winner := *created
	winner.Name = "winner"
	require.NoError(t, sessions.Update(ctx, userA, &winner))

	stale := *created
	stale.Name = "loser"
	err := sessions.Update(ctx, userA, &stale)
	assert.ErrorIs(t, err, ErrConflict)

	// the winner's edit survived
	reloaded, err := sessions.Get(ctx, userA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "winner", reloaded.Name)
}

func TestSessionUpdateVanishedRowIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	created := seedSession(t, db, userA, "Leg Day", time.Now().UTC())
	require.NoError(t, sessions.Delete(ctx, userA, created.ID))

	created.Name = "too late"
	err := sessions.Update(ctx, userA, created)
	assert.ErrorIs(t, err, ErrNotFound)

	// and the same for a row that was never the caller's
	other := seedSession(t, db, userB, "Theirs", time.Now().UTC())
	other.Name = "hijack"
	err = sessions.Update(ctx, userA, other)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	typ := seedExerciseType(t, db, "Barbell squat")
	created := seedSession(t, db, userA, "Leg Day", time.Now().UTC())
	seedExecution(t, db, created.ID, typ.ID, 100)
	seedExecution(t, db, created.ID, typ.ID, 110)

	require.NoError(t, sessions.Delete(ctx, userA, created.ID))

	var orphans int64
	require.NoError(t, db.Model(&model.ExerciseExecution{}).
		Where("training_session_id = ?", created.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	_, err := sessions.Get(ctx, userA, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is a no-op, not an error
	assert.NoError(t, sessions.Delete(ctx, userA, created.ID))
}

func TestSessionDeleteIgnoresForeignRows(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewSessionStore(db)
	ctx := context.Background()

	created := seedSession(t, db, userA, "Leg Day", time.Now().UTC())

	require.NoError(t, sessions.Delete(ctx, userB, created.ID))

	_, err := sessions.Get(ctx, userA, created.ID)
	assert.NoError(t, err)
}
