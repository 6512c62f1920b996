package stats

import (
	"testing"
	"time"

	"github.com/befit/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exec(typ *model.ExerciseType, weight float64, sets, reps int) model.ExerciseExecution {
	e := model.ExerciseExecution{Weight: weight, Sets: sets, Reps: reps, ExerciseType: typ}
	if typ != nil {
		e.ExerciseTypeID = typ.ID
	}
	return e
}

func TestAggregateEmpty(t *testing.T) {
	summaries := Aggregate(nil)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestAggregateSingleType(t *testing.T) {
	squat := &model.ExerciseType{ID: 2, Name: "Barbell squat"}
	summaries := Aggregate([]model.ExerciseExecution{
		exec(squat, 100, 3, 8),
		exec(squat, 110, 5, 5),
		exec(squat, 90, 4, 6),
	})

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, int64(2), s.ExerciseTypeID)
	assert.Equal(t, "Barbell squat", s.ExerciseTypeName)
	assert.Equal(t, 3, s.TimesPerformed)
	assert.Equal(t, 3*8+5*5+4*6, s.TotalRepetitions)
	assert.InDelta(t, 100.0, s.AverageWeight, 1e-9)
	assert.Equal(t, 110.0, s.MaxWeight)
}

func TestAggregateSingleExecution(t *testing.T) {
	squat := &model.ExerciseType{ID: 1, Name: "squat"}
	summaries := Aggregate([]model.ExerciseExecution{exec(squat, 100.00, 3, 8)})

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].TimesPerformed)
	assert.Equal(t, 24, summaries[0].TotalRepetitions)
	assert.InDelta(t, 100.0, summaries[0].AverageWeight, 1e-9)
	assert.Equal(t, 100.0, summaries[0].MaxWeight)
}

func TestAggregateMeanIsUnweighted(t *testing.T) {
	// 10 sets at 50 and 1 set at 100 still average per execution
	press := &model.ExerciseType{ID: 3, Name: "Bench press"}
	summaries := Aggregate([]model.ExerciseExecution{
		exec(press, 50, 10, 10),
		exec(press, 100, 1, 1),
	})

	require.Len(t, summaries, 1)
	assert.InDelta(t, 75.0, summaries[0].AverageWeight, 1e-9)
}

func TestAggregateSortedByName(t *testing.T) {
	squat := &model.ExerciseType{ID: 2, Name: "Barbell squat"}
	deadlift := &model.ExerciseType{ID: 3, Name: "Deadlift"}
	bench := &model.ExerciseType{ID: 1, Name: "Bench press"}

	summaries := Aggregate([]model.ExerciseExecution{
		exec(deadlift, 140, 1, 5),
		exec(bench, 80, 3, 10),
		exec(squat, 100, 3, 8),
	})

	require.Len(t, summaries, 3)
	assert.Equal(t, "Barbell squat", summaries[0].ExerciseTypeName)
	assert.Equal(t, "Bench press", summaries[1].ExerciseTypeName)
	assert.Equal(t, "Deadlift", summaries[2].ExerciseTypeName)
}

func TestAggregateUnknownType(t *testing.T) {
	summaries := Aggregate([]model.ExerciseExecution{
		exec(nil, 60, 2, 12),
		exec(nil, 80, 1, 10),
	})

	require.Len(t, summaries, 1)
	assert.Equal(t, int64(0), summaries[0].ExerciseTypeID)
	assert.Equal(t, UnknownTypeName, summaries[0].ExerciseTypeName)
	assert.Equal(t, 2, summaries[0].TimesPerformed)
	assert.Equal(t, 2*12+1*10, summaries[0].TotalRepetitions)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	start := WindowStart(now)

	assert.Equal(t, time.UTC, start.Location())
	assert.True(t, start.Equal(time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)))
}
