// Package stats aggregates one user's exercise executions into
// per-exercise-type summaries over a trailing window. The aggregation
// is pure and recomputed on every request; nothing here is cached.
package stats

import (
	"sort"
	"time"

	"github.com/befit/api/internal/model"
)

// WindowDays is the length of the trailing statistics window.
const WindowDays = 28

// UnknownTypeName labels executions whose exercise type reference does
// not resolve; they aggregate under id 0.
const UnknownTypeName = "unknown"

type Summary struct {
	ExerciseTypeID   int64   `json:"exerciseTypeId"`
	ExerciseTypeName string  `json:"exerciseTypeName"`
	TimesPerformed   int     `json:"timesPerformed"`
	TotalRepetitions int     `json:"totalRepetitions"`
	AverageWeight    float64 `json:"averageWeight"`
	MaxWeight        float64 `json:"maxWeight"`
}

// WindowStart returns the UTC lower bound of the trailing window ending
// at now.
func WindowStart(now time.Time) time.Time {
	return now.UTC().AddDate(0, 0, -WindowDays)
}

// Aggregate groups executions by exercise type and computes, per type:
// execution count, total repetitions (sets × reps summed), the
// arithmetic mean weight (unweighted by volume) and the maximum weight.
// Summaries come back sorted ascending by type name; empty input yields
// an empty slice.
func Aggregate(executions []model.ExerciseExecution) []Summary {
	type acc struct {
		summary     Summary
		totalWeight float64
	}

	groups := make(map[int64]*acc)
	for _, e := range executions {
		id := int64(0)
		name := UnknownTypeName
		if e.ExerciseType != nil {
			id = e.ExerciseType.ID
			name = e.ExerciseType.Name
		}

		g, ok := groups[id]
		if !ok {
			g = &acc{summary: Summary{ExerciseTypeID: id, ExerciseTypeName: name}}
			groups[id] = g
		}

		g.summary.TimesPerformed++
		g.summary.TotalRepetitions += e.Sets * e.Reps
		g.totalWeight += e.Weight
		if e.Weight > g.summary.MaxWeight {
			g.summary.MaxWeight = e.Weight
		}
	}

	summaries := make([]Summary, 0, len(groups))
	for _, g := range groups {
		g.summary.AverageWeight = g.totalWeight / float64(g.summary.TimesPerformed)
		summaries = append(summaries, g.summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].ExerciseTypeName != summaries[j].ExerciseTypeName {
			return summaries[i].ExerciseTypeName < summaries[j].ExerciseTypeName
		}
		return summaries[i].ExerciseTypeID < summaries[j].ExerciseTypeID
	})

	return summaries
}
