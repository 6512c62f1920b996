// Package validate holds the field-level rules for workout entities.
// Rules mirror the persisted column constraints; a returned FieldErrors
// maps the offending field's JSON name to a message.
package validate

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	SessionNameMinLen  = 2
	SessionNameMaxLen  = 100
	SessionNotesMaxLen = 1000

	ExecutionNotesMaxLen = 500
	WeightMin            = 0.01
	WeightMax            = 1000
	SetsMin              = 1
	SetsMax              = 100
	RepsMin              = 1
	RepsMax              = 1000
)

type FieldErrors map[string]string

func (e FieldErrors) Add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Session checks name/notes lengths and the end-after-start rule.
// start and end are compared as submitted, before any UTC conversion.
func Session(name string, start, end time.Time, notes *string) FieldErrors {
	errs := FieldErrors{}

	if n := utf8.RuneCountInString(name); n < SessionNameMinLen || n > SessionNameMaxLen {
		errs.Add("name", fmt.Sprintf("name must be between %d and %d characters", SessionNameMinLen, SessionNameMaxLen))
	}
	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		errs.Add("endTime", "end time must be after start time")
	}
	if notes != nil && utf8.RuneCountInString(*notes) > SessionNotesMaxLen {
		errs.Add("notes", fmt.Sprintf("notes cannot exceed %d characters", SessionNotesMaxLen))
	}

	return errs
}

// Execution checks the weight/sets/reps ranges and the notes length.
func Execution(weight float64, sets, reps int, notes *string) FieldErrors {
	errs := FieldErrors{}

	if weight < WeightMin || weight > WeightMax {
		errs.Add("weight", fmt.Sprintf("weight must be between %g and %g", WeightMin, float64(WeightMax)))
	}
	if sets < SetsMin || sets > SetsMax {
		errs.Add("sets", fmt.Sprintf("sets must be between %d and %d", SetsMin, SetsMax))
	}
	if reps < RepsMin || reps > RepsMax {
		errs.Add("reps", fmt.Sprintf("reps must be between %d and %d", RepsMin, RepsMax))
	}
	if notes != nil && utf8.RuneCountInString(*notes) > ExecutionNotesMaxLen {
		errs.Add("notes", fmt.Sprintf("notes cannot exceed %d characters", ExecutionNotesMaxLen))
	}

	return errs
}
