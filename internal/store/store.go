// Package store is the persistence layer for workout entities. Every
// method takes the acting user's id and scopes the query to rows that
// user owns, directly (sessions) or through the parent session
// (executions). A row owned by someone else is reported exactly like a
// missing row.
package store

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by a
	// different user; callers must not be able to tell them apart.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a guarded update touches zero rows
	// but the row still exists under the acting user: the write lost a
	// race. It is surfaced loudly, never merged or retried.
	ErrConflict = errors.New("concurrent modification")

	// ErrSessionNotOwned marks an execution write whose submitted
	// session reference does not resolve within the acting user's scope.
	ErrSessionNotOwned = errors.New("training session not owned by user")
)
