// Package localtime reconciles form input, which carries no timezone,
// with the store, which holds UTC instants. Input values are tagged with
// the display location before conversion; reading them back converts the
// UTC instant into the same location. Both directions preserve the
// instant, so a store→display→store round trip is lossless down to the
// minute precision the input format carries.
package localtime

import (
	"errors"
	"time"
)

// InputLayout matches the HTML datetime-local format the forms submit.
const InputLayout = "2006-01-02T15:04"

const inputLayoutSeconds = "2006-01-02T15:04:05"

var ErrBadFormat = errors.New("expected YYYY-MM-DDTHH:MM")

// ParseInput parses a timezone-unspecified form value and tags it with
// loc. The tag must be applied before any UTC conversion; interpreting
// an untagged value as UTC would shift the instant by the local offset.
func ParseInput(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(InputLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(inputLayoutSeconds, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadFormat
}

// ToStore converts any tagged time to the UTC instant the store keeps.
// Applying it to a value that is already UTC is a no-op.
func ToStore(t time.Time) time.Time {
	return t.UTC()
}

// ToDisplay converts a stored UTC instant to wall-clock time in loc.
// Every timestamp leaving a read path goes through this.
func ToDisplay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc)
}

// FormatInput renders a stored instant back into the form input format,
// in loc, for edit-form prefill.
func FormatInput(t time.Time, loc *time.Location) string {
	return ToDisplay(t, loc).Format(InputLayout)
}

// Location resolves a timezone name from configuration, falling back to
// the server's local zone when the name is empty.
func Location(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
