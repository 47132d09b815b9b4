// Package period handles the half-open date intervals used for hotel
// operating periods. Values are stored in Postgres as daterange literals
// such as "[2024-01-01,2026-01-01)": the start date is inclusive, the
// end date exclusive.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrMalformed     = errors.New("malformed operating period")
	ErrEmptyInterval = errors.New("operating period end must be after start")
)

// Period is a half-open date interval [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// Parse parses a daterange literal of the form "[start,end)".
// Only the inclusive-start/exclusive-end form is accepted, which is how
// Postgres normalizes daterange values.
func Parse(value string) (Period, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ')' {
		return Period{}, fmt.Errorf("%w: %q", ErrMalformed, value)
	}

	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q", ErrMalformed, value)
	}

	start, err := time.Parse(dateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid start date %q", ErrMalformed, parts[0])
	}

	end, err := time.Parse(dateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return Period{}, fmt.Errorf("%w: invalid end date %q", ErrMalformed, parts[1])
	}

	if !end.After(start) {
		return Period{}, ErrEmptyInterval
	}

	return Period{Start: start, End: end}, nil
}

// Contains reports whether the given date falls inside the interval.
func (p Period) Contains(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	return !day.Before(p.Start) && day.Before(p.End)
}

// String renders the interval back into its daterange literal form.
func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.Start.Format(dateLayout), p.End.Format(dateLayout))
}
