package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrZeroBound     = errors.New("interval bounds must be set")
	ErrEmptyInterval = errors.New("start time must be before end time")
)

// Interval is a half-open range [start, end) of absolute instants.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, ErrZeroBound
	}
	if !start.Before(end) {
		return Interval{}, ErrEmptyInterval
	}

	// Postgres keeps microseconds; both stores must compare the same instants.
	start = start.UTC().Truncate(time.Microsecond)
	end = end.UTC().Truncate(time.Microsecond)
	if !start.Before(end) {
		return Interval{}, ErrEmptyInterval
	}

	return Interval{
		start: start,
		end:   end,
	}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Contains reports whether t falls inside the interval. The end instant is excluded.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}
