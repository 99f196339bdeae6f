package patch

import (
	"fmt"
	"strings"
	"time"
)

// Server is a game server region. Each region resets dailies at a fixed UTC hour.
type Server string

const (
	Asia    Server = "Asia"
	America Server = "America"
	Europe  Server = "Europe"
)

// ResetHour returns the UTC hour of the daily reset.
func (s Server) ResetHour() int {
	switch s {
	case America:
		return 9
	case Europe:
		return 12
	default:
		return 19
	}
}

// ParseServer accepts the region name case-insensitively.
func ParseServer(s string) (Server, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asia":
		return Asia, nil
	case "america":
		return America, nil
	case "europe":
		return Europe, nil
	}
	return "", fmt.Errorf("unknown server %q", s)
}

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// TodayAtReset returns the latest reset instant not after t.
func TodayAtReset(t time.Time, s Server) time.Time {
	return atReset(t, s, 0)
}

// TodayRightAfterReset is TodayAtReset shifted by one minute, so that the
// reset day itself is included when iterating.
func TodayRightAfterReset(t time.Time, s Server) time.Time {
	return atReset(t, s, 1)
}

func atReset(t time.Time, s Server, minute int) time.Time {
	t = t.UTC()
	r := time.Date(t.Year(), t.Month(), t.Day(), s.ResetHour(), minute, 0, 0, time.UTC)
	if r.After(t) {
		r = r.Add(-day)
	}
	return r
}

// NextMonday returns the first Monday reset strictly after t.
func NextMonday(t time.Time, s Server) time.Time {
	d := TodayAtReset(t, s).Add(day)
	for d.Weekday() != time.Monday {
		d = d.Add(day)
	}
	return d
}

// DateRange yields a, a+1d, a+2d, ... while strictly before b.
func DateRange(a, b time.Time) func(yield func(time.Time) bool) {
	return func(yield func(time.Time) bool) {
		for d := a; d.Before(b); d = d.Add(day) {
			if !yield(d) {
				return
			}
		}
	}
}
