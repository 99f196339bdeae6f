package patch

import (
	"time"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

// Cadence is how often a reward stream pays out.
type Cadence string

const (
	Daily      Cadence = "Daily"
	Weekly     Cadence = "Weekly"
	BiWeekly   Cadence = "BiWeekly"
	Monthly    Cadence = "Monthly"
	WholePatch Cadence = "WholePatch"
	HalfPatch  Cadence = "HalfPatch"
	OneTime    Cadence = "OneTime"
)

// bi-weekly cycles (Memory of Chaos) are aligned to this Monday.
var biWeeklyAnchor = time.Date(2023, time.May, 29, 0, 0, 0, 0, time.UTC)

// Diff counts how many times cadence c ticks between from and to for server s.
func Diff(c Cadence, from, to time.Time, s Server) (uint32, error) {
	from, to = from.UTC(), to.UTC()
	if from.After(to) {
		return 0, apperr.Computation(apperr.ErrBadDateComparison)
	}

	var n int
	switch c {
	case Daily:
		for range DateRange(TodayAtReset(from, s), to) {
			n++
		}
	case Weekly:
		for d := range DateRange(TodayRightAfterReset(from, s), to.Add(day)) {
			if d.Weekday() == time.Monday {
				n++
			}
		}
	case Monthly:
		for d := range DateRange(from, to.Add(day)) {
			if d.Day() == 1 {
				n++
			}
		}
	case WholePatch:
		for p := Around(from).Next(); p.Start.Before(to); p = p.Next() {
			n++
		}
	case HalfPatch:
		n = halfPatches(from, to)
	case BiWeekly:
		n = biWeeks(from, to, s)
	case OneTime:
		n = 1
	default:
		return 0, apperr.ParseData("unknown cadence %q", c)
	}
	return apperr.CheckedUint32(n)
}

func halfPatches(from, to time.Time) int {
	p := Around(from)
	var boundary time.Time
	switch {
	case from.Before(p.SecondBanner):
		boundary = p.SecondBanner
	case from.Before(p.End):
		boundary = p.End
	default:
		boundary = p.End.Add(halfLength)
	}
	n := 0
	for !boundary.After(to) {
		n++
		boundary = boundary.Add(halfLength)
	}
	return n
}

// biWeeks walks Mondays from the anchor. Every second Monday opens a new
// cycle; cycles opening inside (from, to] are counted.
func biWeeks(from, to time.Time, s Server) int {
	anchor := biWeeklyAnchor.Add(time.Duration(s.ResetHour()) * time.Hour)
	last, next := anchor, anchor
	count := 0
	skip := false
	for d := range DateRange(anchor, to.Add(day)) {
		if d.Weekday() != time.Monday {
			continue
		}
		if skip {
			skip = false
			continue
		}
		skip = true
		last, next = next, d
		if d.After(from) && !d.After(to) {
			count++
		}
	}
	if to.Before(last) && next.After(from) {
		return 0
	}
	return count
}
