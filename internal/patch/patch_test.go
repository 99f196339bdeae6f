package patch

import (
	"errors"
	"testing"
	"time"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestAroundFindsPatch13(t *testing.T) {
	p := Around(mustTime(t, "2023-09-01T00:00:00Z"))
	if !p.Start.Equal(mustTime(t, "2023-08-30T02:00:00Z")) {
		t.Fatalf("start = %v", p.Start)
	}
	if p.Version.String() != "1.3.0" {
		t.Fatalf("version = %s", p.Version.String())
	}
	if p.Name != "Celestial Eyes Above Mortal Ruins" {
		t.Fatalf("name = %q", p.Name)
	}
}

func TestPatchBoundaries(t *testing.T) {
	p := First()
	if !(p.Start.Before(p.SecondBanner) && p.SecondBanner.Before(p.End)) {
		t.Fatalf("boundaries out of order: %v %v %v", p.Start, p.SecondBanner, p.End)
	}
	n := p.Next()
	if !n.Start.Equal(p.End) || n.End.Sub(n.Start) != 6*week {
		t.Fatalf("next patch misaligned: %+v", n)
	}
	if n.Version.String() != "1.2.0" {
		t.Fatalf("next version = %s", n.Version.String())
	}
}

func TestAroundContainsRoundTrip(t *testing.T) {
	for ts := AnchorStart; ts.Before(AnchorStart.Add(400 * day)); ts = ts.Add(37*time.Hour + 13*time.Minute) {
		if p := Around(ts); !p.Contains(ts) {
			t.Fatalf("Around(%v) = %s which does not contain it", ts, p.Version.String())
		}
	}
}

func TestUpcomingNames(t *testing.T) {
	ps := Upcoming(8)
	if len(ps) != 8 {
		t.Fatalf("len = %d", len(ps))
	}
	if ps[3].Version.String() != "1.4.0" {
		t.Fatalf("4th version = %s", ps[3].Version.String())
	}
	if ps[6].Name != "Version 1.7" {
		t.Fatalf("unknown version name = %q", ps[6].Name)
	}
}

func TestTodayAtReset(t *testing.T) {
	got := TodayAtReset(mustTime(t, "2023-06-11T02:12:12Z"), Asia)
	if !got.Equal(mustTime(t, "2023-06-10T19:00:00Z")) {
		t.Fatalf("asia reset = %v", got)
	}
	got = TodayAtReset(mustTime(t, "2023-06-11T12:00:00Z"), Europe)
	if !got.Equal(mustTime(t, "2023-06-11T12:00:00Z")) {
		t.Fatalf("europe reset on the hour = %v", got)
	}
	got = TodayRightAfterReset(mustTime(t, "2023-06-11T09:00:30Z"), America)
	if !got.Equal(mustTime(t, "2023-06-10T09:01:00Z")) {
		t.Fatalf("america right-after-reset = %v", got)
	}
}

func TestNextMonday(t *testing.T) {
	got := NextMonday(mustTime(t, "2023-06-12T20:00:00Z"), Asia)
	if !got.Equal(mustTime(t, "2023-06-19T19:00:00Z")) {
		t.Fatalf("next monday = %v", got)
	}
}

func TestDiff(t *testing.T) {
	from := mustTime(t, "2023-06-11T02:12:12Z")
	to := mustTime(t, "2023-06-30T18:29:27Z")
	cases := []struct {
		cadence  Cadence
		from, to time.Time
		want     uint32
	}{
		{Weekly, from, to, 3},
		{Daily, from, to, 20},
		{OneTime, from, to, 1},
		{Monthly, mustTime(t, "2023-06-10T00:00:00Z"), mustTime(t, "2023-08-15T00:00:00Z"), 2},
		{WholePatch, mustTime(t, "2023-06-10T00:00:00Z"), mustTime(t, "2023-09-01T00:00:00Z"), 2},
		{HalfPatch, mustTime(t, "2023-06-10T00:00:00Z"), mustTime(t, "2023-07-20T00:00:00Z"), 2},
		{HalfPatch, mustTime(t, "2023-06-30T00:00:00Z"), mustTime(t, "2023-07-20T00:00:00Z"), 1},
		{BiWeekly, mustTime(t, "2023-06-07T00:00:00Z"), mustTime(t, "2023-07-07T00:00:00Z"), 2},
		{BiWeekly, mustTime(t, "2023-06-13T00:00:00Z"), mustTime(t, "2023-06-20T00:00:00Z"), 0},
		{BiWeekly, mustTime(t, "2023-05-01T00:00:00Z"), mustTime(t, "2023-05-10T00:00:00Z"), 0},
	}
	for _, c := range cases {
		got, err := Diff(c.cadence, c.from, c.to, Asia)
		if err != nil {
			t.Fatalf("%s: %v", c.cadence, err)
		}
		if got != c.want {
			t.Errorf("Diff(%s, %v, %v) = %d, want %d", c.cadence, c.from, c.to, got, c.want)
		}
	}
}

func TestDiffRejectsReversedRange(t *testing.T) {
	from := mustTime(t, "2023-07-01T00:00:00Z")
	to := mustTime(t, "2023-06-01T00:00:00Z")
	for _, c := range []Cadence{Daily, Weekly, BiWeekly, Monthly, WholePatch, HalfPatch, OneTime} {
		_, err := Diff(c, from, to, Asia)
		if !errors.Is(err, apperr.ErrBadDateComparison) {
			t.Errorf("%s: err = %v, want ErrBadDateComparison", c, err)
		}
		if apperr.KindOf(err) != apperr.KindComputation {
			t.Errorf("%s: kind = %q", c, apperr.KindOf(err))
		}
	}
}

func TestDiffEmptyRange(t *testing.T) {
	ts := mustTime(t, "2023-08-02T05:00:00Z")
	for _, c := range []Cadence{Weekly, BiWeekly, Monthly, WholePatch, HalfPatch} {
		got, err := Diff(c, ts, ts, Europe)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		if got != 0 {
			t.Errorf("%s over an empty range = %d", c, got)
		}
	}
}

func TestDateRange(t *testing.T) {
	a := mustTime(t, "2023-06-01T00:00:00Z")
	var got []time.Time
	for d := range DateRange(a, a.Add(3*day)) {
		got = append(got, d)
	}
	if len(got) != 3 || !got[2].Equal(a.Add(2*day)) {
		t.Fatalf("DateRange = %v", got)
	}
	n := 0
	for range DateRange(a, a) {
		n++
	}
	if n != 0 {
		t.Fatalf("empty DateRange yielded %d", n)
	}
}
