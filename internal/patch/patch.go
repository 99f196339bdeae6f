package patch

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Patch is a six-week release block holding two half-patch banner slots.
type Patch struct {
	Name         string
	Version      semver.Version
	Start        time.Time
	SecondBanner time.Time
	End          time.Time
}

const (
	halfLength  = 3 * week
	patchLength = 6 * week
)

// known release titles; versions past the table get a generic name.
var patchNames = map[string]string{
	"1.1": "Galactic Roaming",
	"1.2": "Even Immortality Ends",
	"1.3": "Celestial Eyes Above Mortal Ruins",
	"1.4": "Jolted Awake From a Winter Dream",
	"1.5": "The Crepuscule Zone",
	"1.6": "Crown of the Mundane and Divine",
}

// AnchorStart is the start of patch 1.1.
var AnchorStart = time.Date(2023, time.June, 7, 2, 0, 0, 0, time.UTC)

// First returns the anchor patch 1.1.
func First() Patch {
	return newPatch(*semver.New(1, 1, 0, "", ""), AnchorStart)
}

func newPatch(v semver.Version, start time.Time) Patch {
	return Patch{
		Name:         nameFor(v),
		Version:      v,
		Start:        start,
		SecondBanner: start.Add(halfLength),
		End:          start.Add(patchLength),
	}
}

func nameFor(v semver.Version) string {
	key := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	if n, ok := patchNames[key]; ok {
		return n
	}
	return "Version " + key
}

// Next returns the following patch.
func (p Patch) Next() Patch {
	return newPatch(p.Version.IncMinor(), p.End)
}

// Contains reports whether Start <= t <= End.
func (p Patch) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Around returns the earliest patch, walking from the anchor, that ends no
// earlier than t.
func Around(t time.Time) Patch {
	p := First()
	for p.End.Before(t) {
		p = p.Next()
	}
	return p
}

// Upcoming lists the first n patches starting at the anchor.
func Upcoming(n int) []Patch {
	out := make([]Patch, 0, n)
	p := First()
	for i := 0; i < n; i++ {
		out = append(out, p)
		p = p.Next()
	}
	return out
}
