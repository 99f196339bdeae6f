package game

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/xtding233/starrail-backend/internal/patch"
)

// BannerSlot is one half-patch banner window.
type BannerSlot struct {
	Version    string
	PatchName  string
	Half       int // 1 or 2
	Start      time.Time
	End        time.Time
	Characters []string
}

func minorKey(v semver.Version) string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Timeline flattens patches into half-patch slots, filling in the featured
// characters known to the schedule.
func (s Snapshot) Timeline(patches []patch.Patch) []BannerSlot {
	byVersion := make(map[string]PatchBanners, len(s.Schedule))
	for _, pb := range s.Schedule {
		if v, err := semver.NewVersion(pb.Version); err == nil {
			byVersion[minorKey(*v)] = pb
		}
	}

	out := make([]BannerSlot, 0, 2*len(patches))
	for _, p := range patches {
		key := minorKey(p.Version)
		pb := byVersion[key]
		out = append(out,
			BannerSlot{Version: key, PatchName: p.Name, Half: 1, Start: p.Start, End: p.SecondBanner, Characters: names(pb.First)},
			BannerSlot{Version: key, PatchName: p.Name, Half: 2, Start: p.SecondBanner, End: p.End, Characters: names(pb.Second)},
		)
	}
	return out
}

func names(in []string) []string {
	return append([]string{}, in...)
}
