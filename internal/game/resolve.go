// resolve.go
package game

import (
	"fmt"

	"github.com/xtding233/starrail-backend/internal/gacha"
)

// Snapshot is an immutable, validated view of the banner config.
type Snapshot struct {
	Version  string
	Banners  map[gacha.Kind]gacha.Banner
	Schedule []PatchBanners
}

// Banner returns the banner for kind.
func (s Snapshot) Banner(kind gacha.Kind) (gacha.Banner, bool) {
	b, ok := s.Banners[kind]
	return b, ok
}

// Resolve applies cfg on top of the built-in banners and schedule.
func Resolve(cfg RawConfig) (Snapshot, error) {
	if err := ValidateRaw(cfg); err != nil {
		return Snapshot{}, err
	}

	banners := gacha.DefaultBanners()
	for name, o := range cfg.Banners {
		kind := gacha.Kind(name)
		b, ok := banners[kind]
		if !ok && o.Name == nil {
			n := name
			o.Name = &n
		}
		b = apply(b, o)
		if err := b.Validate(); err != nil {
			return Snapshot{}, fmt.Errorf("banner %s: %w", kind, err)
		}
		banners[kind] = b
	}

	schedule := DefaultSchedule()
	if len(cfg.Schedule) > 0 {
		schedule = append([]PatchBanners(nil), cfg.Schedule...)
	}
	return Snapshot{Version: cfg.Version, Banners: banners, Schedule: schedule}, nil
}

func apply(b gacha.Banner, o BannerConfig) gacha.Banner {
	if o.Name != nil {
		b.Name = *o.Name
	}
	if o.BaseRate != nil {
		b.BaseRate = *o.BaseRate
	}
	if o.PityStart != nil {
		b.PityStart = *o.PityStart
	}
	if o.MaxPity != nil {
		b.MaxPity = *o.MaxPity
	}
	if o.BannerRate != nil {
		b.BannerRate = *o.BannerRate
	}
	if o.GuaranteeRate != nil {
		b.GuaranteeRate = *o.GuaranteeRate
	}
	if o.GuaranteedPity != nil {
		gp := *o.GuaranteedPity
		b.GuaranteedPity = &gp
	}
	if o.MaxEidolon != nil {
		b.MaxEidolon = *o.MaxEidolon
	}
	return b
}
