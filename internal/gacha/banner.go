package gacha

import (
	"errors"
	"fmt"
	"sort"
)

// Kind identifies one of the banner classes.
type Kind string

const (
	KindSSR Kind = "SSR" // featured 5* character
	KindSR  Kind = "SR"  // rate-up 4* character
	KindLC  Kind = "LC"  // featured 5* light cone
)

var ErrBannerConfig = errors.New("invalid banner config")

// Banner describes the pity curve and featured-item odds of a warp banner.
// - BaseRate is a percentage (0.6 means 0.6%).
// - From PityStart on, each pull adds 10x BaseRate to the hit rate.
// - BannerRate is the chance that a top-rarity hit is featured.
// - GuaranteeRate is the chance that a featured hit is the wanted item.
// - GuaranteedPity, when set, forces a wanted hit after that many off hits.
type Banner struct {
	Name           string
	BaseRate       float64
	PityStart      int
	MaxPity        int
	BannerRate     float64
	GuaranteeRate  float64
	GuaranteedPity *int
	MaxEidolon     int
}

// DefaultBanners returns the live banner constants keyed by kind.
func DefaultBanners() map[Kind]Banner {
	return map[Kind]Banner{
		KindSSR: {
			Name:          "5 Star Character",
			BaseRate:      0.6,
			PityStart:     74,
			MaxPity:       90,
			BannerRate:    0.5,
			GuaranteeRate: 1.0,
			MaxEidolon:    6,
		},
		KindSR: {
			Name:          "4 Star Character",
			BaseRate:      5.1,
			PityStart:     9,
			MaxPity:       10,
			BannerRate:    0.5,
			GuaranteeRate: 1.0 / 3.0,
			MaxEidolon:    6,
		},
		KindLC: {
			Name:          "5 Star Light Cone",
			BaseRate:      0.7,
			PityStart:     63,
			MaxPity:       80,
			BannerRate:    0.75,
			GuaranteeRate: 1.0,
			MaxEidolon:    5,
		},
	}
}

// Kinds returns the kinds present in m, known kinds first.
func Kinds(m map[Kind]Banner) []Kind {
	out := make([]Kind, 0, len(m))
	for _, k := range []Kind{KindSSR, KindSR, KindLC} {
		if _, ok := m[k]; ok {
			out = append(out, k)
		}
	}
	var extra []Kind
	for k := range m {
		if k != KindSSR && k != KindSR && k != KindLC {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Validate checks that the banner can drive the simulator.
func (b Banner) Validate() error {
	switch {
	case b.BaseRate <= 0 || b.BaseRate > 100:
		return fmt.Errorf("%w: base rate %v must be in (0,100]", ErrBannerConfig, b.BaseRate)
	case b.MaxPity <= 0:
		return fmt.Errorf("%w: max pity must be >= 1", ErrBannerConfig)
	case b.PityStart < 0 || b.PityStart > b.MaxPity:
		return fmt.Errorf("%w: pity start %d must satisfy 0 <= start <= max pity", ErrBannerConfig, b.PityStart)
	case b.BannerRate <= 0 || b.BannerRate > 1:
		return fmt.Errorf("%w: banner rate %v must be in (0,1]", ErrBannerConfig, b.BannerRate)
	case b.GuaranteeRate <= 0 || b.GuaranteeRate > 1:
		return fmt.Errorf("%w: guarantee rate %v must be in (0,1]", ErrBannerConfig, b.GuaranteeRate)
	case b.MaxEidolon < 0:
		return fmt.Errorf("%w: max eidolon must be >= 0", ErrBannerConfig)
	case b.GuaranteedPity != nil && *b.GuaranteedPity < 1:
		return fmt.Errorf("%w: guaranteed pity must be >= 1", ErrBannerConfig)
	}
	return nil
}

// epitomized reports whether the off-hit counter forces the wanted item.
func (b Banner) epitomized(guaranteedPity int) bool {
	return b.GuaranteedPity != nil && guaranteedPity >= *b.GuaranteedPity-1
}

// nextGuaranteedPity is the counter value after an off hit.
func (b Banner) nextGuaranteedPity(guaranteedPity int) int {
	if b.GuaranteedPity == nil {
		return 0
	}
	return guaranteedPity + 1
}

// featuredRate is the chance that a hit lands on the featured pool.
func (b Banner) featuredRate(guaranteed bool, guaranteedPity int) float64 {
	if b.epitomized(guaranteedPity) || guaranteed {
		return 1.0
	}
	return b.BannerRate
}
