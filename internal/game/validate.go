package game

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	for kind, b := range cfg.Banners {
		at := "banners." + kind
		if b.BaseRate != nil && (*b.BaseRate <= 0 || *b.BaseRate > 100) {
			errs = append(errs, at+".base_rate must be in (0,100]")
		}
		if b.MaxPity != nil && *b.MaxPity <= 0 {
			errs = append(errs, at+".max_pity must be >= 1")
		}
		if b.PityStart != nil && *b.PityStart < 0 {
			errs = append(errs, at+".pity_start must be >= 0")
		}
		if b.PityStart != nil && b.MaxPity != nil && *b.PityStart > *b.MaxPity {
			errs = append(errs, at+".pity_start must not exceed max_pity")
		}
		if b.BannerRate != nil && (*b.BannerRate <= 0 || *b.BannerRate > 1) {
			errs = append(errs, at+".banner_rate must be in (0,1]")
		}
		if b.GuaranteeRate != nil && (*b.GuaranteeRate <= 0 || *b.GuaranteeRate > 1) {
			errs = append(errs, at+".guarantee_rate must be in (0,1]")
		}
		if b.GuaranteedPity != nil && *b.GuaranteedPity < 1 {
			errs = append(errs, at+".guaranteed_pity must be >= 1")
		}
		if b.MaxEidolon != nil && *b.MaxEidolon < 0 {
			errs = append(errs, at+".max_eidolon must be >= 0")
		}
	}

	seen := make(map[string]bool, len(cfg.Schedule))
	for i, p := range cfg.Schedule {
		v, err := semver.NewVersion(p.Version)
		if err != nil {
			errs = append(errs, fmt.Sprintf("schedule[%d].version %q is not a version", i, p.Version))
			continue
		}
		key := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
		if seen[key] {
			errs = append(errs, fmt.Sprintf("schedule[%d].version %s is listed twice", i, key))
		}
		seen[key] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
