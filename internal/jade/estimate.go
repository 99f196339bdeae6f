package jade

import (
	"time"

	"github.com/xtding233/starrail-backend/internal/patch"
	"github.com/xtding233/starrail-backend/internal/token"
)

// Estimate is the projected balance at the target date.
type Estimate struct {
	Sources    []RewardSource
	TotalJades int
	Rolls      int
	Days       int
}

// Compute sums every reward source plus the current balances.
func Compute(cfg EstimateCfg, now time.Time) (Estimate, error) {
	sources, err := Sources(cfg, now)
	if err != nil {
		return Estimate{}, err
	}
	days, err := patch.Diff(patch.Daily, now, cfg.Until.At(cfg.Server), cfg.Server)
	if err != nil {
		return Estimate{}, err
	}

	jades, rolls := 0, 0
	for _, s := range sources {
		jades += deref(s.Jades)
		rolls += deref(s.Rolls)
	}
	jades += deref(cfg.CurrentJades)

	return Estimate{
		Sources:    sources,
		TotalJades: jades,
		Rolls:      token.StellarJade.Rolls(jades) + rolls + deref(cfg.CurrentRolls),
		Days:       int(days),
	}, nil
}
