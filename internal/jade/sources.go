package jade

import (
	"fmt"
	"time"

	"github.com/xtding233/starrail-backend/internal/patch"
)

// compileCtx is shared by every source of one estimate.
type compileCtx struct {
	cfg   EstimateCfg
	now   time.Time
	until time.Time
	days  int
}

func (c compileCtx) diff(cadence patch.Cadence) (int, error) {
	n, err := patch.Diff(cadence, c.now, c.until, c.cfg.Server)
	if err != nil {
		return 0, fmt.Errorf("%s diff: %w", cadence, err)
	}
	return int(n), nil
}

type sourceFunc func(c compileCtx) (RewardSource, error)

// catalogue is the order sources are reported in.
var catalogue = []sourceFunc{
	simulatedUniverse,
	namelessHonor,
	railPass,
	dailyMissions,
	dailyText,
	hoyolabCheckIn,
	memoryOfChaos,
	characterTrials,
	emberTrade,
}

// Sources compiles every reward stream between now and cfg.Until.
func Sources(cfg EstimateCfg, now time.Time) ([]RewardSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := compileCtx{cfg: cfg, now: now.UTC(), until: cfg.Until.At(cfg.Server)}
	days, err := c.diff(patch.Daily)
	if err != nil {
		return nil, err
	}
	c.days = days

	out := make([]RewardSource, 0, len(catalogue))
	for _, fn := range catalogue {
		src, err := fn(c)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

// weekly yield of the Simulated Universe indexed by equilibrium level
var suWeekly = [7]int{75, 75, 105, 135, 165, 195, 225}

func simulatedUniverse(c compileCtx) (RewardSource, error) {
	weeks, err := c.diff(patch.Weekly)
	if err != nil {
		return RewardSource{}, err
	}
	return RewardSource{
		Name:        "Simulated Universe",
		Jades:       intPtr(suWeekly[c.cfg.EQ] * weeks),
		Cadence:     patch.Weekly,
		Description: fmt.Sprintf("%d jades per weekly reset at equilibrium %d", suWeekly[c.cfg.EQ], c.cfg.EQ),
	}, nil
}

type passBonus struct {
	jades, rolls, levels int
}

var battlePassBonus = map[BattlePassType]passBonus{
	BattlePassNone:    {},
	BattlePassBasic:   {jades: 680, rolls: 4},
	BattlePassPremium: {jades: 880, rolls: 4, levels: 10},
}

// namelessHonor walks the battle pass week by week. Levels reset at every
// patch boundary, where the pass is bought again.
func namelessHonor(c compileCtx) (RewardSource, error) {
	src := RewardSource{
		Name:        "Nameless Honor",
		Cadence:     patch.WholePatch,
		Description: "battle pass level rewards, repurchased every patch",
	}
	if c.cfg.BattlePass.Type == BattlePassNone {
		return src, nil
	}

	bonus := battlePassBonus[c.cfg.BattlePass.Type]
	level := c.cfg.BattlePass.CurrentLevel
	claimed := level >= 50
	current := patch.Around(c.now)
	jades, rolls := 0, 0

	end := c.until.Add(24 * time.Hour)
	for d := patch.NextMonday(c.now, c.cfg.Server); d.Before(end); d = d.Add(7 * 24 * time.Hour) {
		if d.After(current.End) {
			for d.After(current.End) {
				current = current.Next()
			}
			level, claimed = bonus.levels, false
			jades += bonus.jades
			rolls += bonus.rolls
		}

		if level < 40 {
			level += 10
		} else {
			level = 50
		}

		switch {
		case level >= 50:
			if !claimed {
				jades += 680
				claimed = true
			}
		case level >= 40:
		case level >= 30:
			rolls += 2
		case level >= 10:
			rolls++
		}
	}

	src.Jades = intPtr(jades)
	src.Rolls = intPtr(rolls)
	return src, nil
}

func railPass(c compileCtx) (RewardSource, error) {
	src := RewardSource{
		Name:        "Express Supply Pass",
		Jades:       intPtr(0),
		Cadence:     patch.Monthly,
		Description: "90 jades per day, 300 on each purchase",
	}
	if !c.cfg.RailPass.Enabled {
		return src, nil
	}
	jades := 90 * c.days
	if deref(c.cfg.RailPass.DaysLeft) < c.days {
		jades += 300 * c.days / 30
	}
	src.Jades = intPtr(jades)
	return src, nil
}

func dailyMissions(c compileCtx) (RewardSource, error) {
	return RewardSource{
		Name:        "Daily Missions",
		Jades:       intPtr(60 * c.days),
		Cadence:     patch.Daily,
		Description: "60 jades per daily reset",
	}, nil
}

func dailyText(c compileCtx) (RewardSource, error) {
	return RewardSource{
		Name:        "Daily Text Messages",
		Jades:       intPtr(5 * c.days),
		Cadence:     patch.Daily,
		Description: "5 jades per daily reset",
	}, nil
}

func hoyolabCheckIn(c compileCtx) (RewardSource, error) {
	n := 0
	for d := range patch.DateRange(c.now, c.until.Add(24*time.Hour)) {
		switch d.Day() {
		case 5, 13, 20:
			n++
		}
	}
	return RewardSource{
		Name:        "HoyoLab Check-in",
		Jades:       intPtr(20 * n),
		Cadence:     patch.Monthly,
		Description: "20 jades on the 5th, 13th and 20th of each month",
	}, nil
}

func memoryOfChaos(c compileCtx) (RewardSource, error) {
	cycles, err := c.diff(patch.BiWeekly)
	if err != nil {
		return RewardSource{}, err
	}
	return RewardSource{
		Name:        "Memory of Chaos",
		Jades:       intPtr(c.cfg.MoC / 3 * 60 * cycles),
		Cadence:     patch.BiWeekly,
		Description: fmt.Sprintf("%d stars per cycle", c.cfg.MoC),
	}, nil
}

func characterTrials(c compileCtx) (RewardSource, error) {
	halves, err := c.diff(patch.HalfPatch)
	if err != nil {
		return RewardSource{}, err
	}
	return RewardSource{
		Name:        "Character Trials",
		Jades:       intPtr(20 * halves),
		Cadence:     patch.HalfPatch,
		Description: "20 jades per new banner",
	}, nil
}

func emberTrade(c compileCtx) (RewardSource, error) {
	months, err := c.diff(patch.Monthly)
	if err != nil {
		return RewardSource{}, err
	}
	return RewardSource{
		Name:        "Embers Exchange",
		Rolls:       intPtr(5 * months),
		Cadence:     patch.Monthly,
		Description: "5 Star Rail Passes from the monthly ember shop",
	}, nil
}
