package jade

import (
	"time"

	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/patch"
)

// RewardSource is one income stream compiled against a target date.
// Jades and Rolls are nil when the stream does not pay that currency.
type RewardSource struct {
	Name        string
	Jades       *int
	Rolls       *int
	Cadence     patch.Cadence
	Description string
}

type BattlePassType string

const (
	BattlePassNone    BattlePassType = "None"
	BattlePassBasic   BattlePassType = "Basic"
	BattlePassPremium BattlePassType = "Premium"
)

type BattlePass struct {
	Type         BattlePassType
	CurrentLevel int
}

type RailPass struct {
	Enabled  bool
	DaysLeft *int
}

// Date is a calendar day without a time component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// At returns the reset instant of d on server s.
func (d Date) At(s patch.Server) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, s.ResetHour(), 0, 0, 0, time.UTC)
}

// EstimateCfg is the player's situation and the date to project to.
type EstimateCfg struct {
	Server       patch.Server
	Until        Date
	RailPass     RailPass
	BattlePass   BattlePass
	EQ           int // equilibrium level 0..6
	MoC          int // memory of chaos stars 0..30
	CurrentRolls *int
	CurrentJades *int
}

// Validate checks ranges before any calendar math runs.
func (c EstimateCfg) Validate() error {
	if c.EQ < 0 || c.EQ > 6 {
		return apperr.ParseData("eq must be within 0..6, got %d", c.EQ)
	}
	if c.MoC < 0 || c.MoC > 30 {
		return apperr.ParseData("moc must be within 0..30, got %d", c.MoC)
	}
	if c.BattlePass.CurrentLevel < 0 || c.BattlePass.CurrentLevel > 50 {
		return apperr.ParseData("battlePass.currentLevel must be within 0..50, got %d", c.BattlePass.CurrentLevel)
	}
	switch c.BattlePass.Type {
	case BattlePassNone, BattlePassBasic, BattlePassPremium:
	default:
		return apperr.ParseData("unknown battle pass type %q", c.BattlePass.Type)
	}
	switch c.Server {
	case patch.Asia, patch.America, patch.Europe:
	default:
		return apperr.ParseData("unknown server %q", c.Server)
	}
	u := c.Until.At(c.Server)
	if u.Year() != c.Until.Year || int(u.Month()) != c.Until.Month || u.Day() != c.Until.Day {
		return apperr.ParseData("untilDate %04d-%02d-%02d is not a calendar day", c.Until.Year, c.Until.Month, c.Until.Day)
	}
	if c.RailPass.DaysLeft != nil && *c.RailPass.DaysLeft < 0 {
		return apperr.ParseData("railPass.daysLeft must not be negative")
	}
	if c.CurrentJades != nil && *c.CurrentJades < 0 {
		return apperr.ParseData("currentJades must not be negative")
	}
	if c.CurrentRolls != nil && *c.CurrentRolls < 0 {
		return apperr.ParseData("currentRolls must not be negative")
	}
	return nil
}

func intPtr(v int) *int { return &v }

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
