// Package model holds the request and result types shared by the service
// layer and the transports.
package model

import (
	"github.com/xtding233/starrail-backend/internal/gacha"
)

// PullState is a player's position on a banner.
type PullState struct {
	Banner         gacha.Kind
	CurrentEidolon int
	Pity           int
	Pulls          int
	NextGuaranteed bool
	EpitomizedPity int
}

// Projection is the exact pull distribution for a budget.
type Projection struct {
	RollBudget int
	Rows       [][]gacha.ReducedSim
}

type Sample struct {
	PullState
	Trials int
	Seed   *uint64
}

type SampleResult struct {
	RollBudget int
	gacha.MonteCarloResult
}

// Warp asks for Count sampled pulls starting from the state. Pulls is ignored.
type Warp struct {
	PullState
	Count int
	Seed  *uint64
}

type WarpResult struct {
	Hits  []bool
	State PullState
}

type BannerInfo struct {
	Kind gacha.Kind
	gacha.Banner
}

// GachaDefaults is what a client needs to render an empty simulator form.
type GachaDefaults struct {
	Request     PullState
	JadePerRoll int
	MaxPulls    int
	Banners     []gacha.Kind
}
