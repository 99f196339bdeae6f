package gacha

import (
	"github.com/xtding233/starrail-backend/internal/apperr"
)

// MaxPulls bounds a single simulation request.
const MaxPulls = 2000

// SimState is one node of the pull distribution. States that agree on every
// field but Rate are the same node.
type SimState struct {
	Pity           int
	Guaranteed     bool
	GuaranteedPity int
	Eidolon        int // -1 means not owned yet
	Rate           float64
}

// ReducedSim is the probability mass of one eidolon at one pull.
type ReducedSim struct {
	Eidolon int
	Rate    float64
}

// SimRequest is the player's current banner state and pull budget.
type SimRequest struct {
	Banner         Banner
	CurrentEidolon int
	Pity           int
	Pulls          int
	NextGuaranteed bool
	GuaranteedPity int
}

// Validate checks the state against the banner bounds and the pull cap.
func (r SimRequest) Validate() error {
	b := r.Banner
	if err := b.Validate(); err != nil {
		return apperr.ParseData("%v", err)
	}
	if r.CurrentEidolon < -1 || r.CurrentEidolon > b.MaxEidolon {
		return apperr.ParseData("currentEidolon must be within -1..%d, got %d", b.MaxEidolon, r.CurrentEidolon)
	}
	if r.Pity < 0 || r.Pity > b.MaxPity-1 {
		return apperr.ParseData("pity must be within 0..%d, got %d", b.MaxPity-1, r.Pity)
	}
	if r.Pulls < 0 || r.Pulls > MaxPulls {
		return apperr.ParseData("pulls must be within 0..%d, got %d", MaxPulls, r.Pulls)
	}
	if b.GuaranteedPity != nil && (r.GuaranteedPity < 0 || r.GuaranteedPity > *b.GuaranteedPity-1) {
		return apperr.ParseData("epitomizedPity must be within 0..%d, got %d", *b.GuaranteedPity-1, r.GuaranteedPity)
	}
	return nil
}

func (r SimRequest) initial() SimState {
	gp := r.GuaranteedPity
	if r.Banner.GuaranteedPity == nil {
		gp = 0
	}
	return SimState{
		Pity:           r.Pity,
		Guaranteed:     r.NextGuaranteed,
		GuaranteedPity: gp,
		Eidolon:        r.CurrentEidolon,
		Rate:           1.0,
	}
}

// key folds every non-rate field of s into one integer.
func (b Banner) key(s SimState) int {
	g := 0
	if s.Guaranteed {
		g = 1
	}
	return s.Pity + (b.MaxPity+1)*((s.Eidolon+1)+(b.MaxEidolon+2)*(g+2*s.GuaranteedPity))
}

// step advances the distribution by one pull, merging equivalent states.
// Output order follows first insertion, so results are deterministic.
func (b Banner) step(states []SimState) []SimState {
	index := make(map[int]int, len(states))
	out := make([]SimState, 0, len(states)+4)
	add := func(s SimState) {
		if s.Rate <= 0 {
			return
		}
		k := b.key(s)
		if i, ok := index[k]; ok {
			out[i].Rate += s.Rate
			return
		}
		index[k] = len(out)
		out = append(out, s)
	}

	for _, s := range states {
		if s.Rate <= 0 {
			continue
		}
		if s.Eidolon >= b.MaxEidolon {
			add(s)
			continue
		}

		p := b.hitProb(s.Pity)
		br := b.featuredRate(s.Guaranteed, s.GuaranteedPity)
		next := b.nextGuaranteedPity(s.GuaranteedPity)

		// miss
		if p < 1 {
			add(SimState{
				Pity:           s.Pity + 1,
				Guaranteed:     s.Guaranteed,
				GuaranteedPity: s.GuaranteedPity,
				Eidolon:        s.Eidolon,
				Rate:           s.Rate * (1 - p),
			})
		}
		// featured and wanted
		add(SimState{Eidolon: s.Eidolon + 1, Rate: s.Rate * p * br * b.GuaranteeRate})
		// featured but another rate-up item
		if b.GuaranteeRate < 1 {
			off := s.Rate * p * br * (1 - b.GuaranteeRate)
			if b.epitomized(s.GuaranteedPity) {
				// TODO: confirm in-game that the epitomized path also covers rate-up offs
				add(SimState{Eidolon: s.Eidolon + 1, Rate: off})
			} else {
				add(SimState{GuaranteedPity: next, Eidolon: s.Eidolon, Rate: off})
			}
		}
		// standard pool; next top-rarity hit is featured
		if br < 1 {
			add(SimState{Guaranteed: true, GuaranteedPity: next, Eidolon: s.Eidolon, Rate: s.Rate * p * (1 - br)})
		}
	}
	return out
}

// reduce sums state mass per eidolon. Bucket k holds eidolon k-1.
func (b Banner) reduce(states []SimState) []ReducedSim {
	out := make([]ReducedSim, b.MaxEidolon+2)
	for k := range out {
		out[k].Eidolon = k - 1
	}
	for _, s := range states {
		out[s.Eidolon+1].Rate += s.Rate
	}
	return out
}

// cumulate turns per-eidolon mass into P(eidolon >= e) for e in 0..MaxEidolon.
func (b Banner) cumulate(reduced []ReducedSim) []ReducedSim {
	out := make([]ReducedSim, b.MaxEidolon+1)
	acc := 0.0
	for e := b.MaxEidolon; e >= 0; e-- {
		acc += reduced[e+1].Rate
		out[e] = ReducedSim{Eidolon: e, Rate: clamp01(acc)}
	}
	return out
}

// Distribution returns, for pull 0..Pulls, the probability mass of every
// eidolon including -1. Each row sums to 1.
func Distribution(req SimRequest) ([][]ReducedSim, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	b := req.Banner
	states := []SimState{req.initial()}
	rows := make([][]ReducedSim, 0, req.Pulls+1)
	rows = append(rows, b.reduce(states))
	for i := 0; i < req.Pulls; i++ {
		states = b.step(states)
		rows = append(rows, b.reduce(states))
	}
	return rows, nil
}

// Simulate returns, for pull 0..Pulls, the cumulative chance of owning at
// least eidolon e, for e in 0..MaxEidolon.
func Simulate(req SimRequest) ([][]ReducedSim, error) {
	rows, err := Distribution(req)
	if err != nil {
		return nil, err
	}
	out := make([][]ReducedSim, len(rows))
	for i, row := range rows {
		out[i] = req.Banner.cumulate(row)
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
