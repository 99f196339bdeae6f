package gacha

// Puller samples one pull at a time under the same banner rules as the exact
// simulator. It is the stochastic twin of step.
type Puller struct {
	Banner Banner
	State  SimState // Rate is unused
	RNG    RandomSource
}

// NewPuller starts a puller from the request's initial state.
func NewPuller(req SimRequest, rng RandomSource) *Puller {
	if rng == nil {
		rng = NewRNG(nil)
	}
	return &Puller{Banner: req.Banner, State: req.initial(), RNG: rng}
}

// Pull performs one warp and reports whether the wanted item dropped.
// - A miss increments the pity counter.
// - A standard-pool hit sets Guaranteed for the next top-rarity hit.
// - A featured hit that is not the wanted item bumps the epitomized counter.
// Once MaxEidolon is reached the puller stops changing state.
func (ps *Puller) Pull() (bool, error) {
	b, s := ps.Banner, ps.State
	if s.Eidolon >= b.MaxEidolon {
		return false, nil
	}

	hit, err := Draw(b.hitProb(s.Pity), ps.RNG)
	if err != nil {
		return false, err
	}
	if !hit {
		ps.State.Pity++
		return false, nil
	}

	next := b.nextGuaranteedPity(s.GuaranteedPity)
	featured, err := Draw(b.featuredRate(s.Guaranteed, s.GuaranteedPity), ps.RNG)
	if err != nil {
		return false, err
	}
	if !featured {
		ps.State = SimState{Guaranteed: true, GuaranteedPity: next, Eidolon: s.Eidolon}
		return false, nil
	}

	wanted, err := Draw(b.GuaranteeRate, ps.RNG)
	if err != nil {
		return false, err
	}
	if wanted || b.epitomized(s.GuaranteedPity) {
		ps.State = SimState{Eidolon: s.Eidolon + 1}
		return true, nil
	}
	ps.State = SimState{GuaranteedPity: next, Eidolon: s.Eidolon}
	return false, nil
}
