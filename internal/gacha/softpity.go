package gacha

// Rate returns the hit percentage of the pull that brings the counter to pity.
// Before PityStart the base rate applies; from there it ramps linearly by
// 10x the base rate per pull. The result is clamped to [0,100].
// Example: 5* character, pity 74 -> 0.6 + 6.0 = 6.6
func (b Banner) Rate(pity int) float64 {
	r := b.BaseRate
	if pity >= b.PityStart {
		r = b.BaseRate + b.BaseRate*10*float64(pity-b.PityStart+1)
	}
	if r < 0 {
		r = 0
	}
	if r > 100 {
		r = 100
	}
	return r
}

// hitProb computes the probability the next pull hits, given the current
// counter. Reaching MaxPity always hits (hard pity).
func (b Banner) hitProb(pity int) float64 {
	if pity+1 >= b.MaxPity {
		return 1.0
	}
	p := b.Rate(pity+1) / 100
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
