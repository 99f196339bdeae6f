package gacha

import (
	"context"
	"math"
	"sort"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

// MaxTrials bounds one Monte-Carlo run.
const MaxTrials = 200000

// Stats summarizes per-trial samples.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
}

// MonteCarloResult is the empirical counterpart of Simulate.
type MonteCarloResult struct {
	Trials int
	// Rows[k][e] is the share of trials owning at least eidolon e after k pulls.
	Rows [][]ReducedSim
	// Copies summarizes wanted copies obtained within the whole budget.
	Copies Stats
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(cp[n-1])
		}
		f := pos - float64(i)
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}

// RunMonteCarlo repeats the request trials times with rng and reports the
// empirical cumulative eidolon rows. It stops between trials once ctx is done.
func RunMonteCarlo(ctx context.Context, req SimRequest, trials int, rng RandomSource) (MonteCarloResult, error) {
	if err := req.Validate(); err != nil {
		return MonteCarloResult{}, err
	}
	if trials <= 0 || trials > MaxTrials {
		return MonteCarloResult{}, apperr.ParseData("trials must be within 1..%d, got %d", MaxTrials, trials)
	}
	if rng == nil {
		rng = NewRNG(nil)
	}

	b := req.Banner
	// counts[k][e+1] = trials sitting at eidolon e after k pulls
	counts := make([][]int, req.Pulls+1)
	for k := range counts {
		counts[k] = make([]int, b.MaxEidolon+2)
	}
	copies := make([]int, trials)

	for t := 0; t < trials; t++ {
		if err := ctx.Err(); err != nil {
			return MonteCarloResult{}, apperr.ServerSide("monte-carlo interrupted", err)
		}
		ps := NewPuller(req, rng)
		counts[0][ps.State.Eidolon+1]++
		for k := 1; k <= req.Pulls; k++ {
			got, err := ps.Pull()
			if err != nil {
				return MonteCarloResult{}, err
			}
			if got {
				copies[t]++
			}
			counts[k][ps.State.Eidolon+1]++
		}
	}

	rows := make([][]ReducedSim, len(counts))
	for k, row := range counts {
		reduced := make([]ReducedSim, len(row))
		for i, c := range row {
			reduced[i] = ReducedSim{Eidolon: i - 1, Rate: float64(c) / float64(trials)}
		}
		rows[k] = b.cumulate(reduced)
	}

	return MonteCarloResult{Trials: trials, Rows: rows, Copies: calcStats(copies)}, nil
}
