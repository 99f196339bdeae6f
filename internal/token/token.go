package token

import (
	"fmt"
	"math"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

// Token defines how many units are required per warp.
type Token struct {
	Name       string // e.g. "Stellar Jade", "Oneiric Shard"
	PerDraw    int    // tokens per single warp, e.g. 160
	PerTenDraw int    // optional; if 0 -> equal to 10 * PerDraw
}

// StellarJade is the premium currency converted into Star Rail Passes.
var StellarJade = Token{Name: "Stellar Jade", PerDraw: 160, PerTenDraw: 1600}

// TokensForDraws returns how many tokens are required for n warps. It fails
// instead of wrapping when the total does not fit in int.
func (t Token) TokensForDraws(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	if t.PerTenDraw <= 0 || n < 10 {
		return apperr.CheckedMul(n, t.PerDraw)
	}
	tens, err := apperr.CheckedMul(n/10, t.PerTenDraw)
	if err != nil {
		return 0, err
	}
	ones := n % 10 * t.PerDraw
	if tens > math.MaxInt-ones {
		return 0, apperr.Computation(fmt.Errorf("%w: %d draws overflow int", apperr.ErrBadNumberCast, n))
	}
	return tens + ones, nil
}

// Rolls returns how many whole warps the given amount buys.
func (t Token) Rolls(amount int) int {
	if amount <= 0 || t.PerDraw <= 0 {
		return 0
	}
	return amount / t.PerDraw
}
