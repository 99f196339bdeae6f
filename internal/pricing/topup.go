package pricing

import (
	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/token"
)

// MaxTargetRolls bounds the warp goal of one top-up plan.
const MaxTargetRolls = 2000

// TopUpRequest is a warp goal and the currency already owned.
type TopUpRequest struct {
	TargetRolls  int
	CurrentJades int
	CurrentRolls int
	FirstTime    bool // every first-time double is still available
}

// TopUp is the cheapest shard purchase covering the jade shortfall.
type TopUp struct {
	NeededJades    int
	ShortfallJades int
	Plan           Plan
}

// PlanTopUp converts the missing warps into Stellar Jade and buys the
// shortfall from cat at the lowest price.
func PlanTopUp(cat Catalog, req TopUpRequest) (TopUp, error) {
	switch {
	case req.TargetRolls < 0 || req.TargetRolls > MaxTargetRolls:
		return TopUp{}, apperr.ParseData("targetRolls must be within 0..%d, got %d", MaxTargetRolls, req.TargetRolls)
	case req.CurrentJades < 0:
		return TopUp{}, apperr.ParseData("currentJades must not be negative")
	case req.CurrentRolls < 0:
		return TopUp{}, apperr.ParseData("currentRolls must not be negative")
	}

	missing := max(req.TargetRolls-req.CurrentRolls, 0)
	needed, err := token.StellarJade.TokensForDraws(missing)
	if err != nil {
		return TopUp{}, err
	}
	out := TopUp{NeededJades: needed, Plan: Plan{Currency: cat.Currency}}
	if needed <= req.CurrentJades {
		return out, nil
	}
	out.ShortfallJades = needed - req.CurrentJades

	var first FirstTimeState
	if req.FirstTime {
		first = AllFirstTime(cat)
	}
	out.Plan = MinCostAtLeastTokens(cat, out.ShortfallJades, first)
	return out, nil
}
