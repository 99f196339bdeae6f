package pricing

import (
	"math"
	"testing"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

func TestMinCostRepeatPurchase(t *testing.T) {
	cat := OneiricShards()
	plan := MinCostAtLeastTokens(cat, 330, nil)
	if plan.TotalCents != 499 || plan.TotalTokens != 330 {
		t.Fatalf("plan = %+v", plan)
	}
	if len(plan.Purchases) != 1 || plan.Purchases[0].PackID != "300" {
		t.Fatalf("purchases = %+v", plan.Purchases)
	}
	if plan.Total() != "4.99" {
		t.Fatalf("Total() = %s", plan.Total())
	}
}

func TestMinCostFirstTimeUsedOnce(t *testing.T) {
	cat := OneiricShards()
	// the 60 double gives 120 for 0.99 but can only be bought once
	plan := MinCostAtLeastTokens(cat, 180, FirstTimeState{"60": true})
	if plan.TotalCents != 99*2 || plan.TotalTokens != 180 {
		t.Fatalf("plan = %+v", plan)
	}
	var doubles int
	for _, p := range plan.Purchases {
		if p.PackID == "60#x2" {
			doubles += p.Qty
		}
	}
	if doubles != 1 {
		t.Fatalf("first-time double used %d times", doubles)
	}
}

func TestMinCostNothingNeeded(t *testing.T) {
	if plan := MinCostAtLeastTokens(OneiricShards(), 0, nil); len(plan.Purchases) != 0 || plan.TotalCents != 0 {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestMaxTokensUnderBudget(t *testing.T) {
	cat := OneiricShards()
	plan := MaxTokensUnderBudget(cat, 998, nil)
	if plan.TotalTokens != 660 || plan.TotalCents != 998 {
		t.Fatalf("plan = %+v", plan)
	}

	plan = MaxTokensUnderBudget(cat, 998, AllFirstTime(cat))
	// both small doubles (720 for 5.98) plus four repeat 60s
	if plan.TotalTokens != 960 || plan.TotalCents != 994 {
		t.Fatalf("first-time plan = %+v", plan)
	}
}

func TestTax(t *testing.T) {
	cat := OneiricShards()
	cat.TaxRate = 0.13
	plan := MinCostAtLeastTokens(cat, 60, nil)
	if plan.SubCents != 99 || plan.TaxCents != 13 || plan.TotalCents != 112 {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestPlanTopUp(t *testing.T) {
	cat := OneiricShards()
	out, err := PlanTopUp(cat, TopUpRequest{TargetRolls: 10, CurrentJades: 1000, CurrentRolls: 2})
	if err != nil {
		t.Fatal(err)
	}
	// 8 warps = 1280 jades, 280 missing
	if out.NeededJades != 1280 || out.ShortfallJades != 280 {
		t.Fatalf("top-up = %+v", out)
	}
	// five 60 packs undercut one 300 pack
	if out.Plan.TotalTokens != 300 || out.Plan.TotalCents != 495 {
		t.Fatalf("plan = %+v", out.Plan)
	}

	out, err = PlanTopUp(cat, TopUpRequest{TargetRolls: 10, CurrentRolls: 12})
	if err != nil {
		t.Fatal(err)
	}
	if out.ShortfallJades != 0 || len(out.Plan.Purchases) != 0 {
		t.Fatalf("covered goal still buys: %+v", out)
	}

	if _, err := PlanTopUp(cat, TopUpRequest{TargetRolls: -1}); apperr.KindOf(err) != apperr.KindParseData {
		t.Fatalf("want parse data error, got %v", err)
	}
}

func TestPlanTopUpRejectsHugeGoals(t *testing.T) {
	cat := OneiricShards()
	out, err := PlanTopUp(cat, TopUpRequest{TargetRolls: MaxTargetRolls})
	if err != nil {
		t.Fatal(err)
	}
	if out.NeededJades != MaxTargetRolls*160 || out.Plan.TotalTokens < out.ShortfallJades {
		t.Fatalf("top-up at cap = %+v", out)
	}
	for _, n := range []int{MaxTargetRolls + 1, 10_000_000, math.MaxInt / 100} {
		if _, err := PlanTopUp(cat, TopUpRequest{TargetRolls: n}); apperr.KindOf(err) != apperr.KindParseData {
			t.Errorf("targetRolls=%d: want parse data error, got %v", n, err)
		}
	}
}
