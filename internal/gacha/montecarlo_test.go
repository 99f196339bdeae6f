package gacha_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/gacha"
)

func TestMonteCarloMatchesExact(t *testing.T) {
	req := gacha.SimRequest{Banner: gacha.DefaultBanners()[gacha.KindSSR], CurrentEidolon: -1, Pulls: 180}
	exact, err := gacha.Simulate(req)
	if err != nil {
		t.Fatal(err)
	}
	mc, err := gacha.RunMonteCarlo(context.Background(), req, 20000, seeded(2023))
	if err != nil {
		t.Fatal(err)
	}
	if mc.Trials != 20000 || len(mc.Rows) != len(exact) {
		t.Fatalf("shape: trials=%d rows=%d", mc.Trials, len(mc.Rows))
	}
	for _, k := range []int{30, 60, 77, 90, 120, 160, 180} {
		for e := 0; e <= 1; e++ {
			if !near(mc.Rows[k][e].Rate, exact[k][e].Rate, 0.02) {
				t.Errorf("pull %d E%d: mc=%v exact=%v", k, e, mc.Rows[k][e].Rate, exact[k][e].Rate)
			}
		}
	}
	if mc.Copies.Mean < 1 || mc.Copies.P99 > 5 {
		t.Fatalf("copies stats out of range: %+v", mc.Copies)
	}
}

func TestMonteCarloRejectsTrials(t *testing.T) {
	req := gacha.SimRequest{Banner: gacha.DefaultBanners()[gacha.KindSR], CurrentEidolon: -1, Pulls: 10}
	for _, n := range []int{0, -1, gacha.MaxTrials + 1} {
		if _, err := gacha.RunMonteCarlo(context.Background(), req, n, nil); apperr.KindOf(err) != apperr.KindParseData {
			t.Errorf("trials=%d: want parse data error, got %v", n, err)
		}
	}
}

func TestMonteCarloStopsOnCancel(t *testing.T) {
	req := gacha.SimRequest{Banner: gacha.DefaultBanners()[gacha.KindSSR], CurrentEidolon: -1, Pulls: gacha.MaxPulls}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gacha.RunMonteCarlo(ctx, req, gacha.MaxTrials, seeded(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
