package gacha_test

import (
	"testing"

	"github.com/xtding233/starrail-backend/internal/gacha"
)

// script replays fixed floats, then repeats the last one.
type script struct {
	vals []float64
	i    int
}

func (s *script) Float64() float64 {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v
}

func TestPullerHardPity(t *testing.T) {
	b := gacha.Banner{
		Name:          "test",
		BaseRate:      1e-9,
		PityStart:     10,
		MaxPity:       10,
		BannerRate:    1,
		GuaranteeRate: 1,
		MaxEidolon:    6,
	}
	ps := gacha.NewPuller(gacha.SimRequest{Banner: b, CurrentEidolon: -1}, seeded(42))

	// first 9 pulls are practically never hits
	for i := 0; i < 9; i++ {
		hit, err := ps.Pull()
		if err != nil {
			t.Fatal(err)
		}
		if hit {
			t.Fatalf("should not hit before pity, i=%d", i)
		}
	}
	// the 10th pull is guaranteed by pity
	hit, err := ps.Pull()
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatalf("expected pity hit at 10th pull")
	}
	if ps.State.Pity != 0 || ps.State.Eidolon != 0 {
		t.Fatalf("state after pity hit: %+v", ps.State)
	}
}

func TestPullerStandardHitSetsGuarantee(t *testing.T) {
	b := gacha.DefaultBanners()[gacha.KindSSR]
	// pull 1: hard pity, 0.7 loses the 50/50
	// pull 2: 0.001 hits at base rate, guaranteed featured
	rng := &script{vals: []float64{0.7, 0.001}}
	ps := gacha.NewPuller(gacha.SimRequest{Banner: b, CurrentEidolon: -1, Pity: 89}, rng)

	hit, err := ps.Pull()
	if err != nil {
		t.Fatal(err)
	}
	if hit || !ps.State.Guaranteed || ps.State.Pity != 0 {
		t.Fatalf("lost 50/50: hit=%v state=%+v", hit, ps.State)
	}

	hit, err = ps.Pull()
	if err != nil {
		t.Fatal(err)
	}
	if !hit || ps.State.Guaranteed || ps.State.Eidolon != 0 {
		t.Fatalf("guaranteed hit: hit=%v state=%+v", hit, ps.State)
	}
}

func TestPullerStopsAtMaxEidolon(t *testing.T) {
	b := gacha.DefaultBanners()[gacha.KindLC]
	ps := gacha.NewPuller(gacha.SimRequest{Banner: b, CurrentEidolon: b.MaxEidolon, Pity: 40}, seeded(3))
	for i := 0; i < 200; i++ {
		hit, err := ps.Pull()
		if err != nil {
			t.Fatal(err)
		}
		if hit {
			t.Fatalf("pull %d hit past max eidolon", i)
		}
	}
	if ps.State.Pity != 40 || ps.State.Eidolon != b.MaxEidolon {
		t.Fatalf("state changed: %+v", ps.State)
	}
}
