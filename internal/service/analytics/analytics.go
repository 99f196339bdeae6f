// Package analytics serves the gacha, jade and calendar computations against
// the live banner snapshot.
package analytics

import (
	"context"
	"time"

	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/gacha"
	"github.com/xtding233/starrail-backend/internal/game"
	"github.com/xtding233/starrail-backend/internal/jade"
	"github.com/xtding233/starrail-backend/internal/metrics"
	"github.com/xtding233/starrail-backend/internal/model"
	"github.com/xtding233/starrail-backend/internal/patch"
	"github.com/xtding233/starrail-backend/internal/pricing"
	"github.com/xtding233/starrail-backend/internal/token"
)

// FuturePatches is how many patches the calendar endpoints list.
const FuturePatches = 4

// BannerSource yields the current banner configuration. *game.Loader
// implements it.
type BannerSource interface {
	Current() game.Snapshot
}

type Service struct {
	banners BannerSource
	catalog pricing.Catalog
	now     func() time.Time
}

func NewService(banners BannerSource, catalog pricing.Catalog) *Service {
	return &Service{banners: banners, catalog: catalog, now: time.Now}
}

func (s *Service) Defaults(_ context.Context) model.GachaDefaults {
	return model.GachaDefaults{
		Request: model.PullState{
			Banner:         gacha.KindSSR,
			CurrentEidolon: -1,
			Pulls:          90,
		},
		JadePerRoll: token.StellarJade.PerDraw,
		MaxPulls:    gacha.MaxPulls,
		Banners:     gacha.Kinds(s.banners.Current().Banners),
	}
}

func (s *Service) Banners(_ context.Context) []model.BannerInfo {
	snap := s.banners.Current()
	kinds := gacha.Kinds(snap.Banners)
	out := make([]model.BannerInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, model.BannerInfo{Kind: k, Banner: snap.Banners[k]})
	}
	return out
}

func (s *Service) request(st model.PullState) (gacha.SimRequest, error) {
	b, ok := s.banners.Current().Banner(st.Banner)
	if !ok {
		return gacha.SimRequest{}, apperr.ParseData("unknown banner %q", st.Banner)
	}
	return gacha.SimRequest{
		Banner:         b,
		CurrentEidolon: st.CurrentEidolon,
		Pity:           st.Pity,
		Pulls:          st.Pulls,
		NextGuaranteed: st.NextGuaranteed,
		GuaranteedPity: st.EpitomizedPity,
	}, nil
}

func observe(kind gacha.Kind, method string, start time.Time) {
	metrics.SimulationDuration.WithLabelValues(string(kind), method).Observe(time.Since(start).Seconds())
}

func (s *Service) ProbabilityRate(_ context.Context, st model.PullState) (*model.Projection, error) {
	req, err := s.request(st)
	if err != nil {
		return nil, err
	}
	defer observe(st.Banner, "exact", time.Now())
	rows, err := gacha.Simulate(req)
	if err != nil {
		return nil, err
	}
	return &model.Projection{RollBudget: st.Pulls, Rows: rows}, nil
}

func (s *Service) Sample(ctx context.Context, in model.Sample) (*model.SampleResult, error) {
	req, err := s.request(in.PullState)
	if err != nil {
		return nil, err
	}
	defer observe(in.Banner, "montecarlo", time.Now())
	res, err := gacha.RunMonteCarlo(ctx, req, in.Trials, gacha.NewRNG(in.Seed))
	if err != nil {
		return nil, err
	}
	return &model.SampleResult{RollBudget: in.Pulls, MonteCarloResult: res}, nil
}

// Warp performs a single or a ten pull and returns the state to resume from.
func (s *Service) Warp(_ context.Context, in model.Warp) (*model.WarpResult, error) {
	if in.Count != 1 && in.Count != 10 {
		return nil, apperr.ParseData("count must be 1 or 10, got %d", in.Count)
	}
	st := in.PullState
	st.Pulls = 0
	req, err := s.request(st)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := gacha.NewPuller(req, gacha.NewRNG(in.Seed))
	hits := make([]bool, in.Count)
	for i := range hits {
		if hits[i], err = p.Pull(); err != nil {
			return nil, err
		}
	}
	st.CurrentEidolon = p.State.Eidolon
	st.Pity = p.State.Pity
	st.NextGuaranteed = p.State.Guaranteed
	st.EpitomizedPity = p.State.GuaranteedPity
	return &model.WarpResult{Hits: hits, State: st}, nil
}

func (s *Service) JadeEstimate(_ context.Context, cfg jade.EstimateCfg) (*jade.Estimate, error) {
	est, err := jade.Compute(cfg, s.now())
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func (s *Service) TopUp(_ context.Context, req pricing.TopUpRequest) (*pricing.TopUp, error) {
	t, err := pricing.PlanTopUp(s.catalog, req)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) PatchDates(_ context.Context) []patch.Patch {
	return patch.Upcoming(FuturePatches)
}

func (s *Service) PatchBanners(_ context.Context) []game.BannerSlot {
	return s.banners.Current().Timeline(patch.Upcoming(FuturePatches))
}
