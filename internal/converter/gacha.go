package converter

import (
	dto "github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/gacha"
	"github.com/xtding233/starrail-backend/internal/model"
)

func ToPullState(req dto.ProbabilityRateRequest) model.PullState {
	st := model.PullState{
		Banner:         gacha.Kind(req.Banner),
		CurrentEidolon: req.CurrentEidolon,
		Pity:           req.Pity,
		Pulls:          req.Pulls,
		NextGuaranteed: req.NextGuaranteed,
	}
	if req.EpitomizedPity != nil {
		st.EpitomizedPity = *req.EpitomizedPity
	}
	return st
}

func toRequest(st model.PullState) dto.ProbabilityRateRequest {
	ep := st.EpitomizedPity
	return dto.ProbabilityRateRequest{
		CurrentEidolon: st.CurrentEidolon,
		Pity:           st.Pity,
		Pulls:          st.Pulls,
		NextGuaranteed: st.NextGuaranteed,
		EpitomizedPity: &ep,
		Banner:         string(st.Banner),
	}
}

func toRows(rows [][]gacha.ReducedSim) [][]dto.ReducedSim {
	out := make([][]dto.ReducedSim, len(rows))
	for i, row := range rows {
		r := make([]dto.ReducedSim, len(row))
		for j, v := range row {
			r[j] = dto.ReducedSim{Eidolon: v.Eidolon, Rate: v.Rate}
		}
		out[i] = r
	}
	return out
}

func ToProbabilityRateResponse(p model.Projection) dto.ProbabilityRateResponse {
	return dto.ProbabilityRateResponse{RollBudget: p.RollBudget, Data: toRows(p.Rows)}
}

func ToSample(req dto.SampleRequest) model.Sample {
	return model.Sample{
		PullState: ToPullState(req.ProbabilityRateRequest),
		Trials:    req.Trials,
		Seed:      req.Seed,
	}
}

func ToSampleResponse(res model.SampleResult) dto.SampleResponse {
	c := res.Copies
	return dto.SampleResponse{
		RollBudget: res.RollBudget,
		Trials:     res.Trials,
		Data:       toRows(res.Rows),
		Copies:     dto.Stats{Mean: c.Mean, StdDev: c.StdDev, P50: c.P50, P90: c.P90, P99: c.P99},
	}
}

func ToWarp(req dto.WarpRequest) model.Warp {
	st := model.PullState{
		Banner:         gacha.Kind(req.Banner),
		CurrentEidolon: req.CurrentEidolon,
		Pity:           req.Pity,
		NextGuaranteed: req.NextGuaranteed,
	}
	if req.EpitomizedPity != nil {
		st.EpitomizedPity = *req.EpitomizedPity
	}
	return model.Warp{PullState: st, Count: req.Count, Seed: req.Seed}
}

// ToWarpResponse echoes the resulting state so clients can post it back.
func ToWarpResponse(res model.WarpResult) dto.WarpResponse {
	st := toRequest(res.State)
	return dto.WarpResponse{
		Hits: res.Hits,
		State: dto.WarpRequest{
			CurrentEidolon: st.CurrentEidolon,
			Pity:           st.Pity,
			NextGuaranteed: st.NextGuaranteed,
			EpitomizedPity: st.EpitomizedPity,
			Banner:         st.Banner,
			Count:          len(res.Hits),
		},
	}
}

func ToBannerList(bs []model.BannerInfo) []dto.Banner {
	out := make([]dto.Banner, len(bs))
	for i, b := range bs {
		out[i] = dto.Banner{
			Kind:           string(b.Kind),
			Name:           b.Name,
			BaseRate:       b.BaseRate,
			PityStart:      b.PityStart,
			MaxPity:        b.MaxPity,
			BannerRate:     b.BannerRate,
			GuaranteeRate:  b.GuaranteeRate,
			GuaranteedPity: b.GuaranteedPity,
			MaxEidolon:     b.MaxEidolon,
		}
	}
	return out
}

func ToGachaCfgResponse(d model.GachaDefaults) dto.GachaCfgResponse {
	kinds := make([]string, len(d.Banners))
	for i, k := range d.Banners {
		kinds[i] = string(k)
	}
	return dto.GachaCfgResponse{
		Defaults:    toRequest(d.Request),
		JadePerRoll: d.JadePerRoll,
		MaxPulls:    d.MaxPulls,
		Banners:     kinds,
	}
}
