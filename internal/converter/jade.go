package converter

import (
	dto "github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/jade"
	"github.com/xtding233/starrail-backend/internal/patch"
	"github.com/xtding233/starrail-backend/internal/pricing"
)

// ToEstimateCfg fails only on an unknown server name; ranges are checked by
// jade.EstimateCfg.Validate.
func ToEstimateCfg(req dto.EstimateRequest) (jade.EstimateCfg, error) {
	server, err := patch.ParseServer(req.Server)
	if err != nil {
		return jade.EstimateCfg{}, apperr.ParseData("%v", err)
	}
	bp := jade.BattlePassType(req.BattlePass.BattlePassType)
	if bp == "" {
		bp = jade.BattlePassNone
	}
	return jade.EstimateCfg{
		Server: server,
		Until:  jade.Date{Year: req.UntilDate.Year, Month: req.UntilDate.Month, Day: req.UntilDate.Day},
		RailPass: jade.RailPass{
			Enabled:  req.RailPass.Enabled,
			DaysLeft: req.RailPass.DaysLeft,
		},
		BattlePass: jade.BattlePass{
			Type:         bp,
			CurrentLevel: req.BattlePass.CurrentLevel,
		},
		EQ:           req.Eq,
		MoC:          req.Moc,
		CurrentRolls: req.CurrentRolls,
		CurrentJades: req.CurrentJades,
	}, nil
}

func ToEstimateResponse(est jade.Estimate) dto.EstimateResponse {
	sources := make([]dto.RewardSource, len(est.Sources))
	for i, s := range est.Sources {
		sources[i] = dto.RewardSource{
			Name:        s.Name,
			Jades:       s.Jades,
			Rolls:       s.Rolls,
			Cadence:     string(s.Cadence),
			Description: s.Description,
		}
	}
	return dto.EstimateResponse{
		Sources:    sources,
		TotalJades: est.TotalJades,
		Rolls:      est.Rolls,
		Days:       est.Days,
	}
}

func ToTopUpRequest(req dto.TopUpRequest) pricing.TopUpRequest {
	out := pricing.TopUpRequest{TargetRolls: req.TargetRolls, FirstTime: req.FirstTime}
	if req.CurrentJades != nil {
		out.CurrentJades = *req.CurrentJades
	}
	if req.CurrentRolls != nil {
		out.CurrentRolls = *req.CurrentRolls
	}
	return out
}

func ToTopUpResponse(t pricing.TopUp) dto.TopUpResponse {
	purchases := make([]dto.Purchase, len(t.Plan.Purchases))
	for i, p := range t.Plan.Purchases {
		purchases[i] = dto.Purchase{
			PackID:     p.PackID,
			Name:       p.Name,
			Qty:        p.Qty,
			UnitPrice:  p.UnitPrice,
			UnitShards: p.UnitTokens,
		}
	}
	return dto.TopUpResponse{
		NeededJades:    t.NeededJades,
		ShortfallJades: t.ShortfallJades,
		Purchases:      purchases,
		TotalShards:    t.Plan.TotalTokens,
		TotalCents:     t.Plan.TotalCents,
		Total:          t.Plan.Total(),
		Currency:       t.Plan.Currency,
	}
}
