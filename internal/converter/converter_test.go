package converter

import (
	"testing"

	dto "github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/gacha"
	"github.com/xtding233/starrail-backend/internal/hsr"
	"github.com/xtding233/starrail-backend/internal/jade"
	"github.com/xtding233/starrail-backend/internal/model"
	"github.com/xtding233/starrail-backend/internal/patch"
)

func TestToEstimateCfg(t *testing.T) {
	cfg, err := ToEstimateCfg(dto.EstimateRequest{
		Server:     "europe",
		UntilDate:  dto.Date{Year: 2023, Month: 8, Day: 1},
		BattlePass: dto.BattlePass{BattlePassType: "Premium", CurrentLevel: 12},
		Eq:         3,
		Moc:        27,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server != patch.Europe || cfg.BattlePass.Type != jade.BattlePassPremium || cfg.MoC != 27 || cfg.Until.Month != 8 {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	cfg, _ = ToEstimateCfg(dto.EstimateRequest{Server: "Asia"})
	if cfg.BattlePass.Type != jade.BattlePassNone {
		t.Fatalf("missing battle pass type should mean None, got %q", cfg.BattlePass.Type)
	}

	if _, err := ToEstimateCfg(dto.EstimateRequest{Server: "moon"}); apperr.KindOf(err) != apperr.KindParseData {
		t.Fatalf("want parse error, got %v", err)
	}
}

func TestPullStateRoundTrip(t *testing.T) {
	ep := 1
	st := ToPullState(dto.ProbabilityRateRequest{CurrentEidolon: 2, Pity: 40, Pulls: 100, EpitomizedPity: &ep, Banner: "LC"})
	want := model.PullState{Banner: gacha.KindLC, CurrentEidolon: 2, Pity: 40, Pulls: 100, EpitomizedPity: 1}
	if st != want {
		t.Fatalf("got %+v, want %+v", st, want)
	}

	res := ToWarpResponse(model.WarpResult{Hits: []bool{false, true}, State: st})
	if res.State.Count != 2 || *res.State.EpitomizedPity != 1 || res.State.Banner != "LC" {
		t.Fatalf("unexpected warp response: %+v", res.State)
	}
}

func TestToLightConeRendersFirstRank(t *testing.T) {
	lc := ToLightCone(hsr.LightCone{
		ID:   "21000",
		Name: "Post-Op Conversation",
		Skill: &hsr.Skill{
			ID:          "21000",
			Description: "Increases Energy Regeneration Rate by #1[i]%.",
			Params:      [][]float64{{0.08}, {0.1}},
		},
	})
	if lc.Skill == nil || lc.Skill.Level != 1 {
		t.Fatalf("skill should render at rank 1: %+v", lc.Skill)
	}
	if lc.Skill.Description.Params[0] != "8%" {
		t.Fatalf("params = %v", lc.Skill.Description.Params)
	}
}
