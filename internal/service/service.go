package service

import (
	"context"

	"github.com/xtding233/starrail-backend/internal/game"
	"github.com/xtding233/starrail-backend/internal/hsr"
	"github.com/xtding233/starrail-backend/internal/jade"
	"github.com/xtding233/starrail-backend/internal/model"
	"github.com/xtding233/starrail-backend/internal/patch"
	"github.com/xtding233/starrail-backend/internal/pricing"
)

type GachaService interface {
	Defaults(ctx context.Context) model.GachaDefaults
	Banners(ctx context.Context) []model.BannerInfo
	ProbabilityRate(ctx context.Context, st model.PullState) (*model.Projection, error)
	Sample(ctx context.Context, req model.Sample) (*model.SampleResult, error)
	Warp(ctx context.Context, req model.Warp) (*model.WarpResult, error)
}

type JadeService interface {
	JadeEstimate(ctx context.Context, cfg jade.EstimateCfg) (*jade.Estimate, error)
	TopUp(ctx context.Context, req pricing.TopUpRequest) (*pricing.TopUp, error)
}

type CalendarService interface {
	PatchDates(ctx context.Context) []patch.Patch
	PatchBanners(ctx context.Context) []game.BannerSlot
}

// TableService is implemented by *hsr.Repository.
type TableService interface {
	Characters(ctx context.Context) (map[string]hsr.Character, error)
	Character(ctx context.Context, id string) (hsr.Character, error)
	CharacterSkills(ctx context.Context, id string, level int) ([]hsr.SkillView, error)
	LightCones(ctx context.Context) (map[string]hsr.LightCone, error)
	LightCone(ctx context.Context, id string) (hsr.LightCone, error)
}
