package converter

import (
	dto "github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/game"
	"github.com/xtding233/starrail-backend/internal/patch"
)

func ToPatches(ps []patch.Patch) []dto.Patch {
	out := make([]dto.Patch, len(ps))
	for i, p := range ps {
		out[i] = dto.Patch{
			Name:          p.Name,
			Version:       p.Version.String(),
			DateStart:     p.Start,
			Date2ndBanner: p.SecondBanner,
			DateEnd:       p.End,
		}
	}
	return out
}

func ToPatchBanners(slots []game.BannerSlot) []dto.PatchBanner {
	out := make([]dto.PatchBanner, len(slots))
	for i, s := range slots {
		out[i] = dto.PatchBanner{
			Version:    s.Version,
			PatchName:  s.PatchName,
			Half:       s.Half,
			DateStart:  s.Start,
			DateEnd:    s.End,
			Characters: s.Characters,
		}
	}
	return out
}
