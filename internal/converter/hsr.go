package converter

import (
	dto "github.com/xtding233/starrail-backend/internal/api/dto"
	"github.com/xtding233/starrail-backend/internal/desc"
	"github.com/xtding233/starrail-backend/internal/hsr"
)

func ToCharacter(c hsr.Character) dto.Character {
	return dto.Character{
		ID:       c.ID,
		Name:     c.Name,
		Rarity:   c.Rarity,
		Path:     c.Path,
		Element:  c.Element,
		MaxSP:    c.MaxSP,
		SkillIDs: c.SkillIDs,
		Icon:     c.Icon,
	}
}

// ToCharacters keeps the table's id order.
func ToCharacters(m map[string]hsr.Character) []dto.Character {
	ids := hsr.SortedIDs(m)
	out := make([]dto.Character, len(ids))
	for i, id := range ids {
		out[i] = ToCharacter(m[id])
	}
	return out
}

func toDescription(d desc.Description) dto.Description {
	segs := make([]dto.Segment, len(d.Segments))
	for i, s := range d.Segments {
		segs[i] = dto.Segment{Kind: string(s.Kind), Text: s.Text}
	}
	return dto.Description{Template: d.Template, Params: d.Params, Segments: segs}
}

func ToSkill(v hsr.SkillView) dto.Skill {
	return dto.Skill{
		ID:                v.ID,
		Name:              v.Name,
		Tag:               v.Tag,
		TypeDesc:          v.TypeDesc,
		AttackType:        v.AttackType,
		MaxLevel:          v.MaxLevel,
		Level:             v.Level,
		Values:            v.Values,
		Description:       toDescription(v.Rendered),
		SimpleDescription: v.SimpleDescription,
	}
}

func ToSkills(vs []hsr.SkillView) []dto.Skill {
	out := make([]dto.Skill, len(vs))
	for i, v := range vs {
		out[i] = ToSkill(v)
	}
	return out
}

func ToLightCone(lc hsr.LightCone) dto.LightCone {
	out := dto.LightCone{
		ID:          lc.ID,
		Name:        lc.Name,
		Description: lc.Description,
		Rarity:      lc.Rarity,
		Path:        lc.Path,
		MaxRank:     lc.MaxRank,
	}
	if lc.Skill != nil {
		// superimposition 1
		if v, err := lc.Skill.View(1); err == nil {
			s := ToSkill(v)
			out.Skill = &s
		}
	}
	return out
}

func ToLightCones(m map[string]hsr.LightCone) []dto.LightCone {
	ids := hsr.SortedIDs(m)
	out := make([]dto.LightCone, len(ids))
	for i, id := range ids {
		out[i] = ToLightCone(m[id])
	}
	return out
}
