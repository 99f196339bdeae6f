package hsr

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xtding233/starrail-backend/internal/apperr"
	"github.com/xtding233/starrail-backend/internal/datasource"
	"github.com/xtding233/starrail-backend/internal/desc"
)

const (
	DefaultDimbreathBaseURL = "https://raw.githubusercontent.com/Dimbreath/StarRailData/master"
	DefaultMar7thBaseURL    = "https://raw.githubusercontent.com/Mar-7th/StarRailRes/master"
)

// Options locate the cache directory and the two upstream repositories.
type Options struct {
	DataDir          string
	DimbreathBaseURL string
	Mar7thBaseURL    string
}

// Repository answers table queries through the read-through cache.
type Repository struct {
	fetcher datasource.Fetcher
	opts    Options
	text    Lookup
}

func NewRepository(f datasource.Fetcher, opts Options) *Repository {
	if opts.DimbreathBaseURL == "" {
		opts.DimbreathBaseURL = DefaultDimbreathBaseURL
	}
	if opts.Mar7thBaseURL == "" {
		opts.Mar7thBaseURL = DefaultMar7thBaseURL
	}
	return &Repository{fetcher: f, opts: opts, text: textLookup}
}

func (r *Repository) local(name string) string { return filepath.Join(r.opts.DataDir, name) }

func join(base, rel string) string { return strings.TrimRight(base, "/") + "/" + rel }

func (r *Repository) textSource() datasource.Source[map[string]string, map[int64]string] {
	return datasource.Source[map[string]string, map[int64]string]{
		Name:        "text_map",
		LocalPath:   r.local("text_map_en.json"),
		UpstreamURL: join(r.opts.DimbreathBaseURL, "TextMap/TextMapEN.json"),
		Convert:     convertTextMap,
	}
}

func (r *Repository) characterSource() datasource.Source[map[string]marCharacter, map[string]Character] {
	return datasource.Source[map[string]marCharacter, map[string]Character]{
		Name:        "characters",
		LocalPath:   r.local("characters.json"),
		UpstreamURL: join(r.opts.Mar7thBaseURL, "index_new/en/characters.json"),
		Convert:     convertCharacters,
	}
}

func (r *Repository) skillSource() datasource.Source[json.RawMessage, map[string]Skill] {
	return datasource.Source[json.RawMessage, map[string]Skill]{
		Name:        "avatar_skills",
		LocalPath:   r.local("avatar_skills.json"),
		UpstreamURL: join(r.opts.DimbreathBaseURL, "ExcelOutput/AvatarSkillConfig.json"),
		Convert:     convertSkills(r.text),
	}
}

func (r *Repository) equipmentSource() datasource.Source[json.RawMessage, map[string]equipment] {
	return datasource.Source[json.RawMessage, map[string]equipment]{
		Name:        "equipment",
		LocalPath:   r.local("equipment.json"),
		UpstreamURL: join(r.opts.DimbreathBaseURL, "ExcelOutput/EquipmentConfig.json"),
		Convert:     convertEquipment(r.text),
	}
}

func (r *Repository) equipmentSkillSource() datasource.Source[json.RawMessage, map[string]Skill] {
	return datasource.Source[json.RawMessage, map[string]Skill]{
		Name:        "equipment_skills",
		LocalPath:   r.local("equipment_skills.json"),
		UpstreamURL: join(r.opts.DimbreathBaseURL, "ExcelOutput/EquipmentSkillConfig.json"),
		Convert:     convertEquipmentSkills(r.text),
	}
}

// ensureText loads the text map before any table that needs dehashing.
func (r *Repository) ensureText(ctx context.Context) error {
	if datasource.TextMap.Ready() {
		return nil
	}
	m, err := datasource.Get(ctx, r.fetcher, r.textSource())
	if err != nil {
		return err
	}
	datasource.TextMap.Init(m)
	return nil
}

func (r *Repository) Characters(ctx context.Context) (map[string]Character, error) {
	return datasource.Get(ctx, r.fetcher, r.characterSource())
}

func (r *Repository) Character(ctx context.Context, id string) (Character, error) {
	all, err := r.Characters(ctx)
	if err != nil {
		return Character{}, err
	}
	c, ok := all[id]
	if !ok {
		return Character{}, apperr.NotFound("character " + id)
	}
	return c, nil
}

func (r *Repository) Skills(ctx context.Context) (map[string]Skill, error) {
	if err := r.ensureText(ctx); err != nil {
		return nil, err
	}
	return datasource.Get(ctx, r.fetcher, r.skillSource())
}

// SkillView is a skill rendered at one level.
type SkillView struct {
	Skill
	Level    int
	Values   []float64 // parameters in template order
	Rendered desc.Description
}

// View renders s at level, clamped to the levels the skill has.
func (s Skill) View(level int) (SkillView, error) {
	if level < 1 {
		return SkillView{}, apperr.ParseData("level must be >= 1, got %d", level)
	}
	v := SkillView{Skill: s, Level: level}
	if len(s.Params) == 0 {
		v.Rendered = desc.Render(s.Description, nil)
		return v, nil
	}
	if level > len(s.Params) {
		v.Level = len(s.Params)
	}
	params := s.Params[v.Level-1]
	v.Values = desc.SortedParams(params, s.Description)
	v.Rendered = desc.Render(s.Description, params)
	return v, nil
}

// CharacterSkills renders every skill of a character at level.
func (r *Repository) CharacterSkills(ctx context.Context, id string, level int) ([]SkillView, error) {
	c, err := r.Character(ctx, id)
	if err != nil {
		return nil, err
	}
	skills, err := r.Skills(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SkillView, 0, len(c.SkillIDs))
	for _, sid := range c.SkillIDs {
		s, ok := skills[sid]
		if !ok {
			continue
		}
		v, err := s.View(level)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Repository) LightCones(ctx context.Context) (map[string]LightCone, error) {
	if err := r.ensureText(ctx); err != nil {
		return nil, err
	}
	eq, err := datasource.Get(ctx, r.fetcher, r.equipmentSource())
	if err != nil {
		return nil, err
	}
	skills, err := datasource.Get(ctx, r.fetcher, r.equipmentSkillSource())
	if err != nil {
		return nil, err
	}
	out := make(map[string]LightCone, len(eq))
	for id, e := range eq {
		lc := LightCone{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Rarity:      e.Rarity,
			Path:        e.Path,
			MaxRank:     e.MaxRank,
			SkillID:     e.SkillID,
		}
		if s, ok := skills[e.SkillID]; ok {
			lc.Skill = &s
		}
		out[id] = lc
	}
	return out, nil
}

func (r *Repository) LightCone(ctx context.Context, id string) (LightCone, error) {
	all, err := r.LightCones(ctx)
	if err != nil {
		return LightCone{}, err
	}
	lc, ok := all[id]
	if !ok {
		return LightCone{}, apperr.NotFound("light cone " + id)
	}
	return lc, nil
}

// SortedIDs returns map keys ordered numerically when possible.
func SortedIDs[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
	return ids
}
