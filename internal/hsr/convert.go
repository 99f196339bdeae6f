package hsr

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/xtding233/starrail-backend/internal/datasource"
)

var errInvalidJSON = errors.New("upstream document is not valid JSON")

// Lookup resolves a text hash.
type Lookup func(hash int64) string

// textLookup reads the process text map; unknown hashes resolve to "".
func textLookup(hash int64) string {
	s, _ := datasource.TextMap.Lookup(hash)
	return s
}

func convertCharacters(in map[string]marCharacter) (map[string]Character, error) {
	out := make(map[string]Character, len(in))
	for key, c := range in {
		id := c.ID
		if id == "" {
			id = key
		}
		out[id] = Character{
			ID:       id,
			Name:     c.Name,
			Rarity:   c.Rarity,
			Path:     c.Path,
			Element:  c.Element,
			MaxSP:    c.MaxSP,
			SkillIDs: append([]string{}, c.Skills...),
			Icon:     c.Icon,
		}
	}
	return out, nil
}

// convertTextMap parses the hash keys of TextMapEN.json.
func convertTextMap(in map[string]string) (map[int64]string, error) {
	out := make(map[int64]string, len(in))
	for k, v := range in {
		h, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		out[h] = v
	}
	return out, nil
}

// levelled groups records of a level-indexed dump by id. Both the nested
// {id: {level: row}} layout and the flat [row, ...] layout are accepted.
func levelled(raw []byte, idField, levelField string) (map[string]map[int]gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errInvalidJSON
	}
	out := make(map[string]map[int]gjson.Result)
	put := func(id string, lv int, rec gjson.Result) {
		if out[id] == nil {
			out[id] = make(map[int]gjson.Result)
		}
		out[id][lv] = rec
	}

	root := gjson.ParseBytes(raw)
	if root.IsArray() {
		root.ForEach(func(_, rec gjson.Result) bool {
			lv := int(rec.Get(levelField).Int())
			if lv == 0 {
				lv = 1
			}
			put(rec.Get(idField).String(), lv, rec)
			return true
		})
		return out, nil
	}
	root.ForEach(func(id, levels gjson.Result) bool {
		levels.ForEach(func(lv, rec gjson.Result) bool {
			n, err := strconv.Atoi(lv.String())
			if err == nil {
				put(id.String(), n, rec)
			}
			return true
		})
		return true
	})
	return out, nil
}

func paramList(rec gjson.Result) []float64 {
	var ps []float64
	rec.Get("ParamList").ForEach(func(_, p gjson.Result) bool {
		ps = append(ps, p.Get("Value").Float())
		return true
	})
	return ps
}

func hashText(rec gjson.Result, field string, text Lookup) string {
	h := rec.Get(field + ".Hash")
	if !h.Exists() {
		return ""
	}
	return text(h.Int())
}

// convertSkills merges AvatarSkillConfig.json by level and dehashes text.
func convertSkills(text Lookup) func(json.RawMessage) (map[string]Skill, error) {
	return func(raw json.RawMessage) (map[string]Skill, error) {
		grouped, err := levelled(raw, "SkillID", "Level")
		if err != nil {
			return nil, err
		}
		out := make(map[string]Skill, len(grouped))
		for id, levels := range grouped {
			s, ok := datasource.MergeByLevel(levels,
				func(first gjson.Result) Skill {
					return Skill{
						ID:                id,
						Name:              hashText(first, "SkillName", text),
						Tag:               hashText(first, "SkillTag", text),
						TypeDesc:          hashText(first, "SkillTypeDesc", text),
						Description:       hashText(first, "SkillDesc", text),
						SimpleDescription: hashText(first, "SimpleSkillDesc", text),
						MaxLevel:          int(first.Get("MaxLevel").Int()),
						AttackType:        first.Get("AttackType").String(),
						TriggerKey:        first.Get("SkillTriggerKey").String(),
					}
				},
				func(s *Skill, lv int, rec gjson.Result) {
					s.Levels = append(s.Levels, lv)
					s.Params = append(s.Params, paramList(rec))
				})
			if ok {
				out[id] = s
			}
		}
		return out, nil
	}
}

// convertEquipmentSkills merges EquipmentSkillConfig.json by superimposition.
func convertEquipmentSkills(text Lookup) func(json.RawMessage) (map[string]Skill, error) {
	return func(raw json.RawMessage) (map[string]Skill, error) {
		grouped, err := levelled(raw, "SkillID", "Level")
		if err != nil {
			return nil, err
		}
		out := make(map[string]Skill, len(grouped))
		for id, ranks := range grouped {
			s, ok := datasource.MergeByLevel(ranks,
				func(first gjson.Result) Skill {
					return Skill{
						ID:          id,
						Name:        hashText(first, "SkillName", text),
						Description: hashText(first, "SkillDesc", text),
						MaxLevel:    len(ranks),
					}
				},
				func(s *Skill, lv int, rec gjson.Result) {
					s.Levels = append(s.Levels, lv)
					s.Params = append(s.Params, paramList(rec))
				})
			if ok {
				out[id] = s
			}
		}
		return out, nil
	}
}

var rarityRe = regexp.MustCompile(`(\d+)$`)

// convertEquipment reads EquipmentConfig.json, keyed by id or flat.
func convertEquipment(text Lookup) func(json.RawMessage) (map[string]equipment, error) {
	return func(raw json.RawMessage) (map[string]equipment, error) {
		if !gjson.ValidBytes(raw) {
			return nil, errInvalidJSON
		}
		out := make(map[string]equipment)
		gjson.ParseBytes(raw).ForEach(func(_, rec gjson.Result) bool {
			id := rec.Get("EquipmentID").String()
			if id == "" {
				return true
			}
			rarity := 0
			if m := rarityRe.FindStringSubmatch(rec.Get("Rarity").String()); m != nil {
				rarity, _ = strconv.Atoi(m[1])
			}
			path := rec.Get("AvatarBaseType").String()
			if p, ok := paths[path]; ok {
				path = p
			}
			out[id] = equipment{
				ID:          id,
				Name:        hashText(rec, "EquipmentName", text),
				Description: hashText(rec, "EquipmentDesc", text),
				Rarity:      rarity,
				Path:        path,
				MaxRank:     int(rec.Get("MaxRank").Int()),
				SkillID:     rec.Get("SkillID").String(),
			}
			return true
		})
		return out, nil
	}
}
