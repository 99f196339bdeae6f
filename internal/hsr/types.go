// Package hsr holds the typed game tables served by the API and the
// conversions from the upstream dumps.
package hsr

// Character is one playable character.
type Character struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rarity   int      `json:"rarity"`
	Path     string   `json:"path"`
	Element  string   `json:"element"`
	MaxSP    int      `json:"max_sp"`
	SkillIDs []string `json:"skill_ids"`
	Icon     string   `json:"icon"`
}

// Skill is a character skill with every level merged. Params[i] holds the
// parameters of level i+1.
type Skill struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Tag               string      `json:"tag"`
	TypeDesc          string      `json:"type_desc"`
	Description       string      `json:"description"`
	SimpleDescription string      `json:"simple_description"`
	MaxLevel          int         `json:"max_level"`
	AttackType        string      `json:"attack_type"`
	TriggerKey        string      `json:"trigger_key"`
	Levels            []int       `json:"levels"`
	Params            [][]float64 `json:"params"`
}

// LightCone joins the equipment row with its superimposition skill.
type LightCone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	Path        string `json:"path"`
	MaxRank     int    `json:"max_rank"`
	SkillID     string `json:"skill_id"`
	Skill       *Skill `json:"skill,omitempty"`
}

// equipment is the light cone row before its skill is attached.
type equipment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	Path        string `json:"path"`
	MaxRank     int    `json:"max_rank"`
	SkillID     string `json:"skill_id"`
}

// upstream Mar-7th character row
type marCharacter struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Rarity  int      `json:"rarity"`
	Path    string   `json:"path"`
	Element string   `json:"element"`
	MaxSP   int      `json:"max_sp"`
	Skills  []string `json:"skills"`
	Icon    string   `json:"icon"`
}

// paths maps the internal base type to the in-game path name.
var paths = map[string]string{
	"Warrior": "Destruction",
	"Rogue":   "The Hunt",
	"Mage":    "Erudition",
	"Shaman":  "Harmony",
	"Warlock": "Nihility",
	"Knight":  "Preservation",
	"Priest":  "Abundance",
}
