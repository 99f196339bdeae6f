package dto

type Character struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rarity   int      `json:"rarity"`
	Path     string   `json:"path"`
	Element  string   `json:"element"`
	MaxSP    int      `json:"maxSp"`
	SkillIDs []string `json:"skillIds"`
	Icon     string   `json:"icon"`
}

type Segment struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type Description struct {
	Template string    `json:"template"`
	Params   []string  `json:"params"`
	Segments []Segment `json:"segments"`
}

type Skill struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Tag               string      `json:"tag,omitempty"`
	TypeDesc          string      `json:"typeDesc,omitempty"`
	AttackType        string      `json:"attackType,omitempty"`
	MaxLevel          int         `json:"maxLevel"`
	Level             int         `json:"level"`
	Values            []float64   `json:"values"`
	Description       Description `json:"description"`
	SimpleDescription string      `json:"simpleDescription,omitempty"`
}

type LightCone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	Path        string `json:"path"`
	MaxRank     int    `json:"maxRank"`
	Skill       *Skill `json:"skill,omitempty"`
}
