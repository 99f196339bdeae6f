// types.go
package game

// RawConfig mirrors config/banners.yaml. Every banner field is optional and
// overrides the built-in constants when present.
type RawConfig struct {
	Version  string                  `yaml:"version"`
	Banners  map[string]BannerConfig `yaml:"banners,omitempty"`
	Schedule []PatchBanners          `yaml:"schedule,omitempty"`
	Notes    string                  `yaml:"notes,omitempty"`
}

// BannerConfig is a partial gacha.Banner.
type BannerConfig struct {
	Name           *string  `yaml:"name,omitempty"`
	BaseRate       *float64 `yaml:"base_rate,omitempty"` // percent
	PityStart      *int     `yaml:"pity_start,omitempty"`
	MaxPity        *int     `yaml:"max_pity,omitempty"`
	BannerRate     *float64 `yaml:"banner_rate,omitempty"`
	GuaranteeRate  *float64 `yaml:"guarantee_rate,omitempty"`
	GuaranteedPity *int     `yaml:"guaranteed_pity,omitempty"`
	MaxEidolon     *int     `yaml:"max_eidolon,omitempty"`
}

// PatchBanners lists the featured 5* characters of each half of a patch.
type PatchBanners struct {
	Version string   `yaml:"version"` // "1.1"
	First   []string `yaml:"first"`
	Second  []string `yaml:"second"`
}

// DefaultSchedule is the banner history of the first four patches.
func DefaultSchedule() []PatchBanners {
	return []PatchBanners{
		{Version: "1.1", First: []string{"Silver Wolf"}, Second: []string{"Luocha"}},
		{Version: "1.2", First: []string{"Blade"}, Second: []string{"Kafka"}},
		{Version: "1.3", First: []string{"Imbibitor Lunae"}, Second: []string{"Fu Xuan"}},
		{Version: "1.4", First: []string{"Jingliu"}, Second: []string{"Topaz & Numby"}},
	}
}
