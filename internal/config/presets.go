package config

import "sort"

// Presets adjust the defaults for common demonstrations.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"cube-only": func(c *Config) {
		c.Elements = ElementsConfig{Cube: true}
	},
	"line-only": func(c *Config) {
		c.Elements = ElementsConfig{Line: true}
	},
	"ticker": func(c *Config) {
		c.Elements = ElementsConfig{Text: true}
		c.Font = "mono24"
	},
	"trails": func(c *Config) {
		c.Elements = ElementsConfig{Line: true, Cube: true}
		c.EraseBackground = false
	},
	"clean": func(c *Config) {
		c.EraseBackground = true
	},
	"tiny": func(c *Config) {
		c.Width, c.Height = 64, 64
		c.Font = "mono9"
		c.Elements = ElementsConfig{Cube: true}
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
