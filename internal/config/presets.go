package config

import "sort"

// Presets override the defaults; unset fields keep DefaultConfig values.
var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"calm": func(c *Config) {
		c.CrossSeconds = 40
		c.Style.LineColor = "#7a8a99"
	},
	"frantic": func(c *Config) {
		c.CrossSeconds = 4
		c.Style.LineColor = "#ff6b6b"
	},
	"sticky": func(c *Config) {
		c.Policy = "commit"
	},
	"lattice": func(c *Config) {
		c.Topology = "lattice"
		c.CrossSeconds = 30
	},
	"triangle": func(c *Config) {
		c.Topology = "triangle"
		c.Style.LineWidth = 3
	},
}

func GetPreset(preset string) *Config {
	apply, ok := Presets[preset]
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
