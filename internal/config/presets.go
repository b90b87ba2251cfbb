package config

import "sort"

var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"sprint": func() *Config {
		cfg := DefaultConfig()
		cfg.Race.LapsToWin = 1
		return cfg
	},
	"duel": func() *Config {
		cfg := DefaultConfig()
		cfg.Bodies = []BodyConfig{
			{Distance: 120, Size: 25, Color: "#ff0000"},
			{Distance: 220, Size: 25, Color: "#0000ff"},
		}
		cfg.Race.LapsToWin = 5
		return cfg
	},
	"crowd": func() *Config {
		cfg := DefaultConfig()
		cfg.Bodies = append(cfg.Bodies,
			BodyConfig{Distance: 50, Size: 15, Color: "#ff00ff"},
			BodyConfig{Distance: 290, Size: 40, Color: "#00ffff"},
		)
		return cfg
	},
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
