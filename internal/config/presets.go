package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"small": {
		Bars: 16, Speed: 60, Algorithm: "insertion", Theme: "classic",
		Window: WindowConfig{Width: 800, Height: 500, Title: DefaultTitle, Margin: DefaultMargin},
	},
	"large": {
		Bars: 400, Speed: 1, Algorithm: "quick", Theme: "minimal",
		Window: WindowConfig{Width: 1600, Height: 900, Title: DefaultTitle, Margin: DefaultMargin},
	},
	"slow": {
		Bars: 30, Speed: 100, Algorithm: "bubble", Theme: "ocean",
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle, Margin: DefaultMargin},
	},
	"turbo": {
		Bars: 200, Speed: 1, Algorithm: "merge", Theme: "sunset",
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle, Margin: DefaultMargin},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
