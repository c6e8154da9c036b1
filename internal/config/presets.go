package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Width: 240, Height: 120, Res: 3, Limit: 10, Speed: 5,
		MaxFrames: 6000, FPS: 60,
	},
	"dense": {
		Width: 240, Height: 120, Res: 3, Limit: 35, Speed: 3,
		MaxFrames: 6000, FPS: 60,
	},
	"sparse": {
		Width: 240, Height: 120, Res: 6, Limit: 5, Speed: 5,
		MaxFrames: 3000, FPS: 60,
	},
	"blinker": {
		Width: 30, Height: 30, Res: 6, Speed: 10, Pattern: "blinker",
		MaxFrames: 600, FPS: 30,
	},
	"glider": {
		Width: 120, Height: 120, Res: 6, Speed: 4, Pattern: "glider",
		MaxFrames: 1200, FPS: 30,
	},
	"beacon": {
		Width: 60, Height: 60, Res: 6, Speed: 10, Pattern: "beacon",
		MaxFrames: 600, FPS: 30,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for k := range Presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
