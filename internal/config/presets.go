package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"accordion": {
		Wall: WallConfig{Strips: 24, Width: 8, Height: 4.5, MaxFoldAngle: math.Pi / 3},
		Run:  RunConfig{FPS: 60, Duration: 12, Pointer: PointerConfig{Mode: "sweep", Amplitude: 1, Period: 6}},
	},
	"gentle": {
		Wall: WallConfig{Strips: 16, Width: 8, Height: 4.5, MaxFoldAngle: math.Pi / 8},
		Run:  RunConfig{FPS: 60, Duration: 10, Pointer: PointerConfig{Mode: "orbit", Radius: 0.5, Period: 8}},
	},
	"dense": {
		Wall: WallConfig{Strips: 96, Width: 8, Height: 4.5, MaxFoldAngle: math.Pi / 2.5},
		Run:  RunConfig{FPS: 60, Duration: 10, Workers: 4, Pointer: PointerConfig{Mode: "sweep", Amplitude: 0.8, Period: 5}},
	},
	"wide": {
		Wall: WallConfig{Strips: 32, Width: 16, Height: 4, MaxFoldAngle: math.Pi / 4},
		Run:  RunConfig{FPS: 30, Duration: 15, Pointer: PointerConfig{Mode: "orbit", Radius: 0.9, Period: 10}},
	},
	"paper": {
		Wall: WallConfig{Strips: 8, Width: 6, Height: 6, MaxFoldAngle: math.Pi},
		Run:  RunConfig{FPS: 60, Duration: 8, Pointer: PointerConfig{Mode: "static", X: 1}},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in,
// or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Wall = p.Wall
	cfg.Run.FPS = p.Run.FPS
	cfg.Run.Duration = p.Run.Duration
	if p.Run.Workers > 0 {
		cfg.Run.Workers = p.Run.Workers
	}
	cfg.Run.Pointer = p.Run.Pointer
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
