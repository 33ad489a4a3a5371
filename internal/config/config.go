package config

import (
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/foldwall/internal/input"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

const (
	DefaultStrips       = 24
	DefaultWidth        = 8.0
	DefaultHeight       = 4.5
	DefaultMaxFoldAngle = math.Pi / 3
	DefaultFPS          = 60
	DefaultDuration     = 10.0
	DefaultPointer      = "sweep"
	DefaultTheme        = "cyberpunk"
	DefaultLogLevel     = "info"
)

type Config struct {
	Wall    WallConfig    `yaml:"wall"`
	Run     RunConfig     `yaml:"run"`
	Texture TextureConfig `yaml:"texture"`
	Log     LogConfig     `yaml:"log"`
	View    ViewConfig    `yaml:"view"`
}

type WallConfig struct {
	Strips       int     `yaml:"strips"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxFoldAngle float64 `yaml:"max_fold_angle"`
}

type RunConfig struct {
	FPS         int           `yaml:"fps"`
	Duration    float64       `yaml:"duration"`
	Workers     int           `yaml:"workers"`
	RecordEvery int           `yaml:"record_every"`
	Pointer     PointerConfig `yaml:"pointer"`
}

// PointerConfig selects and parameterizes the scripted pointer source.
type PointerConfig struct {
	Mode      string           `yaml:"mode"`
	X         float64          `yaml:"x"`
	Y         float64          `yaml:"y"`
	Amplitude float64          `yaml:"amplitude"`
	Radius    float64          `yaml:"radius"`
	Period    float64          `yaml:"period"`
	Loop      bool             `yaml:"loop"`
	Keyframes []input.Keyframe `yaml:"keyframes"`
}

type TextureConfig struct {
	Paths []string `yaml:"paths"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ViewConfig struct {
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Wall: WallConfig{
			Strips:       DefaultStrips,
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			MaxFoldAngle: DefaultMaxFoldAngle,
		},
		Run: RunConfig{
			FPS:         DefaultFPS,
			Duration:    DefaultDuration,
			Workers:     1,
			RecordEvery: 1,
			Pointer: PointerConfig{
				Mode:      DefaultPointer,
				Amplitude: 1.0,
				Radius:    0.8,
				Period:    6.0,
			},
		},
		Log:  LogConfig{Level: DefaultLogLevel},
		View: ViewConfig{Theme: DefaultTheme},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WallConfig converts the wall section into the core configuration.
func (c *Config) WallConfig() wall.Config {
	return wall.Config{
		StripCount:   c.Wall.Strips,
		Width:        c.Wall.Width,
		Height:       c.Wall.Height,
		MaxFoldAngle: c.Wall.MaxFoldAngle,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		FPS:           c.Run.FPS,
		Duration:      c.Run.Duration,
		Workers:       c.Run.Workers,
		RecordEvery:   c.Run.RecordEvery,
		ValidateState: true,
	}
}

// Validate rejects a configuration before any wall is built.
func (c *Config) Validate() error {
	if err := c.WallConfig().Validate(); err != nil {
		return err
	}
	if c.Run.FPS <= 0 {
		return fmt.Errorf("run.fps must be positive, got %d", c.Run.FPS)
	}
	if c.Run.Duration <= 0 {
		return fmt.Errorf("run.duration must be positive, got %f", c.Run.Duration)
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("run.workers must not be negative, got %d", c.Run.Workers)
	}
	return c.Run.Pointer.Validate()
}

// PointerModes lists the scripted pointer sources a config may name.
var PointerModes = []string{"keyframes", "orbit", "static", "sweep"}

func (p PointerConfig) Validate() error {
	if !slices.Contains(PointerModes, p.Mode) {
		return fmt.Errorf("unknown pointer mode: %q", p.Mode)
	}
	if p.Mode == "keyframes" && len(p.Keyframes) == 0 {
		return fmt.Errorf("pointer mode keyframes needs at least one keyframe")
	}
	if (p.Mode == "sweep" || p.Mode == "orbit") && p.Period <= 0 {
		return fmt.Errorf("pointer period must be positive, got %f", p.Period)
	}
	return nil
}
