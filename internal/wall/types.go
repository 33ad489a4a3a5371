package wall

import (
	"fmt"
	"math"
)

// MinFrameDelta replaces non-positive or non-finite frame deltas.
const MinFrameDelta = 1e-4

type Config struct {
	StripCount   int
	Width        float64
	Height       float64
	MaxFoldAngle float64
}

func DefaultConfig() Config {
	return Config{
		StripCount:   24,
		Width:        8,
		Height:       4.5,
		MaxFoldAngle: math.Pi / 3,
	}
}

// StripWidth is the flat width of every strip.
func (c Config) StripWidth() float64 {
	return c.Width / float64(c.StripCount)
}

func (c Config) Validate() error {
	if c.StripCount <= 0 {
		return &ConfigError{Field: "strip_count", Value: float64(c.StripCount), Wrapped: ErrInvalidStripCount}
	}
	if !(c.Width > 0) || math.IsInf(c.Width, 0) {
		return &ConfigError{Field: "width", Value: c.Width, Wrapped: ErrInvalidDimensions}
	}
	if !(c.Height > 0) || math.IsInf(c.Height, 0) {
		return &ConfigError{Field: "height", Value: c.Height, Wrapped: ErrInvalidDimensions}
	}
	if !(c.MaxFoldAngle > 0) || c.MaxFoldAngle > math.Pi {
		return &ConfigError{Field: "max_fold_angle", Value: c.MaxFoldAngle, Wrapped: ErrInvalidFoldAngle}
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%d strips, %.2fx%.2f, fold %.3f rad", c.StripCount, c.Width, c.Height, c.MaxFoldAngle)
}

// StripLayout is the flat, unfolded geometry of one strip.
type StripLayout struct {
	Index          int
	FlatCenterX    float64
	Width          float64
	Height         float64
	TextureOffsetU float64
	TextureRepeatU float64
}

// Left and Right are the flat X extents of the strip.
func (l StripLayout) Left() float64  { return l.FlatCenterX - l.Width/2 }
func (l StripLayout) Right() float64 { return l.FlatCenterX + l.Width/2 }

// StripState is the smoothed transform a strip carries across frames.
// The zero value is flat, centered, untilted.
type StripState struct {
	RotationY float64 `json:"rotation_y"`
	PositionX float64 `json:"position_x"`
	PositionZ float64 `json:"position_z"`
	TiltX     float64 `json:"tilt_x"`
}

func (s StripState) IsValid() bool {
	for _, v := range [...]float64{s.RotationY, s.PositionX, s.PositionZ, s.TiltX} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// InputSample is one frame of host input.
type InputSample struct {
	PointerX float64
	PointerY float64
	Elapsed  float64
	Delta    float64
}

// Sanitize clamps the pointer to [-1, 1] and replaces a non-positive or
// non-finite delta with MinFrameDelta.
func (in InputSample) Sanitize() InputSample {
	in.PointerX = clampUnit(in.PointerX)
	in.PointerY = clampUnit(in.PointerY)
	if math.IsNaN(in.Elapsed) || math.IsInf(in.Elapsed, 0) {
		in.Elapsed = 0
	}
	if !(in.Delta > 0) || math.IsInf(in.Delta, 0) {
		in.Delta = MinFrameDelta
	}
	return in
}

// Target is the instantaneous pose a strip is relaxing toward.
type Target struct {
	RotationY float64
	PositionX float64
	PositionZ float64
	TiltX     float64
}

// Strip is what a renderer needs to draw one strip for the current frame.
type Strip struct {
	Index   int
	Width   float64
	Height  float64
	OffsetU float64
	RepeatU float64
	StripState
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
