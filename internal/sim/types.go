package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/foldwall/internal/wall"
)

var (
	ErrNoFrames = errors.New("sim: run produces no frames")

	// ErrInvalidState indicates a strip state went NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid strip state (NaN or Inf detected)")
)

// Frame is what metrics and observers see after each tick.
type Frame struct {
	Index   int
	Input   wall.InputSample
	Config  wall.Config
	Layouts []wall.StripLayout
	States  []wall.StripState
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	FPS      int
	Duration float64
	Workers  int
	// RecordEvery keeps one frame in N in the result; 0 or 1 keeps all.
	RecordEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		FPS:           60,
		Duration:      10.0,
		Workers:       1,
		RecordEvery:   1,
		ValidateState: true,
	}
}

// Frames is the number of ticks a run performs.
func (c Config) Frames() int {
	return int(c.Duration * float64(c.FPS))
}

type Result struct {
	Config      wall.Config
	Times       []float64
	Inputs      []wall.InputSample
	States      [][]wall.StripState
	Metrics     map[string]float64
	FramesTaken int
	Errors      []error
}

// Series extracts one field of one strip across the recorded frames.
func (r *Result) Series(strip int, field func(wall.StripState) float64) []float64 {
	out := make([]float64, 0, len(r.States))
	for _, frame := range r.States {
		if strip < len(frame) {
			out = append(out, field(frame[strip]))
		}
	}
	return out
}

type SimError struct {
	Time    float64
	Frame   int
	Strip   int
	Wrapped error
}

func (e SimError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f) strip %d: %s", e.Frame, e.Time, e.Strip, e.Wrapped.Error())
}

func (e SimError) Unwrap() error { return e.Wrapped }

// Field accessors for Result.Series.
func RotationY(s wall.StripState) float64 { return s.RotationY }
func PositionX(s wall.StripState) float64 { return s.PositionX }
func PositionZ(s wall.StripState) float64 { return s.PositionZ }
func TiltX(s wall.StripState) float64     { return s.TiltX }
