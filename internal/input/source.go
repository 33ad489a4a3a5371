// Package input produces the per-frame pointer samples that drive a wall.
package input

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Source yields a normalized pointer position for a point in time.
// Coordinates are in [-1, 1] with +1 at top/right.
type Source interface {
	Pointer(t float64) (x, y float64)
}

type Static struct {
	X, Y float64
}

func (s Static) Pointer(float64) (float64, float64) { return s.X, s.Y }

// Sweep moves the pointer left and right across the wall.
type Sweep struct {
	Amplitude float64
	Period    float64
	Y         float64
}

func (s Sweep) Pointer(t float64) (float64, float64) {
	if s.Period <= 0 {
		return 0, s.Y
	}
	return s.Amplitude * math.Sin(2*math.Pi*t/s.Period), s.Y
}

// Orbit circles the pointer around the screen center.
type Orbit struct {
	Radius float64
	Period float64
}

func (o Orbit) Pointer(t float64) (float64, float64) {
	if o.Period <= 0 {
		return o.Radius, 0
	}
	a := 2 * math.Pi * t / o.Period
	return o.Radius * math.Cos(a), o.Radius * math.Sin(a)
}

type Keyframe struct {
	T float64 `yaml:"t"`
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Keyframes interpolates linearly between timed pointer positions and holds
// the first/last value outside their range.
type Keyframes struct {
	Frames []Keyframe `yaml:"frames"`
	Loop   bool       `yaml:"loop"`
}

func NewKeyframes(frames []Keyframe, loop bool) (*Keyframes, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("keyframes: at least one frame required")
	}
	sorted := make([]Keyframe, len(frames))
	copy(sorted, frames)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return &Keyframes{Frames: sorted, Loop: loop}, nil
}

func LoadKeyframes(path string) (*Keyframes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var k Keyframes
	if err := yaml.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	return NewKeyframes(k.Frames, k.Loop)
}

func (k *Keyframes) Pointer(t float64) (float64, float64) {
	f := k.Frames
	if k.Loop && len(f) > 1 {
		span := f[len(f)-1].T - f[0].T
		if span > 0 {
			t = f[0].T + math.Mod(t-f[0].T, span)
			if t < f[0].T {
				t += span
			}
		}
	}
	if t <= f[0].T {
		return f[0].X, f[0].Y
	}
	if t >= f[len(f)-1].T {
		last := f[len(f)-1]
		return last.X, last.Y
	}
	i := sort.Search(len(f), func(i int) bool { return f[i].T > t })
	a, b := f[i-1], f[i]
	u := (t - a.T) / (b.T - a.T)
	return a.X + (b.X-a.X)*u, a.Y + (b.Y-a.Y)*u
}
