package metrics

import (
	"math"

	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

// FoldAmplitude is the mean |rotation| over all strips and frames.
type FoldAmplitude struct {
	name    string
	sum     float64
	samples int
}

func NewFoldAmplitude() *FoldAmplitude {
	return &FoldAmplitude{name: "fold_amplitude"}
}

func (a *FoldAmplitude) Name() string { return a.name }

func (a *FoldAmplitude) Observe(f sim.Frame) {
	for _, s := range f.States {
		a.sum += math.Abs(s.RotationY)
		a.samples++
	}
}

func (a *FoldAmplitude) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *FoldAmplitude) Reset() {
	a.sum = 0
	a.samples = 0
}

// DepthSpread is the largest |Z| offset any strip reached.
type DepthSpread struct {
	name string
	max  float64
}

func NewDepthSpread() *DepthSpread {
	return &DepthSpread{name: "depth_spread"}
}

func (d *DepthSpread) Name() string { return d.name }

func (d *DepthSpread) Observe(f sim.Frame) {
	for _, s := range f.States {
		d.max = math.Max(d.max, math.Abs(s.PositionZ))
	}
}

func (d *DepthSpread) Value() float64 { return d.max }
func (d *DepthSpread) Reset()         { d.max = 0 }

// TrackingError is the mean distance between each strip's pose and the
// pose it is relaxing toward, summed over rotation, position and tilt.
// It measures how far smoothing lags the pointer.
type TrackingError struct {
	name    string
	sum     float64
	samples int
}

func NewTrackingError() *TrackingError {
	return &TrackingError{name: "tracking_error"}
}

func (e *TrackingError) Name() string { return e.name }

func (e *TrackingError) Observe(f sim.Frame) {
	for i, s := range f.States {
		if i >= len(f.Layouts) {
			break
		}
		e.sum += Lag(wall.TargetFor(f.Layouts[i], s, f.Input, f.Config), s)
		e.samples++
	}
}

// Lag is the L1 distance between a strip state and its target.
func Lag(t wall.Target, s wall.StripState) float64 {
	return math.Abs(t.RotationY-s.RotationY) +
		math.Abs(t.PositionX-s.PositionX) +
		math.Abs(t.PositionZ-s.PositionZ) +
		math.Abs(t.TiltX-s.TiltX)
}

func (e *TrackingError) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *TrackingError) Reset() {
	e.sum = 0
	e.samples = 0
}

// Alternation is the fraction of adjacent strip pairs, over all frames,
// whose rotations have opposite signs. Pairs where either strip is flat
// are skipped.
type Alternation struct {
	name     string
	opposite int
	pairs    int
}

func NewAlternation() *Alternation {
	return &Alternation{name: "alternation"}
}

func (a *Alternation) Name() string { return a.name }

func (a *Alternation) Observe(f sim.Frame) {
	for i := 0; i+1 < len(f.States); i++ {
		r0, r1 := f.States[i].RotationY, f.States[i+1].RotationY
		if r0 == 0 || r1 == 0 {
			continue
		}
		a.pairs++
		if math.Signbit(r0) != math.Signbit(r1) {
			a.opposite++
		}
	}
}

func (a *Alternation) Value() float64 {
	if a.pairs == 0 {
		return 1.0
	}
	return float64(a.opposite) / float64(a.pairs)
}

func (a *Alternation) Reset() {
	a.opposite = 0
	a.pairs = 0
}

// Default returns one fresh instance of every wall metric.
func Default() []sim.Metric {
	return []sim.Metric{
		NewSeamGap(),
		NewFoldAmplitude(),
		NewDepthSpread(),
		NewTrackingError(),
		NewAlternation(),
	}
}
