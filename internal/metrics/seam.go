package metrics

import (
	"math"

	"github.com/san-kum/foldwall/internal/sim"
)

// SeamGap tracks the largest visual gap or overlap between neighbouring
// strip edges once each strip is foreshortened by the cosine of its fold.
type SeamGap struct {
	name string
	max  float64
}

func NewSeamGap() *SeamGap {
	return &SeamGap{name: "seam_gap"}
}

func (s *SeamGap) Name() string { return s.name }

func (s *SeamGap) Observe(f sim.Frame) {
	if g := MaxSeam(f); g > s.max {
		s.max = g
	}
}

func (s *SeamGap) Value() float64 { return s.max }
func (s *SeamGap) Reset()         { s.max = 0 }

// MaxSeam returns the largest |gap| between the projected right edge of
// strip i and the projected left edge of strip i+1 for one frame.
func MaxSeam(f sim.Frame) float64 {
	worst := 0.0
	for i := 0; i+1 < len(f.States) && i+1 < len(f.Layouts); i++ {
		a, b := f.States[i], f.States[i+1]
		right := a.PositionX + f.Layouts[i].Width/2*math.Cos(a.RotationY)
		left := b.PositionX - f.Layouts[i+1].Width/2*math.Cos(b.RotationY)
		worst = math.Max(worst, math.Abs(left-right))
	}
	return worst
}
