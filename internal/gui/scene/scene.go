// Package scene holds the window-independent geometry of the wall view:
// where each strip lands on screen, in which order strips are painted,
// and how bright each one is.
package scene

import (
	"math"
	"sort"

	"github.com/san-kum/foldwall/internal/wall"
)

const (
	// cameraDistance is in wall widths; a strip at z moves toward the
	// viewer by cameraDistance/(cameraDistance - z).
	cameraDistance = 2.0
	fillX          = 0.9
	fillY          = 0.75
	minShade       = 0.45
)

// Placement is where one strip's texture slice lands on screen. The
// slice is drawn Width x Height pixels centered on (CenterX, CenterY).
type Placement struct {
	Index     int
	CenterX   float64
	CenterY   float64
	Width     float64
	Height    float64
	Shade     float64
	Depth     float64
	Visible   bool
	Direction float64
}

// Viewport maps world units to a screen of W x H pixels.
type Viewport struct {
	W, H          int
	PixelsPerUnit float64
	Distance      float64
}

func NewViewport(cfg wall.Config, w, h int) Viewport {
	ppu := math.Min(float64(w)*fillX/cfg.Width, float64(h)*fillY/cfg.Height)
	return Viewport{W: w, H: h, PixelsPerUnit: ppu, Distance: cameraDistance * cfg.Width}
}

func (v Viewport) perspective(z float64) float64 {
	if v.Distance <= 0 || z >= v.Distance {
		return 1
	}
	return v.Distance / (v.Distance - z)
}

// Place projects a strip. The on-screen width is the strip width
// foreshortened by cos(rotation); the height by cos(tilt).
func (v Viewport) Place(s wall.Strip) Placement {
	p := v.perspective(s.PositionZ)
	scale := v.PixelsPerUnit * p
	w := s.Width * math.Abs(math.Cos(s.RotationY)) * scale
	h := s.Height * math.Abs(math.Cos(s.TiltX)) * scale
	return Placement{
		Index:     s.Index,
		CenterX:   float64(v.W)/2 + s.PositionX*scale,
		CenterY:   float64(v.H) / 2,
		Width:     w,
		Height:    h,
		Shade:     Shade(s.RotationY),
		Depth:     s.PositionZ,
		Visible:   w >= 0.5 && h >= 0.5,
		Direction: wall.Direction(s.Index),
	}
}

// PlaceAll projects every strip and returns them in paint order.
func (v Viewport) PlaceAll(strips []wall.Strip, dst []Placement) []Placement {
	dst = dst[:0]
	for _, s := range strips {
		dst = append(dst, v.Place(s))
	}
	SortForPainting(dst)
	return dst
}

// SortForPainting orders placements far to near, ties by index.
func SortForPainting(ps []Placement) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Depth != ps[j].Depth {
			return ps[i].Depth < ps[j].Depth
		}
		return ps[i].Index < ps[j].Index
	})
}

// Shade is the brightness of a strip folded by rot: full when facing the
// viewer, dimmer as it turns away.
func Shade(rot float64) float64 {
	return minShade + (1-minShade)*math.Abs(math.Cos(rot))
}

// Pointer maps a cursor position in a w x h window to pointer
// coordinates in [-1, 1], +y up.
func Pointer(cx, cy, w, h int) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	px := 2*float64(cx)/float64(w) - 1
	py := 1 - 2*float64(cy)/float64(h)
	return clamp(px), clamp(py)
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
