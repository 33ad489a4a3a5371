package viz

import (
	"math"
	"sort"

	"github.com/san-kum/foldwall/internal/wall"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera orbits the origin and projects with a pinhole at Distance.
type Camera struct {
	Distance   float64
	Near       float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, RotX: -0.25, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Fit sets the zoom so a scene of the given world width spans most of a
// sw x sh dot canvas.
func (c *Camera) Fit(worldWidth float64, sw, sh int) {
	if worldWidth <= 0 || sw <= 0 || sh <= 0 {
		return
	}
	c.Zoom = 0.85 * float64(sw) / (worldWidth * projScale(sw, sh))
}

func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps a world point to dot coordinates on a sw x sh canvas and
// reports its depth and whether it lands on screen.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z) * projScale(sw, sh)
	sx := int(rot.X*scale) + sw/2
	sy := int(-rot.Y*scale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

func projScale(sw, sh int) float64 {
	return float64(min(sw, sh)) / 3.0
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) Clear()            { w.Edges = w.Edges[:0] }

// StripCorners returns the four world-space corners of a strip in the
// order bottom-left, bottom-right, top-right, top-left. Rotation is
// applied about Y first, then the tilt about X.
func StripCorners(s wall.Strip) [4]Vec3 {
	hw, hh := s.Width/2, s.Height/2
	cr, sr := math.Cos(s.RotationY), math.Sin(s.RotationY)
	ct, st := math.Cos(s.TiltX), math.Sin(s.TiltX)
	center := Vec3{s.PositionX, 0, s.PositionZ}

	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Vec3
	for i, uv := range local {
		u, v := uv[0], uv[1]
		x, z := u*cr, -u*sr
		y := v*ct - z*st
		z = v*st + z*ct
		out[i] = center.Add(Vec3{x, y, z})
	}
	return out
}

// WallWireframe outlines every strip as a quad.
func WallWireframe(w *Wireframe, strips []wall.Strip) *Wireframe {
	if w == nil {
		w = NewWireframe()
	}
	w.Clear()
	for _, s := range strips {
		c := StripCorners(s)
		for i := range c {
			w.AddEdge(c[i], c[(i+1)%4])
		}
	}
	return w
}

// Render3D draws the wireframe far to near.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Dots()

	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	proj := make([]projected, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}
