package input

import "github.com/charmbracelet/harmonica"

// Follower eases a pointer toward a target with a damped spring, so
// discrete inputs (arrow keys, coarse terminal mouse cells) glide.
type Follower struct {
	spring harmonica.Spring
	x, y   float64
	vx, vy float64
	tx, ty float64
}

func NewFollower(fps int, frequency, damping float64) *Follower {
	return &Follower{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (f *Follower) SetTarget(x, y float64) {
	f.tx, f.ty = clamp(x), clamp(y)
}

// Nudge moves the target by (dx, dy), staying inside [-1, 1].
func (f *Follower) Nudge(dx, dy float64) {
	f.SetTarget(f.tx+dx, f.ty+dy)
}

func (f *Follower) Target() (float64, float64) { return f.tx, f.ty }

// Step advances the spring by one frame and returns the pointer.
func (f *Follower) Step() (float64, float64) {
	f.x, f.vx = f.spring.Update(f.x, f.vx, f.tx)
	f.y, f.vy = f.spring.Update(f.y, f.vy, f.ty)
	return clamp(f.x), clamp(f.y)
}

func (f *Follower) Pointer(float64) (float64, float64) { return clamp(f.x), clamp(f.y) }

func (f *Follower) Reset() {
	f.x, f.y, f.vx, f.vy, f.tx, f.ty = 0, 0, 0, 0, 0, 0
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
