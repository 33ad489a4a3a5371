package input

import (
	"time"

	"github.com/san-kum/foldwall/internal/wall"
)

// Clock turns a Source into a stream of wall.InputSample values. Fixed
// clocks advance by a constant delta; real-time clocks measure wall time
// between calls.
type Clock struct {
	src     Source
	fixed   float64
	elapsed float64
	last    time.Time
	now     func() time.Time
}

func NewFixedClock(src Source, fps int) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{src: src, fixed: 1 / float64(fps), now: time.Now}
}

func NewRealtimeClock(src Source) *Clock {
	return &Clock{src: src, now: time.Now}
}

func (c *Clock) Elapsed() float64 { return c.elapsed }

// Next produces the sample for the next frame.
func (c *Clock) Next() wall.InputSample {
	dt := c.fixed
	if dt == 0 {
		now := c.now()
		if !c.last.IsZero() {
			dt = now.Sub(c.last).Seconds()
		}
		c.last = now
	}
	if dt <= 0 {
		dt = wall.MinFrameDelta
	}
	c.elapsed += dt
	x, y := c.src.Pointer(c.elapsed)
	return wall.InputSample{PointerX: x, PointerY: y, Elapsed: c.elapsed, Delta: dt}.Sanitize()
}

func (c *Clock) Reset() {
	c.elapsed = 0
	c.last = time.Time{}
}
