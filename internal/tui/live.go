package tui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/san-kum/foldwall/internal/metrics"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

const (
	width       = 70
	height      = 15
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// PlanRenderer draws a top-down view of the wall while a run progresses:
// x across, depth z down the screen, so a folded wall shows its zigzag.
// It is a sim.Observer.
type PlanRenderer struct {
	out       io.Writer
	frameRate int
	realtime  bool
	start     time.Time
	next      float64
	canvas    [][]rune
	rendered  int
}

// NewPlanRenderer redraws at most frameRate times per simulated second.
// With realtime set it also sleeps so playback matches simulated time.
func NewPlanRenderer(out io.Writer, frameRate int, realtime bool) *PlanRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &PlanRenderer{out: out, frameRate: frameRate, realtime: realtime, canvas: canvas}
}

func (r *PlanRenderer) OnFrame(f sim.Frame) {
	t := f.Input.Elapsed
	if t+1e-9 < r.next {
		return
	}
	r.next = t + 1/float64(r.frameRate)

	if r.realtime {
		if r.start.IsZero() {
			r.start = time.Now().Add(-time.Duration(t * float64(time.Second)))
		}
		if ahead := time.Until(r.start.Add(time.Duration(t * float64(time.Second)))); ahead > 0 {
			time.Sleep(ahead)
		}
	}

	r.clear()
	r.draw(f)
	r.render(f)
	r.rendered++
}

// Rendered reports how many frames were drawn.
func (r *PlanRenderer) Rendered() int { return r.rendered }

func (r *PlanRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *PlanRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// draw maps world x in [-W/2, W/2] to columns and z in [-W/4, W/4] to
// rows, the largest depth a strip can reach.
func (r *PlanRenderer) draw(f sim.Frame) {
	cfg := f.Config
	halfW := cfg.Width / 2
	halfZ := cfg.Width / 4
	if halfW <= 0 {
		return
	}
	col := func(x float64) int { return int((x + halfW) / (2 * halfW) * float64(width-1)) }
	row := func(z float64) int { return int((halfZ - z) / (2 * halfZ) * float64(height-1)) }

	mid := row(0)
	for x := 0; x < width; x++ {
		r.set(x, mid, '·')
	}

	for i, st := range f.States {
		if i >= len(f.Layouts) {
			break
		}
		hw := f.Layouts[i].Width / 2
		dx, dz := hw*math.Cos(st.RotationY), -hw*math.Sin(st.RotationY)
		glyph := '/'
		if wall.Direction(i) < 0 {
			glyph = '\\'
		}
		if math.Abs(st.RotationY) < 0.05 {
			glyph = '─'
		}
		r.line(col(st.PositionX-dx), row(st.PositionZ-dz), col(st.PositionX+dx), row(st.PositionZ+dz), glyph)
	}
}

func (r *PlanRenderer) line(x1, y1, x2, y2 int, c rune) {
	steps := max(abs(x2-x1), abs(y2-y1))
	if steps == 0 {
		r.set(x1, y1, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.set(x1+int(math.Round(t*float64(x2-x1))), y1+int(math.Round(t*float64(y2-y1))), c)
	}
}

func (r *PlanRenderer) render(f sim.Frame) {
	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  plan view  t=%.2fs  pointer=(%+.2f, %+.2f)\n",
		f.Input.Elapsed, f.Input.PointerX, f.Input.PointerY)
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprintf(&b, "  compression=%.2f  seam=%.4f  strips=%d\n",
		wall.Compression(f.Input.PointerX), metrics.MaxSeam(f), len(f.States))

	io.WriteString(r.out, b.String())
}

func (r *PlanRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *PlanRenderer) Stop()  { io.WriteString(r.out, showCursor) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
