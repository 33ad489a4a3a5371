package export

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/foldwall/internal/analysis"
	"github.com/san-kum/foldwall/internal/viz"
	"github.com/san-kum/foldwall/internal/wall"
)

func flatStrips(t *testing.T, cfg wall.Config) []wall.Strip {
	t.Helper()
	w, err := wall.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	strips := w.Strips()
	for i, l := range w.Layouts() {
		strips[i].PositionX = l.FlatCenterX
	}
	return strips
}

func TestFrameToSVG(t *testing.T) {
	cfg := wall.Config{StripCount: 3, Width: 6, Height: 2, MaxFoldAngle: 1}
	strips := flatStrips(t, cfg)
	strips[1].RotationY = math.Pi / 2

	colors := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	svg := FrameToSVG(cfg, strips, colors, 600, 300)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete svg document")
	}
	if n := strings.Count(svg, "data-strip="); n != 2 {
		t.Errorf("expected 2 visible strips, got %d", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="#0000ff"`) {
		t.Error("flat strips should keep their full colour")
	}
	if strings.Contains(svg, `data-strip="1"`) {
		t.Error("edge-on strip should be skipped")
	}
}

func TestShadeHex(t *testing.T) {
	if got := shadeHex(color.RGBA{200, 100, 50, 255}, 0.5); got != "#643219" {
		t.Errorf("shadeHex = %s", got)
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2)
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Error("unexpected dimensions")
	}
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should give empty output")
	}
}

func TestWireframeToSVG(t *testing.T) {
	cfg := wall.DefaultConfig()
	svg := WireframeToSVG(cfg, flatStrips(t, cfg), 40, 12, 2)
	if !strings.Contains(svg, "<circle") {
		t.Error("wireframe should light some dots")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	times := []float64{0, 1, 2}
	states := [][]wall.StripState{
		{{RotationY: 0}, {RotationY: 0}},
		{{RotationY: 0.5}, {RotationY: -0.5}},
		{{RotationY: 1}, {RotationY: -1}},
	}
	traces := RotationTraces(times, states, []int{0, 1, 7})
	if len(traces) != 3 || len(traces[0].Points) != 3 || len(traces[2].Points) != 0 {
		t.Fatalf("unexpected traces: %+v", traces)
	}

	svg := TrajectoryToSVG(traces, 400, 200)
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	if !strings.Contains(svg, "strip 1") {
		t.Error("missing legend")
	}

	if TrajectoryToSVG(nil, 10, 10) != "" {
		t.Error("no points should give empty output")
	}
	if TrajectoryToSVG([]Trace{{Points: []analysis.Point{{X: 1, Y: 1}}}}, 10, 10) == "" {
		t.Error("a single point still yields a document")
	}
}
