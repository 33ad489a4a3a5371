package export

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/foldwall/internal/analysis"
	"github.com/san-kum/foldwall/internal/gui/scene"
	"github.com/san-kum/foldwall/internal/viz"
	"github.com/san-kum/foldwall/internal/wall"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`

// FrameToSVG draws a front view of the wall: one rectangle per visible
// strip, foreshortened by its fold, filled with its texture colour and
// shaded by rotation. A nil colours slice paints every strip grey.
func FrameToSVG(cfg wall.Config, strips []wall.Strip, colors []color.RGBA, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height)

	vp := scene.NewViewport(cfg, width, height)
	for _, p := range vp.PlaceAll(strips, nil) {
		if !p.Visible {
			continue
		}
		c := color.RGBA{160, 160, 160, 255}
		if p.Index < len(colors) {
			c = colors[p.Index]
		}
		fmt.Fprintf(&sb, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" data-strip="%d"/>
`,
			p.CenterX-p.Width/2, p.CenterY-p.Height/2, p.Width, p.Height, shadeHex(c, p.Shade), p.Index)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func shadeHex(c color.RGBA, s float64) string {
	f := func(v uint8) uint8 { return uint8(math.Round(float64(v) * s)) }
	return fmt.Sprintf("#%02x%02x%02x", f(c.R), f(c.G), f(c.B))
}

// WireframeToSVG renders the strips through the braille wireframe and
// writes every lit dot as a circle.
func WireframeToSVG(cfg wall.Config, strips []wall.Strip, cols, rows int, scale float64) string {
	canvas := viz.NewCanvas(cols, rows)
	cam := viz.NewCamera()
	sw, sh := canvas.Dots()
	cam.Fit(cfg.Width, sw, sh)
	viz.Render3D(canvas, viz.WallWireframe(nil, strips), cam)
	return CanvasToSVG(canvas, scale)
}

func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	sw, sh := canvas.Dots()
	width, height := int(float64(sw)*scale), int(float64(sh)*scale)

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height)
	sb.WriteString("<g fill=\"#00ff88\">\n")

	r := scale * 0.4
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			if canvas.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					(float64(x)+0.5)*scale, (float64(y)+0.5)*scale, r)
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Trace is one named polyline of a trajectory plot.
type Trace struct {
	Name   string
	Color  string
	Points []analysis.Point
}

// TrajectoryToSVG plots traces on shared axes, padded by 10%.
func TrajectoryToSVG(traces []Trace, width, height int) string {
	first := true
	var minX, maxX, minY, maxY float64
	for _, tr := range traces {
		for _, p := range tr.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if first {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height)

	for i, tr := range traces {
		if len(tr.Points) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, tr.Color)
		for j, p := range tr.Points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if j == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
		if tr.Name != "" {
			fmt.Fprintf(&sb, "<text x=\"10\" y=\"%d\" fill=\"%s\" font-family=\"monospace\" font-size=\"12\">%s</text>\n",
				20+i*16, tr.Color, tr.Name)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

var palette = []string{"#00ffff", "#ff00ff", "#ffcc00", "#00ff88", "#ff6b6b", "#66ccee"}

// RotationTraces builds one trace per requested strip of rotation over time.
func RotationTraces(times []float64, states [][]wall.StripState, strips []int) []Trace {
	traces := make([]Trace, 0, len(strips))
	for k, idx := range strips {
		tr := Trace{Name: fmt.Sprintf("strip %d", idx), Color: palette[k%len(palette)]}
		for i, frame := range states {
			if idx < len(frame) && i < len(times) {
				tr.Points = append(tr.Points, analysis.Point{X: times[i], Y: frame[idx].RotationY})
			}
		}
		traces = append(traces, tr)
	}
	return traces
}
