package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/foldwall/internal/sim"
)

type Point struct{ X, Y float64 }

// Portrait pairs the pointer x of every recorded frame with one strip's
// rotation. A lagging strip traces a loop instead of a line.
func Portrait(result *sim.Result, strip int) []Point {
	n := min(len(result.Inputs), len(result.States))
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		if strip >= len(result.States[i]) {
			return nil
		}
		points = append(points, Point{X: result.Inputs[i].PointerX, Y: result.States[i][strip].RotationY})
	}
	return points
}

// SettlingTime returns the first time after which every sample stays
// within tol of the final value, or -1 if the series is empty.
func SettlingTime(times, series []float64, tol float64) float64 {
	n := min(len(times), len(series))
	if n == 0 {
		return -1
	}
	final := series[n-1]
	settled := times[n-1]
	for i := n - 1; i >= 0; i-- {
		if math.Abs(series[i]-final) > tol {
			break
		}
		settled = times[i]
	}
	return settled
}

// PortraitToASCII plots points on a width x height character grid with
// axes drawn where zero is visible.
func PortraitToASCII(points []Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
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
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	if minX <= 0 && maxX >= 0 {
		col := int(-minX / rangeX * float64(width-1))
		for row := range canvas {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int(-minY/rangeY*float64(height-1))
		for col := range canvas[row] {
			canvas[row][col] = '─'
		}
	}

	for _, p := range points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
