package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	helpBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(0, 2)
)

// The first canvas cell sits at (canvasOriginX, canvasOriginY) on screen
// because of canvasStyle padding.
const (
	canvasOriginX = 2
	canvasOriginY = 1
	statsWidth    = 46
)

type styles struct {
	wire, label, value, muted, key lipgloss.Style
	high, mid, low                 lipgloss.Style
	theme                          Theme
}

func newStyles(t Theme) styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return styles{
		wire:  fg(t.Wire),
		label: fg(t.Label).Width(12),
		value: fg(t.Value).Bold(true),
		muted: fg(t.Muted),
		key:   fg(t.Title).Bold(true),
		high:  fg(t.High),
		mid:   fg(t.Mid),
		low:   fg(t.Low),
		theme: t,
	}
}

// GradientText fades each rune of text from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(start))
	er, eg, eb := parseHex(string(end))

	var out strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := fmt.Sprintf("#%02x%02x%02x",
			mix(sr, er, t), mix(sg, eg, t), mix(sb, eb, t))
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(col)).Render(string(c)))
	}
	return out.String()
}

func mix(a, b int, t float64) int {
	return a + int(t*float64(b-a))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// ProgressBar renders a bar for a fraction in [0, 1], colored by level.
func (s styles) ProgressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	filled = max(0, min(width, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return s.level(frac).Render(bar)
}

// Sparkline maps signed values in [-limit, limit] to block glyphs.
func (s styles) Sparkline(values []float64, limit float64) string {
	if len(values) == 0 || limit <= 0 {
		return ""
	}
	glyphs := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	var out strings.Builder
	for _, v := range values {
		norm := (v/limit + 1) / 2
		idx := int(norm * float64(len(glyphs)-1))
		idx = max(0, min(len(glyphs)-1, idx))
		out.WriteString(s.level(absFloat(v) / limit).Render(string(glyphs[idx])))
	}
	return out.String()
}

func (s styles) level(frac float64) lipgloss.Style {
	switch {
	case frac > 0.7:
		return s.high
	case frac > 0.3:
		return s.mid
	default:
		return s.low
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
