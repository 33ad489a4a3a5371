package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/foldwall/internal/input"
	"github.com/san-kum/foldwall/internal/metrics"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

const (
	defaultCols     = 60
	defaultRows     = 20
	minCols         = 20
	minRows         = 8
	historyCapacity = 240
	nudgeStep       = 0.1
	followFrequency = 6.0
	followDamping   = 0.8
	sparkWidth      = 40
	maxLiveStrips   = 256
)

type TickMsg time.Time

// Model is the interactive terminal view of one wall. The pointer follows
// the mouse or arrow keys through a damped spring.
type Model struct {
	wall        *wall.Wall
	follower    *input.Follower
	name        string
	fps         int
	dt          float64
	elapsed     float64
	running     bool
	showHelp    bool
	canvas      *Canvas
	camera      *Camera
	frame       *Wireframe
	theme       Theme
	styles      styles
	compression []float64
	states      []wall.StripState
	seam        float64
	lag         float64
}

func NewModel(w *wall.Wall, fps int, name, theme string) Model {
	if fps <= 0 {
		fps = 60
	}
	th := GetTheme(theme)
	m := Model{
		wall:        w,
		follower:    input.NewFollower(fps, followFrequency, followDamping),
		name:        name,
		fps:         fps,
		dt:          1 / float64(fps),
		running:     true,
		camera:      NewCamera(),
		frame:       NewWireframe(),
		theme:       th,
		styles:      newStyles(th),
		compression: make([]float64, 0, historyCapacity),
	}
	m.resize(defaultCols, defaultRows)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width-statsWidth-2*canvasOriginX-1, msg.Height-2*canvasOriginY)
	case tea.MouseMsg:
		m.pointAt(msg.X, msg.Y)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "c":
			m.follower.SetTarget(0, 0)
		case "left", "h":
			m.follower.Nudge(-nudgeStep, 0)
		case "right", "l":
			m.follower.Nudge(nudgeStep, 0)
		case "up", "k":
			m.follower.Nudge(0, nudgeStep)
		case "down", "j":
			m.follower.Nudge(0, -nudgeStep)
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "[":
			m.restrip(-1)
		case "]":
			m.restrip(1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// pointAt maps a terminal cell to pointer coordinates, +y up.
func (m *Model) pointAt(col, row int) {
	px := 2*(float64(col-canvasOriginX)+0.5)/float64(m.canvas.Width) - 1
	py := 1 - 2*(float64(row-canvasOriginY)+0.5)/float64(m.canvas.Height)
	m.follower.SetTarget(px, py)
}

func (m *Model) step() {
	px, py := m.follower.Step()
	m.elapsed += m.dt
	m.wall.Tick(wall.InputSample{PointerX: px, PointerY: py, Elapsed: m.elapsed, Delta: m.dt})

	m.compression = append(m.compression, wall.Compression(px))
	if len(m.compression) > historyCapacity {
		m.compression = m.compression[1:]
	}
	m.states = m.wall.States(m.states)
	m.seam = metrics.MaxSeam(sim.Frame{Config: m.wall.Config(), Layouts: m.wall.Layouts(), States: m.states})
	m.lag = m.meanLag()
}

// meanLag is the mean distance of every strip from its current target.
func (m *Model) meanLag() float64 {
	targets := m.wall.Targets(m.wall.LastInput())
	if len(targets) == 0 {
		return 0
	}
	sum := 0.0
	for i, tg := range targets {
		sum += metrics.Lag(tg, m.states[i])
	}
	return sum / float64(len(targets))
}

// restrip changes the strip count; the wall starts flat again.
func (m *Model) restrip(delta int) {
	cfg := m.wall.Config()
	cfg.StripCount = min(maxLiveStrips, max(1, cfg.StripCount+delta))
	if cfg.StripCount == m.wall.Len() {
		return
	}
	if err := m.wall.Reconfigure(cfg); err != nil {
		return
	}
	m.states = m.wall.States(m.states)
	m.seam = 0
	m.lag = 0
}

func (m *Model) reset() {
	m.wall.Reset()
	m.follower.Reset()
	m.elapsed = 0
	m.seam = 0
	m.lag = 0
	m.compression = m.compression[:0]
	m.states = m.wall.States(m.states)
}

func (m *Model) resize(cols, rows int) {
	m.canvas = NewCanvas(max(minCols, cols), max(minRows, rows))
	sw, sh := m.canvas.Dots()
	m.camera.Fit(m.wall.Config().Width, sw, sh)
}

func (m *Model) draw() {
	m.canvas.Clear()
	WallWireframe(m.frame, m.wall.Strips())
	Render3D(m.canvas, m.frame, m.camera)
}

// Target returns where the pointer is heading.
func (m Model) Target() (float64, float64) { return m.follower.Target() }

func (m Model) Elapsed() float64 { return m.elapsed }
func (m Model) Running() bool    { return m.running }
func (m Model) Theme() Theme     { return m.theme }
func (m Model) Lag() float64     { return m.lag }

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.styles.wire.Render(m.canvas.String()))

	st := m.styles
	cfg := m.wall.Config()
	in := m.wall.LastInput()
	comp := wall.Compression(in.PointerX)

	var s strings.Builder
	s.WriteString(GradientText("FOLDWALL", m.theme.Title, m.theme.Fade) + "  " + st.muted.Render(m.name) + "\n\n")
	if m.running {
		s.WriteString(st.low.Render("● RUNNING") + "\n\n")
	} else {
		s.WriteString(st.mid.Render("❚❚ PAUSED") + "\n\n")
	}

	if len(m.compression) > 1 {
		chart := asciigraph.Plot(m.compression,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Caption("Compression"))
		s.WriteString(st.wire.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + value + "\n")
	}
	row("Time", st.value.Render(fmt.Sprintf("%.2fs", m.elapsed)))
	row("Pointer", st.value.Render(fmt.Sprintf("%+.2f, %+.2f", in.PointerX, in.PointerY)))
	row("Squeeze", st.ProgressBar(comp, 20)+st.value.Render(fmt.Sprintf(" %3.0f%%", comp*100)))
	row("Max fold", st.value.Render(fmt.Sprintf("%.1f°", cfg.MaxFoldAngle*180/math.Pi)))
	row("Seam", st.value.Render(fmt.Sprintf("%.4f", m.seam)))
	row("Lag", st.value.Render(fmt.Sprintf("%.4f", m.lag)))
	row("Strips", st.value.Render(fmt.Sprintf("%d  %.2f wide", cfg.StripCount, cfg.StripWidth())))
	row("Theme", st.value.Render(m.theme.Name))

	s.WriteString("\n" + st.label.Render("Folds") + "\n")
	s.WriteString(st.Sparkline(m.foldProfile(), cfg.MaxFoldAngle+0.02) + "\n")

	s.WriteString("\n" + st.muted.Render("SP:Pause R:Reset C:Center Q:Quit\n←→↑↓/mouse:Pointer T:Theme ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpBox.Render(helpText) + "\n" + mainView
	}
	return mainView
}

// foldProfile samples strip rotations down to at most sparkWidth values.
func (m Model) foldProfile() []float64 {
	n := m.wall.Len()
	stride := (n + sparkWidth - 1) / sparkWidth
	out := make([]float64, 0, sparkWidth)
	for i := 0; i < n; i += stride {
		out = append(out, m.wall.State(i).RotationY)
	}
	return out
}

const helpText = `Space   pause / resume
R       reset wall and pointer
C       center the pointer
Mouse   move the pointer
Arrows  nudge the pointer (hjkl too)
T       cycle themes
[ ]     fewer / more strips
x/X y/Y rotate the camera
+/-     zoom
Q       quit`

// Run starts the live view full screen with mouse motion reporting.
func Run(w *wall.Wall, fps int, name, theme string) error {
	p := tea.NewProgram(NewModel(w, fps, name, theme), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
