package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/foldwall/internal/wall"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	w, err := wall.New(wall.Config{StripCount: 8, Width: 8, Height: 4.5, MaxFoldAngle: math.Pi / 3})
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(w, 60, "test", "cyberpunk")
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = send(m, TickMsg(time.Now()))
	}
	return m
}

func TestModel_TickAdvancesWall(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("right"))
	m = send(m, key("right"))
	m = tick(m, 120)

	if math.Abs(m.Elapsed()-2) > 1e-9 {
		t.Errorf("expected 2s elapsed, got %f", m.Elapsed())
	}
	if m.wall.Frames() != 120 {
		t.Errorf("expected 120 wall frames, got %d", m.wall.Frames())
	}
	if got := m.wall.State(0).RotationY; got <= 0 {
		t.Errorf("strip 0 should fold positive with pointer right, got %f", got)
	}
	if got := m.wall.State(1).RotationY; got >= 0 {
		t.Errorf("strip 1 should fold negative, got %f", got)
	}
}

func TestModel_Pause(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key(" "))
	if m.Running() {
		t.Fatal("space should pause")
	}
	m = tick(m, 10)
	if m.wall.Frames() != 0 {
		t.Errorf("paused model ticked %d frames", m.wall.Frames())
	}
	m = send(m, key(" "))
	m = tick(m, 1)
	if m.wall.Frames() != 1 {
		t.Errorf("resumed model should tick")
	}
}

func TestModel_Reset(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("right"))
	m = tick(m, 30)
	m = send(m, key("r"))

	if m.Elapsed() != 0 {
		t.Errorf("reset should zero time, got %f", m.Elapsed())
	}
	for i := 0; i < m.wall.Len(); i++ {
		if m.wall.State(i) != (wall.StripState{}) {
			t.Errorf("strip %d not reset: %+v", i, m.wall.State(i))
		}
	}
	if x, y := m.Target(); x != 0 || y != 0 {
		t.Errorf("reset should center the target, got (%f, %f)", x, y)
	}
}

func TestModel_MouseSetsTarget(t *testing.T) {
	m := newTestModel(t)
	cols, rows := m.canvas.Width, m.canvas.Height

	m = send(m, tea.MouseMsg{X: canvasOriginX + cols - 1, Y: canvasOriginY, Action: tea.MouseActionMotion})
	x, y := m.Target()
	if math.Abs(x-(1-1/float64(cols))) > 1e-9 {
		t.Errorf("right edge should map near +1, got %f", x)
	}
	if math.Abs(y-(1-1/float64(rows))) > 1e-9 {
		t.Errorf("top row should map near +1, got %f", y)
	}

	m = send(m, tea.MouseMsg{X: 500, Y: 500, Action: tea.MouseActionMotion})
	if x, y := m.Target(); x != 1 || y != -1 {
		t.Errorf("off-canvas mouse should clamp, got (%f, %f)", x, y)
	}
}

func TestModel_ThemeCycles(t *testing.T) {
	m := newTestModel(t)
	seen := map[string]bool{}
	for range Themes {
		seen[m.Theme().Name] = true
		m = send(m, key("t"))
	}
	if len(seen) != len(Themes) {
		t.Errorf("expected %d themes, saw %d", len(Themes), len(seen))
	}
	if m.Theme().Name != "cyberpunk" {
		t.Errorf("theme should wrap around, got %s", m.Theme().Name)
	}
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 10, Height: 4})
	if m.canvas.Width != minCols || m.canvas.Height != minRows {
		t.Errorf("canvas should not shrink below minimum, got %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := newTestModel(t).Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_View(t *testing.T) {
	m := tick(newTestModel(t), 5)
	view := m.View()
	for _, want := range []string{"Compression", "Pointer", "Seam", "Folds"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = send(m, key("?"))
	if !strings.Contains(m.View(), "nudge the pointer") {
		t.Error("help overlay not shown")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	if !c.IsSet(0, 0) || !c.IsSet(7, 7) || !c.IsSet(3, 3) {
		t.Error("diagonal not drawn")
	}
	c.Unset(3, 3)
	if c.IsSet(3, 3) {
		t.Error("unset failed")
	}
	c.Set(-1, 100)
	if strings.Count(c.String(), "\n") != 2 {
		t.Error("expected two rows")
	}
}

func TestStripCorners_Flat(t *testing.T) {
	s := wall.Strip{Width: 2, Height: 4}
	s.PositionX = 3
	c := StripCorners(s)
	want := [4]Vec3{{2, -2, 0}, {4, -2, 0}, {4, 2, 0}, {2, 2, 0}}
	for i := range c {
		if c[i].Sub(want[i]).Length() > 1e-12 {
			t.Errorf("corner %d = %+v, want %+v", i, c[i], want[i])
		}
	}
}

func TestStripCorners_Rotated(t *testing.T) {
	s := wall.Strip{Width: 2, Height: 2}
	s.RotationY = math.Pi / 2
	c := StripCorners(s)
	// A quarter turn about Y swings the right edge to -Z.
	if math.Abs(c[1].X) > 1e-12 || math.Abs(c[1].Z+1) > 1e-12 {
		t.Errorf("right corner = %+v", c[1])
	}
}

func TestRender3D_DrawsWall(t *testing.T) {
	w, _ := wall.New(wall.DefaultConfig())
	c := NewCanvas(40, 12)
	cam := NewCamera()
	cam.Fit(8, 80, 48)
	Render3D(c, WallWireframe(nil, w.Strips()), cam)

	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 }) {
		t.Error("nothing drawn")
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("empty text should render empty")
	}
	if r, g, b := parseHex("#12ab3c"); r != 0x12 || g != 0xab || b != 0x3c {
		t.Errorf("parseHex = %d %d %d", r, g, b)
	}
	if r, _, _ := parseHex("bogus"); r != 255 {
		t.Error("bad hex should fall back to white")
	}
}

func TestModel_LagSettles(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("right"))
	m = send(m, key("right"))
	m = tick(m, 5)
	early := m.Lag()
	if early <= 0 {
		t.Fatalf("moving pointer should leave the wall lagging, got %f", early)
	}

	m = tick(m, 600)
	if m.Lag() >= early || m.Lag() > 0.02 {
		t.Errorf("lag should settle: early %f, late %f", early, m.Lag())
	}

	m = send(m, key("r"))
	if m.Lag() != 0 {
		t.Errorf("reset should clear lag, got %f", m.Lag())
	}
}

func TestModel_Restrip(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("right"))
	m = tick(m, 30)

	m = send(m, key("]"))
	if m.wall.Len() != 9 {
		t.Fatalf("] should add a strip, got %d", m.wall.Len())
	}
	for i := 0; i < m.wall.Len(); i++ {
		if m.wall.State(i) != (wall.StripState{}) {
			t.Errorf("strip %d should start flat", i)
		}
	}
	if len(m.wall.Layouts()) != 9 || m.wall.Config().StripCount != 9 {
		t.Errorf("layouts not regenerated: %d", len(m.wall.Layouts()))
	}

	m = tick(m, 1)
	if len(m.states) != 9 {
		t.Errorf("tracked states should follow the new count, got %d", len(m.states))
	}

	for i := 0; i < 20; i++ {
		m = send(m, key("["))
	}
	if m.wall.Len() != 1 {
		t.Errorf("strip count should stop at 1, got %d", m.wall.Len())
	}
	_ = m.View()
}
