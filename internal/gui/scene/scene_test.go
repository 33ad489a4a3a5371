package scene

import (
	"math"
	"testing"

	"github.com/san-kum/foldwall/internal/wall"
)

func testStrips(t *testing.T, cfg wall.Config) []wall.Strip {
	t.Helper()
	w, err := wall.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return w.Strips()
}

func TestViewport_FlatWallTiles(t *testing.T) {
	cfg := wall.Config{StripCount: 4, Width: 8, Height: 4, MaxFoldAngle: 1}
	strips := testStrips(t, cfg)
	for i := range strips {
		strips[i].PositionX = wall.Generate(cfg)[i].FlatCenterX
	}

	v := NewViewport(cfg, 1000, 500)
	// min(1000*0.9/8, 500*0.75/4) = min(112.5, 93.75)
	if v.PixelsPerUnit != 93.75 {
		t.Fatalf("ppu = %f", v.PixelsPerUnit)
	}

	ps := v.PlaceAll(strips, nil)
	for i := 0; i+1 < len(ps); i++ {
		right := ps[i].CenterX + ps[i].Width/2
		left := ps[i+1].CenterX - ps[i+1].Width/2
		if math.Abs(right-left) > 1e-9 {
			t.Errorf("gap between %d and %d: %f", i, i+1, left-right)
		}
	}
	if ps[0].Shade != 1 || !ps[0].Visible {
		t.Errorf("flat strip should be fully lit and visible: %+v", ps[0])
	}
}

func TestPlace_Foreshortening(t *testing.T) {
	cfg := wall.Config{StripCount: 2, Width: 4, Height: 2, MaxFoldAngle: math.Pi}
	v := NewViewport(cfg, 400, 400)

	s := wall.Strip{Index: 1, Width: 2, Height: 2}
	s.RotationY = math.Pi / 3
	p := v.Place(s)
	if math.Abs(p.Width-2*0.5*v.PixelsPerUnit) > 1e-9 {
		t.Errorf("width = %f", p.Width)
	}
	if p.Direction != -1 {
		t.Errorf("odd strip direction = %f", p.Direction)
	}

	s.RotationY = math.Pi / 2
	if v.Place(s).Visible {
		t.Error("edge-on strip should be invisible")
	}

	s.RotationY = 0
	s.PositionZ = 1
	near := v.Place(s)
	if near.Width <= 2*v.PixelsPerUnit {
		t.Error("a strip closer to the camera should look wider")
	}
}

func TestSortForPainting(t *testing.T) {
	ps := []Placement{{Index: 0, Depth: 0.5}, {Index: 1, Depth: -0.5}, {Index: 2, Depth: 0.5}, {Index: 3, Depth: 0}}
	SortForPainting(ps)
	want := []int{1, 3, 0, 2}
	for i, p := range ps {
		if p.Index != want[i] {
			t.Fatalf("order = %v, want %v", ps, want)
		}
	}
}

func TestShade(t *testing.T) {
	if Shade(0) != 1 {
		t.Error("facing strip should be fully lit")
	}
	if math.Abs(Shade(math.Pi/2)-minShade) > 1e-12 {
		t.Error("edge-on strip should be at minimum shade")
	}
	if Shade(-0.4) != Shade(0.4) {
		t.Error("shade should not depend on fold direction")
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		cx, cy int
		x, y   float64
	}{
		{400, 300, 0, 0},
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{-50, 900, -1, -1},
	}
	for _, tt := range tests {
		x, y := Pointer(tt.cx, tt.cy, 800, 600)
		if x != tt.x || y != tt.y {
			t.Errorf("Pointer(%d, %d) = (%f, %f), want (%f, %f)", tt.cx, tt.cy, x, y, tt.x, tt.y)
		}
	}
	if x, y := Pointer(1, 1, 0, 0); x != 0 || y != 0 {
		t.Error("zero window should give center")
	}
}

func TestSelection(t *testing.T) {
	s := NewSelection([]string{"a.png", "b.png", "c.png"})
	if !s.Choosing() {
		t.Fatal("should start choosing")
	}
	s.Prev()
	if s.Cursor() != 2 {
		t.Errorf("prev should wrap, cursor %d", s.Cursor())
	}
	s.Next()
	s.Next()
	if got := s.Choose(); got != 1 || s.Choosing() {
		t.Errorf("choose = %d, choosing %v", got, s.Choosing())
	}

	s.Reopen()
	if !s.Choosing() || s.Cursor() != 1 {
		t.Error("reopen should keep the cursor")
	}
	if s.Pick(5) {
		t.Error("out of range pick should fail")
	}
	if !s.Pick(2) || s.Chosen() != 2 {
		t.Error("pick 2 failed")
	}

	if s.RowAt(130, 100, 20) != 1 || s.RowAt(90, 100, 20) != -1 || s.RowAt(200, 100, 20) != -1 {
		t.Error("RowAt mismatch")
	}
}

func TestSelection_Empty(t *testing.T) {
	s := NewSelection(nil)
	if s.Choosing() {
		t.Error("nothing to choose")
	}
	if s.Choose() != -1 {
		t.Error("empty selection should choose the placeholder")
	}
	s.Reopen()
	if s.Choosing() {
		t.Error("empty selection cannot reopen")
	}
}
