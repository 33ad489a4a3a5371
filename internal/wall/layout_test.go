package wall

import (
	"errors"
	"math"
	"testing"
)

func TestGenerate_FourStrips(t *testing.T) {
	cfg := Config{StripCount: 4, Width: 8, Height: 4, MaxFoldAngle: 1}
	layouts := Generate(cfg)

	if cfg.StripWidth() != 2 {
		t.Fatalf("expected strip width 2, got %f", cfg.StripWidth())
	}
	if len(layouts) != 4 {
		t.Fatalf("expected 4 layouts, got %d", len(layouts))
	}

	centers := []float64{-3, -1, 1, 3}
	offsets := []float64{0, 0.25, 0.5, 0.75}
	for i, l := range layouts {
		if l.Index != i {
			t.Errorf("layout %d has index %d", i, l.Index)
		}
		if math.Abs(l.FlatCenterX-centers[i]) > 1e-12 {
			t.Errorf("strip %d: center %f, want %f", i, l.FlatCenterX, centers[i])
		}
		if math.Abs(l.TextureOffsetU-offsets[i]) > 1e-12 {
			t.Errorf("strip %d: offset %f, want %f", i, l.TextureOffsetU, offsets[i])
		}
		if l.TextureRepeatU != 0.25 {
			t.Errorf("strip %d: repeat %f, want 0.25", i, l.TextureRepeatU)
		}
		if l.Height != 4 {
			t.Errorf("strip %d: height %f, want 4", i, l.Height)
		}
	}
}

func TestGenerate_Tiling(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 24, 101, 1000} {
		cfg := Config{StripCount: n, Width: 9.3, Height: 2, MaxFoldAngle: 1}
		layouts := Generate(cfg)
		tol := 1e-9

		if math.Abs(layouts[0].Left()+cfg.Width/2) > tol {
			t.Errorf("n=%d: first strip starts at %f", n, layouts[0].Left())
		}
		if math.Abs(layouts[n-1].Right()-cfg.Width/2) > tol {
			t.Errorf("n=%d: last strip ends at %f", n, layouts[n-1].Right())
		}
		if layouts[0].TextureOffsetU != 0 {
			t.Errorf("n=%d: first offset %f", n, layouts[0].TextureOffsetU)
		}
		last := layouts[n-1]
		if math.Abs(last.TextureOffsetU+last.TextureRepeatU-1) > tol {
			t.Errorf("n=%d: last window ends at %f", n, last.TextureOffsetU+last.TextureRepeatU)
		}

		for i := 0; i < n-1; i++ {
			a, b := layouts[i], layouts[i+1]
			if math.Abs(a.Right()-b.Left()) > tol {
				t.Errorf("n=%d: gap between %d and %d: %g", n, i, i+1, b.Left()-a.Right())
			}
			if math.Abs(a.TextureOffsetU+a.TextureRepeatU-b.TextureOffsetU) > tol {
				t.Errorf("n=%d: uv gap between %d and %d", n, i, i+1)
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"default", DefaultConfig(), nil},
		{"fold pi", Config{StripCount: 1, Width: 1, Height: 1, MaxFoldAngle: math.Pi}, nil},
		{"zero strips", Config{StripCount: 0, Width: 1, Height: 1, MaxFoldAngle: 1}, ErrInvalidStripCount},
		{"negative strips", Config{StripCount: -3, Width: 1, Height: 1, MaxFoldAngle: 1}, ErrInvalidStripCount},
		{"zero width", Config{StripCount: 4, Width: 0, Height: 1, MaxFoldAngle: 1}, ErrInvalidDimensions},
		{"nan width", Config{StripCount: 4, Width: math.NaN(), Height: 1, MaxFoldAngle: 1}, ErrInvalidDimensions},
		{"negative height", Config{StripCount: 4, Width: 1, Height: -1, MaxFoldAngle: 1}, ErrInvalidDimensions},
		{"zero fold", Config{StripCount: 4, Width: 1, Height: 1, MaxFoldAngle: 0}, ErrInvalidFoldAngle},
		{"fold above pi", Config{StripCount: 4, Width: 1, Height: 1, MaxFoldAngle: math.Pi + 0.01}, ErrInvalidFoldAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
		})
	}
}
