package optim

import (
	"context"
	"testing"

	"github.com/san-kum/foldwall/internal/automation"
	"github.com/san-kum/foldwall/internal/config"
)

func baseConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Wall.Strips = 6
	cfg.Run.Duration = 1
	cfg.Run.Pointer = config.PointerConfig{Mode: "static", X: 1}
	return cfg
}

func TestGridSearch_Maximize(t *testing.T) {
	g := NewGridSearch(
		[]string{"max_fold_angle", "strips"},
		[][]float64{{0.3, 0.9, 0.6}, {4, 8}},
		automation.ApplyParam,
	)

	best, tried, err := g.Search(context.Background(), baseConfig(), "fold_amplitude", true)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if tried != 6 {
		t.Errorf("expected 6 runs, got %d", tried)
	}
	if best.Params["max_fold_angle"] != 0.9 {
		t.Errorf("largest fold should maximize amplitude, got %v", best.Params)
	}
}

func TestGridSearch_SkipsInvalid(t *testing.T) {
	g := NewGridSearch([]string{"strips"}, [][]float64{{0, 4}}, automation.ApplyParam)
	best, tried, err := g.Search(context.Background(), baseConfig(), "seam_gap", false)
	if err != nil {
		t.Fatal(err)
	}
	if tried != 1 || best.Params["strips"] != 4 {
		t.Errorf("invalid combination should be skipped: tried %d, best %v", tried, best.Params)
	}
}

func TestGridSearch_Errors(t *testing.T) {
	g := NewGridSearch([]string{"strips"}, nil, automation.ApplyParam)
	if _, _, err := g.Search(context.Background(), baseConfig(), "seam_gap", false); err == nil {
		t.Error("expected mismatch error")
	}

	g = NewGridSearch([]string{"strips"}, [][]float64{{4}}, automation.ApplyParam)
	if _, _, err := g.Search(context.Background(), baseConfig(), "nope", false); err == nil {
		t.Error("expected unknown metric error")
	}

	g = NewGridSearch([]string{"strips"}, [][]float64{{0}}, automation.ApplyParam)
	if _, _, err := g.Search(context.Background(), baseConfig(), "seam_gap", false); err == nil {
		t.Error("expected error when nothing validates")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g = NewGridSearch([]string{"strips"}, [][]float64{{4}}, automation.ApplyParam)
	if _, _, err := g.Search(ctx, baseConfig(), "seam_gap", false); err == nil {
		t.Error("expected context error")
	}
}
