package experiment

import (
	"context"
	"slices"
	"testing"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/input"
)

func TestRegistry_SourcesMatchConfigModes(t *testing.T) {
	r := NewRegistry()
	if !slices.Equal(r.ListSources(), config.PointerModes) {
		t.Errorf("registry sources %v differ from config modes %v", r.ListSources(), config.PointerModes)
	}
}

func TestRegistry_GetSource(t *testing.T) {
	r := NewRegistry()

	src, err := r.GetSource(config.PointerConfig{Mode: "static", X: 0.5, Y: -0.5})
	if err != nil {
		t.Fatal(err)
	}
	if x, y := src.Pointer(3); x != 0.5 || y != -0.5 {
		t.Errorf("static pointer = (%f, %f)", x, y)
	}

	src, err = r.GetSource(config.PointerConfig{Mode: "keyframes", Keyframes: []input.Keyframe{{T: 0, X: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := src.Pointer(10); x != 1 {
		t.Errorf("keyframe pointer x = %f, want 1", x)
	}

	if _, err := r.GetSource(config.PointerConfig{Mode: "keyframes"}); err == nil {
		t.Error("expected error for empty keyframes")
	}
	if _, err := r.GetSource(config.PointerConfig{Mode: "gamepad"}); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestRegistry_MetricSets(t *testing.T) {
	r := NewRegistry()

	for _, set := range r.ListMetricSets() {
		ms, err := r.MetricSet(set)
		if err != nil {
			t.Fatalf("set %s: %v", set, err)
		}
		if len(ms) == 0 {
			t.Errorf("set %s is empty", set)
		}
	}

	all, _ := r.MetricSet("all")
	if len(all) != len(r.ListMetrics()) {
		t.Errorf("set all has %d metrics, registry has %d", len(all), len(r.ListMetrics()))
	}
	if _, err := r.MetricSet("nope"); err == nil {
		t.Error("expected error for unknown set")
	}
}

func TestExperiment_Run(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Wall.Strips = 8
	cfg.Run.Duration = 1

	exp := New(cfg, nil)
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
	if err := exp.Setup("all"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.FramesTaken != 60 {
		t.Errorf("expected 60 frames, got %d", result.FramesTaken)
	}
	for _, name := range []string{"seam_gap", "fold_amplitude", "alternation"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if exp.GetSimulator().Wall().Len() != 8 {
		t.Errorf("expected 8 strips")
	}
}

func TestExperiment_SetupRejectsInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Wall.Strips = 0
	if err := New(cfg, nil).Setup("all"); err == nil {
		t.Error("expected error for zero strips")
	}

	if err := New(config.DefaultConfig(), nil).Setup("bogus"); err == nil {
		t.Error("expected error for unknown metric set")
	}
}
