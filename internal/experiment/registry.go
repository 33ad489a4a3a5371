package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/input"
	"github.com/san-kum/foldwall/internal/metrics"
	"github.com/san-kum/foldwall/internal/sim"
)

type Registry struct {
	sources map[string]func(config.PointerConfig) (input.Source, error)
	metrics map[string]func() sim.Metric
	sets    map[string][]string
}

func NewRegistry() *Registry {
	r := &Registry{
		sources: make(map[string]func(config.PointerConfig) (input.Source, error)),
		metrics: make(map[string]func() sim.Metric),
		sets:    make(map[string][]string),
	}

	r.sources["static"] = func(p config.PointerConfig) (input.Source, error) {
		return input.Static{X: p.X, Y: p.Y}, nil
	}
	r.sources["sweep"] = func(p config.PointerConfig) (input.Source, error) {
		return input.Sweep{Amplitude: p.Amplitude, Period: p.Period, Y: p.Y}, nil
	}
	r.sources["orbit"] = func(p config.PointerConfig) (input.Source, error) {
		return input.Orbit{Radius: p.Radius, Period: p.Period}, nil
	}
	r.sources["keyframes"] = func(p config.PointerConfig) (input.Source, error) {
		return input.NewKeyframes(p.Keyframes, p.Loop)
	}

	r.metrics["seam_gap"] = func() sim.Metric { return metrics.NewSeamGap() }
	r.metrics["fold_amplitude"] = func() sim.Metric { return metrics.NewFoldAmplitude() }
	r.metrics["depth_spread"] = func() sim.Metric { return metrics.NewDepthSpread() }
	r.metrics["tracking_error"] = func() sim.Metric { return metrics.NewTrackingError() }
	r.metrics["alternation"] = func() sim.Metric { return metrics.NewAlternation() }

	r.sets["all"] = []string{"seam_gap", "fold_amplitude", "depth_spread", "tracking_error", "alternation"}
	r.sets["geometry"] = []string{"seam_gap", "depth_spread"}
	r.sets["motion"] = []string{"fold_amplitude", "tracking_error", "alternation"}

	return r
}

// GetSource builds the pointer source named by p.Mode.
func (r *Registry) GetSource(p config.PointerConfig) (input.Source, error) {
	fn, ok := r.sources[p.Mode]
	if !ok {
		return nil, fmt.Errorf("unknown pointer source: %s", p.Mode)
	}
	return fn(p)
}

func (r *Registry) GetMetric(name string) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

// MetricSet returns fresh instances of every metric in the named set.
func (r *Registry) MetricSet(name string) ([]sim.Metric, error) {
	names, ok := r.sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric set: %s", name)
	}
	out := make([]sim.Metric, 0, len(names))
	for _, n := range names {
		m, err := r.GetMetric(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *Registry) ListSources() []string    { return sortedKeys(r.sources) }
func (r *Registry) ListMetrics() []string    { return sortedKeys(r.metrics) }
func (r *Registry) ListMetricSets() []string { return sortedKeys(r.sets) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
