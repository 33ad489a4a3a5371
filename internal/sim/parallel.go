package sim

import (
	"context"
	"sync"

	"github.com/san-kum/foldwall/internal/input"
	"github.com/san-kum/foldwall/internal/wall"
)

// Ensemble runs one independent wall per configuration concurrently, all
// driven by the same pointer source.
type Ensemble struct {
	configs []wall.Config
	source  input.Source
	metrics func() []Metric
}

// NewEnsemble builds an ensemble. metrics, if non-nil, is called once per
// member so no metric instance is shared between goroutines.
func NewEnsemble(configs []wall.Config, src input.Source, metrics func() []Metric) *Ensemble {
	return &Ensemble{configs: configs, source: src, metrics: metrics}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.configs))
	errs := make([]error, len(e.configs))

	var wg sync.WaitGroup
	for i := range e.configs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w, err := wall.New(e.configs[idx])
			if err != nil {
				errs[idx] = err
				return
			}
			s := New(w, e.source)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}
			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
