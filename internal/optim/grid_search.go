package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/experiment"
)

// ApplyFunc sets a named parameter on a configuration.
type ApplyFunc func(cfg *config.Config, name string, v float64) error

// GridSearch tries every combination of parameter values and keeps the
// one with the lowest metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	apply      ApplyFunc
}

func NewGridSearch(params []string, ranges [][]float64, apply ApplyFunc) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, apply: apply}
}

type Candidate struct {
	Params map[string]float64
	Value  float64
}

// Search returns the best combination for metricName. With maximize set
// the highest value wins. Combinations that fail to validate are skipped.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string, maximize bool) (*Candidate, int, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("grid search: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	registry := experiment.NewRegistry()
	var best *Candidate
	tried := 0

	sign := 1.0
	if maximize {
		sign = -1
	}

	err := g.walk(0, map[string]float64{}, func(params map[string]float64) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		cfg := *base
		for k, v := range params {
			if err := g.apply(&cfg, k, v); err != nil {
				return err
			}
		}
		exp := experiment.New(&cfg, registry)
		if err := exp.Setup("all"); err != nil {
			return nil
		}
		result, err := exp.Run(ctx)
		if err != nil {
			return err
		}
		tried++

		val, ok := result.Metrics[metricName]
		if !ok {
			return fmt.Errorf("unknown metric: %s", metricName)
		}
		if best == nil || sign*val < sign*best.Value || math.IsNaN(best.Value) {
			best = &Candidate{Params: params, Value: val}
		}
		return nil
	})
	if err != nil {
		return nil, tried, err
	}
	if best == nil {
		return nil, tried, fmt.Errorf("grid search: no valid combination")
	}
	return best, tried, nil
}

func (g *GridSearch) walk(depth int, current map[string]float64, visit func(map[string]float64) error) error {
	if depth == len(g.paramNames) {
		return visit(current)
	}

	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[g.paramNames[depth]] = val
		if err := g.walk(depth+1, next, visit); err != nil {
			return err
		}
	}
	return nil
}
