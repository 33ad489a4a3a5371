package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

// Experiment binds a configuration, its pointer source and a metric set
// to one simulator.
type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	simulator *sim.Simulator
}

func New(cfg *config.Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry}
}

func (e *Experiment) Setup(metricSet string) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	w, err := wall.New(e.cfg.WallConfig())
	if err != nil {
		return err
	}
	src, err := e.registry.GetSource(e.cfg.Run.Pointer)
	if err != nil {
		return err
	}
	ms, err := e.registry.MetricSet(metricSet)
	if err != nil {
		return err
	}

	e.simulator = sim.New(w, src)
	for _, m := range ms {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.cfg.SimConfig())
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config { return e.cfg }
