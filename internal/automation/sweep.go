package automation

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/experiment"
	"github.com/san-kum/foldwall/internal/logger"
	"github.com/san-kum/foldwall/internal/metrics"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/wall"
)

// SweepParams lists the wall parameters a sweep can vary.
var SweepParams = []string{"height", "max_fold_angle", "strips", "width"}

// ApplyParam sets one named wall parameter on cfg.
func ApplyParam(cfg *config.Config, name string, v float64) error {
	switch name {
	case "max_fold_angle":
		cfg.Wall.MaxFoldAngle = v
	case "strips":
		cfg.Wall.Strips = int(math.Round(v))
	case "width":
		cfg.Wall.Width = v
	case "height":
		cfg.Wall.Height = v
	default:
		return fmt.Errorf("unknown sweep parameter: %s", name)
	}
	return nil
}

// ParameterSweep varies one wall parameter over an inclusive range with
// everything else taken from Base.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

type SweepResult struct {
	ParamValue    float64
	SeamGap       float64
	FoldAmplitude float64
	Metrics       map[string]float64
}

// Values returns the parameter value of every sweep step.
func (s *ParameterSweep) Values() []float64 {
	if s.NumSteps <= 1 {
		return []float64{s.ParamMin}
	}
	step := (s.ParamMax - s.ParamMin) / float64(s.NumSteps-1)
	out := make([]float64, s.NumSteps)
	for i := range out {
		out[i] = s.ParamMin + float64(i)*step
	}
	return out
}

// RunSweep runs every sweep point concurrently as one ensemble.
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.Base == nil {
		sweep.Base = config.DefaultConfig()
	}
	if registry == nil {
		registry = experiment.NewRegistry()
	}

	values := sweep.Values()
	configs := make([]wall.Config, len(values))
	for i, v := range values {
		cfg := *sweep.Base
		if err := ApplyParam(&cfg, sweep.ParamName, v); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sweep.ParamName, v, err)
		}
		configs[i] = cfg.WallConfig()
	}

	src, err := registry.GetSource(sweep.Base.Run.Pointer)
	if err != nil {
		return nil, err
	}

	ens := sim.NewEnsemble(configs, src, metrics.Default)
	runs, err := ens.Run(ctx, sweep.Base.SimConfig())
	if err != nil {
		return nil, err
	}

	log := logger.Named("sweep")
	results := make([]SweepResult, len(runs))
	for i, r := range runs {
		results[i] = SweepResult{
			ParamValue:    values[i],
			SeamGap:       r.Metrics["seam_gap"],
			FoldAmplitude: r.Metrics["fold_amplitude"],
			Metrics:       r.Metrics,
		}
		log.Debug("sweep point",
			zap.String("param", sweep.ParamName),
			zap.Float64("value", values[i]),
			zap.Float64("seam_gap", results[i].SeamGap))
	}

	return results, nil
}
