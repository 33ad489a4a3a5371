package automation

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/experiment"
	"github.com/san-kum/foldwall/internal/logger"
	"github.com/san-kum/foldwall/internal/sim"
	"github.com/san-kum/foldwall/internal/storage"
)

// Scenario is a scripted sequence of wall runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (or the defaults) and overrides
// whatever it sets.
type ScenarioStep struct {
	Name      string                `yaml:"name"`
	Preset    string                `yaml:"preset"`
	Wall      *config.WallConfig    `yaml:"wall"`
	Pointer   *config.PointerConfig `yaml:"pointer"`
	Duration  float64               `yaml:"duration"`
	FPS       int                   `yaml:"fps"`
	MetricSet string                `yaml:"metrics"`
	SaveAs    string                `yaml:"save_as"`
}

type StepResult struct {
	Name   string
	RunID  string
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Config resolves the step into a full configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Wall != nil {
		cfg.Wall = *s.Wall
	}
	if s.Pointer != nil {
		cfg.Run.Pointer = *s.Pointer
	}
	if s.Duration > 0 {
		cfg.Run.Duration = s.Duration
	}
	if s.FPS > 0 {
		cfg.Run.FPS = s.FPS
	}
	return cfg, cfg.Validate()
}

// RunScenario executes every step in order. Steps with save_as are
// stored when store is non-nil.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, store *storage.Store) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	log := logger.Named("scenario")

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step%d", i+1)
		}
		log.Info("running step",
			zap.Int("step", i+1),
			zap.Int("of", len(scenario.Steps)),
			zap.String("name", name))

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		set := step.MetricSet
		if set == "" {
			set = "all"
		}
		exp := experiment.New(cfg, registry)
		if err := exp.Setup(set); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Name: name, Result: result}
		if step.SaveAs != "" && store != nil {
			sr.RunID, err = store.Save(step.SaveAs, cfg.Run.Pointer.Mode, cfg.SimConfig(), result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}
