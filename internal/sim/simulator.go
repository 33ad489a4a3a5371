package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/foldwall/internal/input"
	"github.com/san-kum/foldwall/internal/logger"
	"github.com/san-kum/foldwall/internal/wall"
)

// Simulator drives a wall with a pointer source at a fixed frame rate.
type Simulator struct {
	wall      *wall.Wall
	source    input.Source
	metrics   []Metric
	observers []Observer
}

func New(w *wall.Wall, src input.Source) *Simulator {
	return &Simulator{
		wall:      w,
		source:    src,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) Wall() *wall.Wall       { return s.wall }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	frames := cfg.Frames()
	every := cfg.RecordEvery
	if every < 1 {
		every = 1
	}
	result := &Result{
		Config:  s.wall.Config(),
		Times:   make([]float64, 0, frames/every+1),
		Inputs:  make([]wall.InputSample, 0, frames/every+1),
		States:  make([][]wall.StripState, 0, frames/every+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.wall.SetWorkers(cfg.Workers)
	clock := input.NewFixedClock(s.source, cfg.FPS)
	states := make([]wall.StripState, 0, s.wall.Len())

	logger.Log.Debug("run started",
		zap.Stringer("wall", s.wall.Config()),
		zap.Int("frames", frames),
		zap.Int("workers", cfg.Workers))

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		in := clock.Next()
		s.wall.Tick(in)
		states = s.wall.States(states)

		if cfg.ValidateState {
			if idx := firstInvalid(states); idx >= 0 {
				err := SimError{Time: in.Elapsed, Frame: i, Strip: idx, Wrapped: ErrInvalidState}
				result.Errors = append(result.Errors, err)
				logger.Log.Warn("invalid strip state", zap.Error(err))
				break
			}
		}

		f := Frame{Index: i, Input: in, Config: s.wall.Config(), Layouts: s.wall.Layouts(), States: states}
		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(f)
		}

		result.FramesTaken++
		if i%every == 0 || i == frames-1 {
			snap := make([]wall.StripState, len(states))
			copy(snap, states)
			result.States = append(result.States, snap)
			result.Times = append(result.Times, in.Elapsed)
			result.Inputs = append(result.Inputs, in)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	logger.Log.Debug("run finished", zap.Int("frames", result.FramesTaken))
	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Frames() == 0 {
		return ErrNoFrames
	}
	if s.source == nil {
		return fmt.Errorf("no pointer source")
	}
	return nil
}

// RunWithCallback ticks until the duration elapses, the context is
// canceled, or callback returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	s.wall.SetWorkers(cfg.Workers)
	clock := input.NewFixedClock(s.source, cfg.FPS)
	var states []wall.StripState

	for i := 0; i < cfg.Frames(); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in := clock.Next()
		s.wall.Tick(in)
		states = s.wall.States(states)

		if cfg.ValidateState {
			if idx := firstInvalid(states); idx >= 0 {
				return SimError{Time: in.Elapsed, Frame: i, Strip: idx, Wrapped: ErrInvalidState}
			}
		}

		if !callback(Frame{Index: i, Input: in, Config: s.wall.Config(), Layouts: s.wall.Layouts(), States: states}) {
			return nil
		}
	}

	return nil
}

func firstInvalid(states []wall.StripState) int {
	for i, st := range states {
		if !st.IsValid() {
			return i
		}
	}
	return -1
}
