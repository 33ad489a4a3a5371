package wall

// minParallelChunk keeps tiny walls on the calling goroutine.
const minParallelChunk = 64

// Wall owns the layout and smoothing state of every strip.
type Wall struct {
	cfg     Config
	layouts []StripLayout
	states  []StripState
	workers int
	frames  int
	last    InputSample
}

// New validates cfg and builds a flat wall.
func New(cfg Config) (*Wall, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Wall{
		cfg:     cfg,
		layouts: Generate(cfg),
		states:  make([]StripState, cfg.StripCount),
		workers: 1,
	}, nil
}

func (w *Wall) Config() Config { return w.cfg }
func (w *Wall) Len() int       { return len(w.layouts) }
func (w *Wall) Frames() int    { return w.frames }

// LastInput is the sanitized sample used by the most recent Tick.
func (w *Wall) LastInput() InputSample { return w.last }

// SetWorkers sets how many goroutines Tick may use. Values below 1 mean 1.
func (w *Wall) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	w.workers = n
}

// Layouts returns the flat strip layouts. The slice must not be modified.
func (w *Wall) Layouts() []StripLayout { return w.layouts }

// State returns a copy of strip i's smoothing state.
func (w *Wall) State(i int) StripState { return w.states[i] }

// States copies every strip state into dst, growing it if needed.
func (w *Wall) States(dst []StripState) []StripState {
	dst = append(dst[:0], w.states...)
	return dst
}

// Tick advances every strip by one frame using the same sample.
func (w *Wall) Tick(in InputSample) {
	in = in.Sanitize()
	w.last = in
	ParallelFor(len(w.states), minParallelChunk, w.workers, func(start, end int) {
		for i := start; i < end; i++ {
			Update(w.layouts[i], &w.states[i], in, w.cfg)
		}
	})
	w.frames++
}

// Targets reports each strip's instantaneous target for in.
func (w *Wall) Targets(in InputSample) []Target {
	targets := make([]Target, len(w.states))
	for i := range w.states {
		targets[i] = TargetFor(w.layouts[i], w.states[i], in, w.cfg)
	}
	return targets
}

// Strips returns the renderable view of every strip.
func (w *Wall) Strips() []Strip {
	out := make([]Strip, len(w.states))
	for i, l := range w.layouts {
		out[i] = Strip{
			Index:      l.Index,
			Width:      l.Width,
			Height:     l.Height,
			OffsetU:    l.TextureOffsetU,
			RepeatU:    l.TextureRepeatU,
			StripState: w.states[i],
		}
	}
	return out
}

// Reset discards all smoothing state; the wall is flat again.
func (w *Wall) Reset() {
	for i := range w.states {
		w.states[i] = StripState{}
	}
	w.frames = 0
	w.last = InputSample{}
}

// Reconfigure rebuilds layouts and state for a new configuration. On error
// the wall is left unchanged.
func (w *Wall) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.cfg = cfg
	w.layouts = Generate(cfg)
	w.states = make([]StripState, cfg.StripCount)
	w.frames = 0
	w.last = InputSample{}
	return nil
}
