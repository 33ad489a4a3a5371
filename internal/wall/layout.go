package wall

// Generate returns the flat layout of every strip, ordered by index.
// cfg must already be valid.
func Generate(cfg Config) []StripLayout {
	n := cfg.StripCount
	sw := cfg.StripWidth()
	layouts := make([]StripLayout, n)
	for i := 0; i < n; i++ {
		layouts[i] = StripLayout{
			Index:          i,
			FlatCenterX:    -cfg.Width/2 + float64(i)*sw + sw/2,
			Width:          sw,
			Height:         cfg.Height,
			TextureOffsetU: float64(i) / float64(n),
			TextureRepeatU: 1 / float64(n),
		}
	}
	return layouts
}
