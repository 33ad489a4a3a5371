package scene

import (
	"github.com/san-kum/foldwall/internal/texture"
	"github.com/san-kum/foldwall/internal/wall"
)

const (
	MinStrips = 1
	MaxStrips = 256
)

// Restrip changes the strip count by delta, clamped to [MinStrips,
// MaxStrips]. The wall gets fresh layouts and flat states and the sheet's
// UV views are rebuilt. It reports whether the count changed.
func Restrip(w *wall.Wall, sheet *texture.Sheet, delta int) (bool, error) {
	cfg := w.Config()
	n := min(MaxStrips, max(MinStrips, cfg.StripCount+delta))
	if n == cfg.StripCount {
		return false, nil
	}
	cfg.StripCount = n
	if err := w.Reconfigure(cfg); err != nil {
		return false, err
	}
	if sheet != nil {
		sheet.Rebuild(w.Layouts())
	}
	return true, nil
}
