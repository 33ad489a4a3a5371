package scene

// Selection is the image picker shown before the wall.
type Selection struct {
	names    []string
	cursor   int
	chosen   int
	choosing bool
}

// NewSelection starts in picking mode. With no names there is nothing to
// pick and the placeholder is chosen straight away.
func NewSelection(names []string) *Selection {
	return &Selection{names: names, chosen: -1, choosing: len(names) > 0}
}

func (s *Selection) Names() []string { return s.names }
func (s *Selection) Cursor() int     { return s.cursor }
func (s *Selection) Choosing() bool  { return s.choosing }

// Chosen returns the picked index, or -1 for the placeholder.
func (s *Selection) Chosen() int { return s.chosen }

func (s *Selection) Next() {
	if len(s.names) > 0 {
		s.cursor = (s.cursor + 1) % len(s.names)
	}
}

func (s *Selection) Prev() {
	if len(s.names) > 0 {
		s.cursor = (s.cursor - 1 + len(s.names)) % len(s.names)
	}
}

// Choose picks the entry under the cursor and leaves picking mode.
func (s *Selection) Choose() int {
	if len(s.names) == 0 {
		s.chosen = -1
	} else {
		s.chosen = s.cursor
	}
	s.choosing = false
	return s.chosen
}

// Pick chooses entry i directly, as from a mouse click.
func (s *Selection) Pick(i int) bool {
	if i < 0 || i >= len(s.names) {
		return false
	}
	s.cursor = i
	s.Choose()
	return true
}

// Reopen returns to picking mode, keeping the cursor on the last choice.
func (s *Selection) Reopen() {
	if len(s.names) > 0 {
		s.choosing = true
	}
}

// RowAt returns the entry under y for a list starting at top with rows
// of rowHeight pixels, or -1.
func (s *Selection) RowAt(y, top, rowHeight int) int {
	if rowHeight <= 0 || y < top {
		return -1
	}
	i := (y - top) / rowHeight
	if i >= len(s.names) {
		return -1
	}
	return i
}
