package kterm

// scrollbackStore is the ring-backed scrollback buffer (SBS). It is the
// single source of truth for every cell the engine has ever written: the
// visible screen is always re-derived from it, never tracked separately, so
// an arbitrary jump of the viewport repaints deterministically without an
// inverse mapping back to the ring.
//
// Grounded directly on the source's scroll_buffer/scroll/max_scroll globals
// (kernel/char/term.c) and styled after the teacher's Buffer type
// (buffer.go) for the bounds-checked accessor idiom, though the storage
// model itself is different: the source (and this port) use a single flat
// ring with a sliding viewport offset rather than a buffer that shifts rows
// in place.
type scrollbackStore struct {
	rows       int
	cols       int
	bufferRows int
	ring       []Cell

	scroll    int
	maxScroll int

	backend Backend
}

func newScrollbackStore(rows, cols, bufferRows int, backend Backend) *scrollbackStore {
	if bufferRows < 2*rows {
		bufferRows = 2 * rows
	}

	return &scrollbackStore{
		rows:       rows,
		cols:       cols,
		bufferRows: bufferRows,
		ring:       make([]Cell, bufferRows*cols),
		backend:    backend,
	}
}

// physicalRow maps a logical ring row to its slot in the backing array.
func (s *scrollbackStore) physicalRow(logicalRow int) int {
	return ((logicalRow % s.bufferRows) + s.bufferRows) % s.bufferRows
}

// cellAt returns the cell at the given logical ring row and column.
func (s *scrollbackStore) cellAt(logicalRow, col int) Cell {
	return s.ring[s.physicalRow(logicalRow)*s.cols+col]
}

// setCellAt stores a cell at the given logical ring row and column.
func (s *scrollbackStore) setCellAt(logicalRow, col int, c Cell) {
	s.ring[s.physicalRow(logicalRow)*s.cols+col] = c
}

// minScroll is the lowest viewport offset Invariant A allows: the ring only
// has bufferRows-rows extra rows of history beyond the visible window.
func (s *scrollbackStore) minScroll() int {
	extra := s.bufferRows - s.rows
	if s.maxScroll > extra {
		return s.maxScroll - extra
	}
	return 0
}

// clampScroll enforces Invariant A: max(maxScroll-(bufferRows-rows), 0) <=
// scroll <= maxScroll.
func (s *scrollbackStore) clampScroll(v int) int {
	if lo := s.minScroll(); v < lo {
		v = lo
	}
	if v > s.maxScroll {
		v = s.maxScroll
	}
	return v
}

// setScroll clamps v to Invariant A and, if it differs from the current
// viewport, repaints the entire visible window from the ring in row-major,
// top-to-bottom, left-to-right order.
func (s *scrollbackStore) setScroll(v int) {
	v = s.clampScroll(v)
	if v == s.scroll {
		return
	}

	s.scroll = v

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cellAt(s.scroll+row, col)
			s.backend.SetCharAt(c.Glyph(), c.Attr(), row, col)
		}
	}
}

// scrollUp moves the viewport toward older history by n rows, saturating at
// the minimum allowed by Invariant A (it never wraps below).
func (s *scrollbackStore) scrollUp(n int) {
	s.setScroll(s.scroll - n)
}

// scrollDown moves the viewport toward newer history by n rows, saturating
// at maxScroll.
func (s *scrollbackStore) scrollDown(n int) {
	s.setScroll(s.scroll + n)
}

// scrollToBottom snaps the viewport to maxScroll if it is not already
// there.
func (s *scrollbackStore) scrollToBottom() {
	if s.scroll != s.maxScroll {
		s.setScroll(s.maxScroll)
	}
}

// atBottom reports whether the viewport shows the most recently added row.
func (s *scrollbackStore) atBottom() bool {
	return s.scroll == s.maxScroll
}

// clearRow overwrites the ring row at the given visible row with cols
// space-cells of attr and asks the backend to clear the same visible row.
func (s *scrollbackStore) clearRow(visibleRow int, attr Attribute) {
	blank := blankCell(attr)
	for col := 0; col < s.cols; col++ {
		s.setCellAt(visibleRow+s.scroll, col, blank)
	}
	s.backend.ClearRow(visibleRow, attr)
}

// addRowAndScroll appends a new history row, scrolls the viewport to show
// it, and blanks it with attr. This is the only path by which new history
// enters the ring.
func (s *scrollbackStore) addRowAndScroll(attr Attribute) {
	s.maxScroll++
	s.setScroll(s.maxScroll)
	s.clearRow(s.rows-1, attr)
}
