package kterm

import "testing"

func newTestRenderer(rows, cols, bufferRows int) (*renderer, *scrollbackStore, *MemoryBackend, *BufferingSerialMirror) {
	backend := NewMemoryBackend(rows, cols)
	store := newScrollbackStore(rows, cols, bufferRows, backend)
	serial := NewBufferingSerialMirror(1024)
	r := newRenderer(rows, cols, store, backend, serial)
	r.moveCursor(0, 0)
	r.setColor(DefaultAttribute)
	for row := 0; row < rows; row++ {
		store.clearRow(row, DefaultAttribute)
	}
	return r, store, backend, serial
}

func writeString(r *renderer, s string) {
	for i := 0; i < len(s); i++ {
		r.writeChar(s[i], r.color)
	}
}

// S1 — plain line.
func TestRendererPlainLine(t *testing.T) {
	r, store, _, _ := newTestRenderer(25, 80, 250)
	writeString(r, "hi\n")

	if got := store.cellAt(store.scroll+0, 0).Glyph(); got != 'h' {
		t.Errorf("(0,0): got %q want 'h'", got)
	}
	if got := store.cellAt(store.scroll+0, 1).Glyph(); got != 'i' {
		t.Errorf("(0,1): got %q want 'i'", got)
	}
	if r.row != 1 || r.col != 0 {
		t.Errorf("expected cursor at (1,0), got (%d,%d)", r.row, r.col)
	}
	if store.maxScroll != 0 {
		t.Errorf("expected maxScroll 0, got %d", store.maxScroll)
	}
}

// S2 — wrap.
func TestRendererWrap(t *testing.T) {
	r, store, _, _ := newTestRenderer(25, 80, 250)
	for i := 0; i < 80; i++ {
		r.writeChar('x', r.color)
	}
	r.writeChar('y', r.color)

	for col := 0; col < 80; col++ {
		if got := store.cellAt(store.scroll+0, col).Glyph(); got != 'x' {
			t.Fatalf("row 0 col %d: got %q want 'x'", col, got)
		}
	}
	if got := store.cellAt(store.scroll+1, 0).Glyph(); got != 'y' {
		t.Errorf("(1,0): got %q want 'y'", got)
	}
	if r.row != 1 || r.col != 1 {
		t.Errorf("expected cursor at (1,1), got (%d,%d)", r.row, r.col)
	}
}

// S3 — overflow.
func TestRendererOverflow(t *testing.T) {
	r, store, _, _ := newTestRenderer(25, 80, 250)
	for i := 0; i < 25; i++ {
		r.writeChar('\n', r.color)
	}

	if store.maxScroll != 1 {
		t.Errorf("expected maxScroll 1, got %d", store.maxScroll)
	}
	top := store.cellAt(store.scroll+0, 0)
	if top.Glyph() != ' ' {
		t.Errorf("expected top visible row blank, got %q", top.Glyph())
	}
}

// S4 — scrollback retention.
func TestRendererScrollbackRetention(t *testing.T) {
	r, store, backend, _ := newTestRenderer(25, 80, 250)
	for i := 0; i < 30; i++ {
		r.writeChar('\n', r.color)
	}
	r.scrollUp(5)

	if backend.cursorVisible() {
		t.Error("expected cursor disabled while scrolled away from bottom")
	}
	// The first 24 newlines only move the cursor down to the last row; each
	// of the remaining 6 appends a history row.
	if store.maxScroll != 6 {
		t.Errorf("expected maxScroll 6, got %d", store.maxScroll)
	}
	if store.scroll != 1 {
		t.Errorf("expected scroll 1, got %d", store.scroll)
	}
}

// S5 — snap on write.
func TestRendererSnapOnWrite(t *testing.T) {
	r, store, backend, _ := newTestRenderer(25, 80, 250)
	for i := 0; i < 30; i++ {
		r.writeChar('\n', r.color)
	}
	r.scrollUp(5)

	r.writeChar('z', r.color)

	if store.scroll != 6 {
		t.Errorf("expected scroll snapped to 6, got %d", store.scroll)
	}
	if !backend.cursorVisible() {
		t.Error("expected cursor re-enabled after snap-to-bottom write")
	}
	wantRow, wantCol := 24, 1
	if r.row != wantRow || r.col != wantCol {
		t.Errorf("expected cursor at (%d,%d), got (%d,%d)", wantRow, wantCol, r.row, r.col)
	}
	got := store.cellAt(store.scroll+wantRow, 0)
	if got.Glyph() != 'z' {
		t.Errorf("expected 'z' at visible cursor position, got %q", got.Glyph())
	}
}

// S6 — backspace sequence.
func TestRendererBackspaceSequence(t *testing.T) {
	r, store, _, _ := newTestRenderer(25, 80, 250)
	writeString(r, "ab\b\bc")

	if got := store.cellAt(store.scroll+0, 0).Glyph(); got != 'c' {
		t.Errorf("(0,0): got %q want 'c'", got)
	}
	// The first '\b' erased 'b' at col 1; the second erased 'a' at col 0.
	if got := store.cellAt(store.scroll+0, 1).Glyph(); got != ' ' {
		t.Errorf("(0,1): got %q want ' '", got)
	}
	if r.row != 0 || r.col != 1 {
		t.Errorf("expected cursor at (0,1), got (%d,%d)", r.row, r.col)
	}
}

// Invariant #10 — backspace at col 0 is a no-op on both cursor and cell.
func TestRendererBackspaceAtColZero(t *testing.T) {
	r, store, _, _ := newTestRenderer(5, 10, 20)
	before := store.cellAt(store.scroll+0, 0)

	r.writeChar('\b', r.color)

	if r.col != 0 {
		t.Errorf("expected col unchanged at 0, got %d", r.col)
	}
	after := store.cellAt(store.scroll+0, 0)
	if after != before {
		t.Errorf("expected cell (0,0) untouched, before=%v after=%v", before, after)
	}
}

// Tab is silently dropped.
func TestRendererTabIsDropped(t *testing.T) {
	r, _, _, _ := newTestRenderer(5, 10, 20)
	r.writeChar('\t', r.color)

	if r.col != 0 {
		t.Errorf("expected tab to not advance column, got col=%d", r.col)
	}
}

// Invariant #3 — move_cursor clamps rather than panicking.
func TestRendererMoveCursorClamps(t *testing.T) {
	r, _, _, _ := newTestRenderer(25, 80, 250)

	r.moveCursor(-5, 999)
	if r.row != 0 || r.col != 79 {
		t.Errorf("expected clamp to (0,79), got (%d,%d)", r.row, r.col)
	}
}

// Invariant #8 — repeated identical set_color is indistinguishable from one.
func TestRendererSetColorIdempotent(t *testing.T) {
	r, _, _, _ := newTestRenderer(5, 10, 20)
	c := MakeAttribute(ColorRed, ColorBlack)

	r.setColor(c)
	r.setColor(c)

	if r.color != c {
		t.Errorf("expected color %v, got %v", c, r.color)
	}
}
