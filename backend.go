package kterm

// Backend is the video back-end capability set (VBE) the engine renders
// through. It owns the physical framebuffer and cursor hardware; the engine
// never touches either directly, only through these five operations.
// Implementations are assumed synchronous and side-effect-limited to the
// framebuffer and cursor — the engine treats the back-end API as total and
// reports no back-end failures.
//
// Grounded on the teacher's provider-interface idiom (providers.go:
// BellProvider, TitleProvider, …), adapted to the source's video_interface
// struct of function pointers (kernel/char/term.c).
type Backend interface {
	// SetCharAt places a single glyph/attribute pair at (row, col).
	SetCharAt(glyph byte, attr Attribute, row, col int)
	// ClearRow overwrites an entire row with space cells of attr.
	ClearRow(row int, attr Attribute)
	// MoveCursor repositions the hardware cursor.
	MoveCursor(row, col int)
	// EnableCursor makes the hardware cursor visible.
	EnableCursor()
	// DisableCursor hides the hardware cursor.
	DisableCursor()
}

// NoopBackend discards every call. Useful when only the engine's own state
// (scrollback, cursor, color) matters and no rendering is required.
type NoopBackend struct{}

func (NoopBackend) SetCharAt(glyph byte, attr Attribute, row, col int) {}
func (NoopBackend) ClearRow(row int, attr Attribute)                  {}
func (NoopBackend) MoveCursor(row, col int)                           {}
func (NoopBackend) EnableCursor()                                     {}
func (NoopBackend) DisableCursor()                                    {}

var _ Backend = NoopBackend{}

// backendCall records one invocation made against a MemoryBackend, in the
// order it was received.
type backendCall struct {
	op       string
	glyph    byte
	attr     Attribute
	row, col int
	hasGlyph bool
}

// MemoryBackend is a recording Backend double: it maintains its own
// rows×cols grid (so assertions can read back what was drawn) and keeps a
// call log (so assertions can check ordering and cursor visibility). It is
// the engine's test double, grounded on the teacher's Noop* pattern
// extended with capture, the same relationship NoopRecording has to a real
// RecordingProvider (providers.go).
type MemoryBackend struct {
	rows, cols int
	grid       []Cell
	cursorRow  int
	cursorCol  int
	cursorOn   bool
	calls      []backendCall
}

// NewMemoryBackend creates a MemoryBackend sized rows×cols, every cell the
// zero Cell (glyph 0, zero Attribute).
func NewMemoryBackend(rows, cols int) *MemoryBackend {
	return &MemoryBackend{
		rows: rows,
		cols: cols,
		grid: make([]Cell, rows*cols),
	}
}

func (m *MemoryBackend) SetCharAt(glyph byte, attr Attribute, row, col int) {
	m.grid[row*m.cols+col] = NewCell(glyph, attr)
	m.calls = append(m.calls, backendCall{op: "SetCharAt", glyph: glyph, attr: attr, row: row, col: col, hasGlyph: true})
}

func (m *MemoryBackend) ClearRow(row int, attr Attribute) {
	blank := blankCell(attr)
	for col := 0; col < m.cols; col++ {
		m.grid[row*m.cols+col] = blank
	}
	m.calls = append(m.calls, backendCall{op: "ClearRow", attr: attr, row: row})
}

func (m *MemoryBackend) MoveCursor(row, col int) {
	m.cursorRow, m.cursorCol = row, col
	m.calls = append(m.calls, backendCall{op: "MoveCursor", row: row, col: col})
}

func (m *MemoryBackend) EnableCursor() {
	m.cursorOn = true
	m.calls = append(m.calls, backendCall{op: "EnableCursor"})
}

func (m *MemoryBackend) DisableCursor() {
	m.cursorOn = false
	m.calls = append(m.calls, backendCall{op: "DisableCursor"})
}

var _ Backend = (*MemoryBackend)(nil)

// charAt returns the cell currently held at (row, col). ok is false only
// when (row, col) lies outside the grid; it does not record whether
// SetCharAt or ClearRow ever touched the cell, and an untouched cell reads
// as the zero Cell.
func (m *MemoryBackend) charAt(row, col int) (Cell, bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, false
	}
	return m.grid[row*m.cols+col], true
}

// clearedRow reports whether ClearRow(row, attr) appears anywhere in the
// call log.
func (m *MemoryBackend) clearedRow(row int, attr Attribute) bool {
	for _, c := range m.calls {
		if c.op == "ClearRow" && c.row == row && c.attr == attr {
			return true
		}
	}
	return false
}

// cursorVisible reports the cursor's last enable/disable state.
func (m *MemoryBackend) cursorVisible() bool {
	return m.cursorOn
}

// cursorPosition returns the last position MoveCursor was called with.
func (m *MemoryBackend) cursorPosition() (int, int) {
	return m.cursorRow, m.cursorCol
}
