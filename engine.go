package kterm

import "sync/atomic"

// DefaultRows, DefaultCols and DefaultBufferRows mirror the source's
// default geometry (kernel/char/term.c: TERM_WIDTH/TERM_HEIGHT, and its
// scrollback depth).
const (
	DefaultRows       = 25
	DefaultCols       = 80
	DefaultBufferRows = 250
)

// Engine is the terminal engine's public surface: it owns a scrollbackStore,
// a renderer, an actionRing, a Backend and a SerialMirror, and is the only
// type application code is expected to construct directly.
//
// Every mutating call funnels through the action ring, so Engine is safe to
// call from any number of goroutines, including ones that recursively call
// back into it — the same re-entrancy guarantee the source gives
// term_write when called from a nested IRQ handler.
type Engine struct {
	rows, cols int
	bufferRows int

	store    *scrollbackStore
	renderer *renderer
	ring     *actionRing
	backend  Backend
	serial   SerialMirror

	initialized atomic.Bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithGeometry sets the visible screen size. Defaults to DefaultRows x
// DefaultCols.
func WithGeometry(rows, cols int) Option {
	return func(e *Engine) {
		e.rows = rows
		e.cols = cols
	}
}

// WithBufferRows sets the scrollback ring's depth in rows. Defaults to
// DefaultBufferRows. Values less than twice the visible rows are rounded up,
// matching scrollbackStore's own floor.
func WithBufferRows(n int) Option {
	return func(e *Engine) {
		e.bufferRows = n
	}
}

// WithSerialMirror installs a SerialMirror every written byte is mirrored
// to. Defaults to NoopSerialMirror.
func WithSerialMirror(s SerialMirror) Option {
	return func(e *Engine) {
		e.serial = s
	}
}

// NewEngine constructs an Engine driving the given Backend. The engine is
// inert until Init is called: no action is processed, and the backend
// receives no calls, until then.
func NewEngine(backend Backend, opts ...Option) *Engine {
	e := &Engine{
		rows:       DefaultRows,
		cols:       DefaultCols,
		bufferRows: DefaultBufferRows,
		backend:    backend,
		serial:     NoopSerialMirror{},
		ring:       &actionRing{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Init brings the engine's scrollback and renderer to life: it builds the
// store sized to the configured geometry, clears every visible row with the
// default attribute, and makes the engine ready to accept actions. Init may
// be called exactly once; a second call panics, the same one-shot contract
// the source's term_init gives the boot-time terminal singleton.
func (e *Engine) Init() {
	if !e.initialized.CompareAndSwap(false, true) {
		panic("kterm: Engine.Init called more than once")
	}

	e.store = newScrollbackStore(e.rows, e.cols, e.bufferRows, e.backend)
	e.renderer = newRenderer(e.rows, e.cols, e.store, e.backend, e.serial)
	e.renderer.setColor(DefaultAttribute)

	for row := 0; row < e.rows; row++ {
		e.store.clearRow(row, DefaultAttribute)
	}
	e.renderer.moveCursor(0, 0)
	e.backend.EnableCursor()
}

// IsInitialized reports whether Init has been called.
func (e *Engine) IsInitialized() bool {
	return e.initialized.Load()
}

// dispatch submits a onto the action ring and, if the ring was empty, drains
// it to empty on the calling goroutine. This is the re-entrancy-safe
// producer/drain-owner election described on actionRing: any goroutine,
// including one already inside a drain loop further up its own call stack,
// can call dispatch and be sure exactly one goroutine is draining at a time.
func (e *Engine) dispatch(a Action) {
	written, wasEmpty := e.ring.submit(a)
	if !written {
		panic("kterm: action ring full — dropped action")
	}
	if !wasEmpty {
		return
	}

	// Each action stays in the ring until its handler has returned, so a
	// producer that submits meanwhile sees a non-empty ring and leaves the
	// action to this loop. Removing the action and checking for more happen
	// under one lock, so the next producer to find the ring empty only
	// becomes drain owner after this loop has finished.
	for {
		e.ring.mu.Lock()
		next := e.ring.buf[e.ring.head]
		e.ring.mu.Unlock()

		executeAction(e.renderer, next)

		e.ring.mu.Lock()
		e.ring.head = (e.ring.head + 1) % ringCapacity
		e.ring.count--
		more := e.ring.count > 0
		e.ring.mu.Unlock()
		if !more {
			return
		}
	}
}

// WriteChar writes ch using the engine's current color, exactly as if a
// byte arrived on the terminal's input stream. Only '\n', '\r', '\t' and
// '\b' receive special handling; every other byte is drawn as a glyph with
// wraparound at the right margin.
func (e *Engine) WriteChar(ch byte) {
	e.WriteCharAttr(ch, e.renderer.color)
}

// WriteCharAttr writes ch with an explicit attribute, without disturbing
// the engine's current color for subsequent WriteChar calls.
func (e *Engine) WriteCharAttr(ch byte, attr Attribute) {
	e.dispatch(newWriteCharAction(ch, attr))
}

// MoveCursor repositions the cursor. Coordinates outside the visible
// geometry are clamped, not rejected — clamping happens here, before the
// coordinates are packed into an Action, since the packed 12-bit argument
// width cannot hold a negative or very large value.
func (e *Engine) MoveCursor(row, col int) {
	row = clampInt(row, 0, e.rows-1)
	col = clampInt(col, 0, e.cols-1)
	e.dispatch(newMoveCursorAction(row, col))
}

// ScrollUp moves the viewport toward older history by n rows.
func (e *Engine) ScrollUp(n int) {
	e.dispatch(newScrollUpAction(uint32(n)))
}

// ScrollDown moves the viewport toward newer history by n rows.
func (e *Engine) ScrollDown(n int) {
	e.dispatch(newScrollDownAction(uint32(n)))
}

// SetColor changes the attribute used by subsequent WriteChar calls.
func (e *Engine) SetColor(c Attribute) {
	e.dispatch(newSetColorAction(c))
}
