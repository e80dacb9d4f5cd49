// Package kterm implements a text-mode terminal engine for a character-grid
// display: a circular scrollback buffer, a logical cursor, and a bounded
// single-consumer action queue that lets any goroutine — including one that
// reenters the engine while another goroutine's drain loop is running —
// submit writes, scrolls, cursor moves, and color changes without blocking
// or corrupting screen state.
//
// # Architecture
//
// The package is organized around these pieces:
//
//   - [Engine]: the public entry point. Owns the scrollback store, the
//     renderer, the action ring, and the injected [Backend].
//   - [Backend]: the capability set the engine renders through (place a
//     character, clear a row, move/enable/disable the hardware cursor).
//     Swapping backends — a real terminal, an in-memory double, an image
//     renderer — is a one-line change at construction.
//   - scrollbackStore: a ring of [Cell] sized BufferRows×Cols with a
//     sliding viewport (scroll / maxScroll).
//   - renderer: maps scroll and cell changes to [Backend] calls and tracks
//     the logical cursor (row, col, color).
//   - actionRing: a bounded, single-consumer queue of packed [Action]
//     records, safe for concurrent submission from any goroutine.
//
// # Quick start
//
//	backend := kterm.NewMemoryBackend(kterm.DefaultRows, kterm.DefaultCols)
//	e := kterm.NewEngine(backend)
//	e.Init()
//	e.WriteChar('h')
//	e.WriteChar('i')
//	e.WriteChar('\n')
//
// # Only \n \r \t \b are special
//
// The engine does not parse ANSI/VT escape sequences. '\n' moves to column
// 0 of the next row (scrolling if needed), '\r' moves to column 0, '\t' is
// dropped with no column advance, and '\b' erases the previous cell and
// steps the cursor back (unless already at column 0). Every other byte is
// written as a glyph and advances the cursor, wrapping to the next row at
// the last column.
//
// # Concurrency
//
// Every [Engine] method is safe to call from any goroutine, including
// concurrently and including from a goroutine that is itself nested inside
// another call (the Go analogue of a kernel interrupt handler reentering
// the terminal driver). Exactly one goroutine at a time actually executes
// actions against screen state — whichever one finds the action ring empty
// at the moment it submits becomes the drain owner for that batch, and all
// others simply enqueue and return. See actionRing for the mechanism.
package kterm
