package main

import (
	"fmt"
	"io"

	"github.com/nanokernel/kterm"
)

// ansiBackend implements kterm.Backend by writing literal ANSI CSI
// sequences to an io.Writer (a real terminal's stdout), one call at a time.
// It keeps no framebuffer of its own: each SetCharAt/ClearRow positions the
// real cursor and writes straight through, trusting the terminal emulator
// to hold the resulting state, the same trust the engine's source places in
// its VGA video memory.
type ansiBackend struct {
	out        io.Writer
	rows, cols int
}

func newANSIBackend(out io.Writer, rows, cols int) *ansiBackend {
	return &ansiBackend{out: out, rows: rows, cols: cols}
}

func (a *ansiBackend) clearScreen() {
	fmt.Fprint(a.out, "\x1b[2J\x1b[H")
}

// sgr writes the SGR sequence selecting attr's foreground and background
// from the engine's 16-color VGA palette, approximated onto the terminal's
// own 16-color SGR codes (30-37/90-97 foreground, 40-47/100-107
// background).
func (a *ansiBackend) sgr(attr kterm.Attribute) {
	fg := sgrCode(attr.Foreground(), 30, 90)
	bg := sgrCode(attr.Background(), 40, 100)
	fmt.Fprintf(a.out, "\x1b[%d;%dm", fg, bg)
}

func sgrCode(c kterm.Color, base, bright int) int {
	if c >= 8 {
		return bright + int(c) - 8
	}
	return base + int(c)
}

func (a *ansiBackend) moveTo(row, col int) {
	fmt.Fprintf(a.out, "\x1b[%d;%dH", row+1, col+1)
}

func (a *ansiBackend) SetCharAt(glyph byte, attr kterm.Attribute, row, col int) {
	a.moveTo(row, col)
	a.sgr(attr)
	a.out.Write([]byte{glyph})
}

func (a *ansiBackend) ClearRow(row int, attr kterm.Attribute) {
	a.moveTo(row, 0)
	a.sgr(attr)
	fmt.Fprint(a.out, "\x1b[2K")
}

func (a *ansiBackend) MoveCursor(row, col int) {
	a.moveTo(row, col)
}

func (a *ansiBackend) EnableCursor() {
	fmt.Fprint(a.out, "\x1b[?25h")
}

func (a *ansiBackend) DisableCursor() {
	fmt.Fprint(a.out, "\x1b[?25l")
}

var _ kterm.Backend = (*ansiBackend)(nil)
