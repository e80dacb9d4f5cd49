// Command ktermdemo drives a kterm.Engine against a real terminal: it puts
// stdin into raw mode, wires an ANSI Backend that writes literal CSI cursor
// and SGR sequences to stdout, and echoes stdin straight into the engine so
// keystrokes (and pasted text) land on screen exactly as they would on a
// physical console. Ctrl-D exits.
//
// Grounded on the teacher's raw-mode handling in the wider example corpus
// (framegrace-texelation/texel/desktop.go's queryTerminalColors, which opens
// /dev/tty, calls term.MakeRaw, and always term.Restore's on the way out).
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/nanokernel/kterm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ktermdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("make raw: %w", err)
	}
	defer term.Restore(fd, state)

	backend := newANSIBackend(os.Stdout, kterm.DefaultRows, kterm.DefaultCols)
	engine := kterm.NewEngine(backend)
	engine.Init()
	backend.clearScreen()

	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			for _, b := range buf[:n] {
				if b == 0x04 { // Ctrl-D
					return nil
				}
				engine.WriteChar(b)
			}
		}
		if err != nil {
			return err
		}
	}
}
