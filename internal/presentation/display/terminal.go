// Package display manages the terminal screen for watch mode: alternate
// screen buffer, cursor visibility, and flicker-free redraws.
package display

import (
	"fmt"
	"io"
)

const (
	enterAltScreen = "\033[?1049h"
	exitAltScreen  = "\033[?1049l"
	clearScreen    = "\033[2J"
	clearScrollbuf = "\033[3J"
	cursorHome     = "\033[H"
	hideCursor     = "\033[?25l"
	showCursor     = "\033[?25h"
)

// Terminal wraps an output stream with screen-buffer state so watch mode can
// enter the alternate screen once and restore the user's scrollback on exit.
type Terminal struct {
	out               io.Writer
	inAlternateScreen bool
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// EnterAlternateScreen switches to the alternate buffer and hides the
// cursor. Idempotent.
func (t *Terminal) EnterAlternateScreen() {
	if t.inAlternateScreen {
		return
	}
	fmt.Fprint(t.out, enterAltScreen, clearScreen, cursorHome, hideCursor)
	t.inAlternateScreen = true
}

// ExitAlternateScreen restores the normal buffer and cursor. Idempotent, and
// safe to defer alongside signal handling.
func (t *Terminal) ExitAlternateScreen() {
	if !t.inAlternateScreen {
		return
	}
	fmt.Fprint(t.out, showCursor, exitAltScreen)
	t.inAlternateScreen = false
}

// Clear wipes the visible screen before a redraw. In the alternate buffer
// the scrollback is cleared too so stale frames cannot be scrolled back to.
func (t *Terminal) Clear() {
	if t.inAlternateScreen {
		fmt.Fprint(t.out, clearScreen, clearScrollbuf, cursorHome)
		return
	}
	fmt.Fprint(t.out, clearScreen, cursorHome)
}

// Out returns the underlying writer for rendering after a Clear.
func (t *Terminal) Out() io.Writer {
	return t.out
}
