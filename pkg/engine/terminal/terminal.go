// Package terminal reports on the terminal the game is attached to.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when stdout is not a terminal
const (
	fallbackCols = 80
	fallbackRows = 24
)

// DefaultLogFile receives operator log lines while the terminal is busy
// drawing the game
const DefaultLogFile = "castlequest.log"

// IsInteractive reports whether stdin and stdout are both attached to a terminal.
// The TUI needs raw-mode input, so it cannot run without one.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the terminal's columns and rows, or 80x24 when unknown
func Size() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// LogPath picks where operator log lines go. An explicit path always wins.
// Otherwise a game drawn on the terminal logs to DefaultLogFile so log
// lines do not land in the frame, and "" (stderr) is used.
func LogPath(requested string, drawsOnTerminal bool) string {
	if requested != "" {
		return requested
	}
	if drawsOnTerminal {
		return DefaultLogFile
	}
	return ""
}
