package colfmt

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is the line width used when the terminal width cannot be
// determined.
const DefaultWidth = 80

// TerminalWidth returns the width of the terminal on standard output. When
// standard output is not a terminal it falls back to the COLUMNS
// environment variable, then to [DefaultWidth]. The result is never cached.
func TerminalWidth() int {
	return terminalWidth(int(os.Stdout.Fd()))
}

func terminalWidth(fd int) int {
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}
