package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdout is attached to a terminal.
// Colored output and the console viewer are only used when it is.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// VisibleColumns returns how many map columns fit on one terminal line
// when each column is drawn glyphWidth cells wide, leaving margin cells free.
func VisibleColumns(glyphWidth, margin int) int {
	if glyphWidth < 1 {
		glyphWidth = 1
	}
	width, _ := GetSize()
	cols := (width - margin) / glyphWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}
