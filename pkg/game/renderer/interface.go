package renderer

import (
	"errors"

	"cagebreak/pkg/game/generator"
)

// Viewer presents a generated level. Implementations include the one-shot
// TUI print, the interactive console and the ebiten window.
type Viewer interface {
	// Name identifies the viewer on the command line
	Name() string

	// Show displays lvl and returns when the viewer is done with it.
	// Interactive viewers block until the user quits.
	Show(lvl *generator.Level) error
}

// ErrNoViewer is returned by Show when no viewer has been set
var ErrNoViewer = errors.New("no viewer set")

// Current holds the active viewer instance
var Current Viewer

// SetViewer sets the active viewer
func SetViewer(v Viewer) {
	Current = v
}

// Show displays lvl with the current viewer
func Show(lvl *generator.Level) error {
	if Current == nil {
		return ErrNoViewer
	}
	return Current.Show(lvl)
}
