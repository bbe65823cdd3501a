// Package console is an interactive terminal viewer for generated levels.
// It scrolls across the level, regenerates on demand and steps the
// difficulty up or down.
package console

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"

	"cagebreak/pkg/engine/input"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/generator"
	"cagebreak/pkg/game/renderer"
)

// Layout
const (
	hudRows    = 2
	scrollStep = 8
)

// GenerateFunc produces a fresh level for a difficulty
type GenerateFunc func(difficulty int) *generator.Level

// Viewer draws a level onto a tcell screen and reacts to keys
type Viewer struct {
	screen   tcell.Screen
	generate GenerateFunc
	log      *slog.Logger

	level   *generator.Level
	markers map[renderer.Cell]renderer.Marker
	left    int // first level column on screen
	top     int // first level row on screen
	status  string
}

// New creates a viewer on an initialized screen. generate is used for the
// regenerate and difficulty keys; a nil generate disables them.
func New(screen tcell.Screen, generate GenerateFunc, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{screen: screen, generate: generate, log: logger}
}

// Name returns the viewer name
func (v *Viewer) Name() string {
	return "console"
}

// Show runs the event loop until the user quits
func (v *Viewer) Show(lvl *generator.Level) error {
	if err := v.Load(lvl); err != nil {
		return err
	}
	for {
		v.Draw()
		if v.HandleEvent(v.screen.PollEvent()) {
			return nil
		}
	}
}

// Load replaces the displayed level and resets the scroll position
func (v *Viewer) Load(lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}
	ms, err := renderer.Markers(lvl.Spawns)
	if err != nil {
		return fmt.Errorf("build markers: %w", err)
	}
	v.level = lvl
	v.markers = renderer.MarkerIndex(ms)
	v.left, v.top = 0, 0
	v.status = lvl.Validate()
	v.log.Debug("level loaded", "difficulty", lvl.Difficulty, "spawns", len(lvl.Spawns))
	return nil
}

// Level returns the displayed level
func (v *Viewer) Level() *generator.Level {
	return v.level
}

// Offset returns the first visible level column and row
func (v *Viewer) Offset() (col, row int) {
	return v.left, v.top
}

// viewSize returns the map area in cells
func (v *Viewer) viewSize() (cols, rows int) {
	w, h := v.screen.Size()
	rows = h - hudRows
	if rows < 1 {
		rows = 1
	}
	return w, rows
}

// keyCodes names the special keys the bindings refer to
var keyCodes = map[tcell.Key]string{
	tcell.KeyLeft:   "arrow_left",
	tcell.KeyRight:  "arrow_right",
	tcell.KeyUp:     "arrow_up",
	tcell.KeyDown:   "arrow_down",
	tcell.KeyHome:   "home",
	tcell.KeyEnd:    "end",
	tcell.KeyEscape: "escape",
	tcell.KeyCtrlC:  "ctrl_c",
}

// keyCode returns the binding code for a key event, "" when unbound
func keyCode(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return keyCodes[ev.Key()]
}

// HandleEvent applies one event and reports whether the viewer should quit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.apply(input.ActionFor(input.DeviceTerminal, keyCode(ev)))
	}
	return false
}

// apply performs one action and reports whether it was quit
func (v *Viewer) apply(a input.Action) bool {
	switch a {
	case input.ActionQuit:
		return true
	case input.ActionScrollLeft:
		v.scroll(-scrollStep, 0)
	case input.ActionScrollRight:
		v.scroll(scrollStep, 0)
	case input.ActionScrollUp:
		v.scroll(0, -1)
	case input.ActionScrollDown:
		v.scroll(0, 1)
	case input.ActionScrollStart:
		v.left = 0
	case input.ActionScrollEnd:
		v.scroll(v.level.Width(), 0)
	case input.ActionRegenerate:
		v.regenerate(v.level.Difficulty)
	case input.ActionHarder:
		v.regenerate(v.level.Difficulty + 1)
	case input.ActionEasier:
		if v.level.Difficulty > 1 {
			v.regenerate(v.level.Difficulty - 1)
		}
	}
	return false
}

// scroll moves the view, clamped to the level
func (v *Viewer) scroll(dcol, drow int) {
	cols, rows := v.viewSize()
	v.left = renderer.ClampOffset(v.level.Width(), cols, v.left+dcol)
	v.top = renderer.ClampOffset(v.level.Height(), rows, v.top+drow)
}

func (v *Viewer) regenerate(d int) {
	if v.generate == nil {
		return
	}
	lvl := v.generate(d)
	if err := v.Load(lvl); err != nil {
		v.log.Error("regenerate failed", "difficulty", d, "error", err)
		v.status = err.Error()
	}
}

// Draw renders the visible part of the level and the HUD
func (v *Viewer) Draw() {
	v.screen.Clear()
	cols, rows := v.viewSize()
	startCol, endCol := renderer.Window(v.level.Width(), cols, v.left)
	startRow, endRow := renderer.Window(v.level.Height(), rows, v.top)

	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			sx, sy := col-startCol, row-startRow
			if m, ok := v.markers[renderer.Cell{Row: row, Col: col}]; ok {
				v.screen.SetContent(sx, sy, m.Glyph, nil, markerStyle(m))
				continue
			}
			tile, _ := v.level.Grid.Get(row, col)
			if tile.Type == world.Empty {
				continue
			}
			v.screen.SetContent(sx, sy, renderer.TileGlyph(tile), nil, tileStyle(tile))
		}
	}

	v.drawHUD(startCol, endCol)
	v.screen.Show()
}

// drawHUD renders the separator and the status line
func (v *Viewer) drawHUD(startCol, endCol int) {
	w, h := v.screen.Size()
	hudY := h - hudRows
	line := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, hudY, '─', nil, line)
	}

	text := fmt.Sprintf("%s %d  %s  %d-%d/%d  %s %d  %s",
		gotext.Get("LEVEL"), v.level.Difficulty, v.level.Biome.Label(),
		startCol, endCol-1, v.level.Width(),
		gotext.Get("SPAWNS"), len(v.level.Spawns), gotext.Get("CONSOLE_KEYS"))
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if v.status != "" {
		text = v.status + "  " + text
		style = style.Foreground(tcell.ColorRed)
	}
	drawText(v.screen, 0, hudY+1, runewidth.Truncate(text, w, "…"), style)
}

// drawText writes text starting at x, advancing by each rune's display width
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

func tileStyle(tile world.Tile) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	if tile.Color != "" {
		return style.Foreground(tcell.GetColor(tile.Color))
	}
	switch tile.Type {
	case world.Ladder:
		return style.Foreground(tcell.ColorYellow)
	case world.Checkpoint, world.Goal:
		return style.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return style.Foreground(tcell.ColorSilver)
	}
}

func markerStyle(m renderer.Marker) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Bold(true)
	switch {
	case m.Boss:
		return style.Foreground(tcell.ColorFuchsia)
	case m.Enemy:
		return style.Foreground(tcell.ColorRed)
	default:
		return style.Foreground(tcell.ColorAqua)
	}
}
