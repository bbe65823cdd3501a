// Package ebiten provides a windowed preview of generated levels drawn
// with Ebiten. Tiles are filled rectangles in their palette color, spawns
// are smaller rectangles on top.
package ebiten

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"cagebreak/pkg/engine/input"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/generator"
	"cagebreak/pkg/game/palette"
	"cagebreak/pkg/game/renderer"
)

// errQuit ends RunGame cleanly
var errQuit = errors.New("quit")

// GenerateFunc produces a fresh level for a difficulty
type GenerateFunc func(difficulty int) *generator.Level

// EbitenRenderer is the Ebiten game that displays one level at a time
type EbitenRenderer struct {
	generate GenerateFunc
	log      *slog.Logger
	seed     int64

	level   *generator.Level
	markers []renderer.Marker
	tiles   [][]color.RGBA // cached tile colors, [row][col]
	left    int
	status  string
}

// New creates a window viewer. seed drives the palette shading.
func New(generate GenerateFunc, seed int64, logger *slog.Logger) *EbitenRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &EbitenRenderer{generate: generate, seed: seed, log: logger}
}

// Name returns the viewer name
func (e *EbitenRenderer) Name() string {
	return "window"
}

// Show opens the window and blocks until it is closed
func (e *EbitenRenderer) Show(lvl *generator.Level) error {
	if err := e.load(lvl); err != nil {
		return err
	}
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Cagebreak - %s %d", gotext.Get("LEVEL"), lvl.Difficulty))

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// load shades the level and caches what Draw needs
func (e *EbitenRenderer) load(lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}
	ms, err := renderer.Markers(lvl.Spawns)
	if err != nil {
		return fmt.Errorf("build markers: %w", err)
	}
	palette.Shade(lvl.Grid, lvl.Biome, e.seed)

	tiles := make([][]color.RGBA, lvl.Height())
	for row := range tiles {
		tiles[row] = make([]color.RGBA, lvl.Width())
	}
	lvl.Grid.ForEachTile(func(row, col int, tile world.Tile) {
		tiles[row][col] = tileColor(tile)
	})

	e.level = lvl
	e.markers = ms
	e.tiles = tiles
	e.left = 0
	e.status = lvl.Validate()
	e.log.Debug("window level loaded", "difficulty", lvl.Difficulty, "spawns", len(ms))
	return nil
}

// tileColor resolves a tile's color; Empty tiles stay transparent
func tileColor(tile world.Tile) color.RGBA {
	if tile.Type == world.Empty {
		return color.RGBA{}
	}
	if tile.Type == world.Ladder && tile.Color == "" {
		return colorLadder
	}
	c, err := palette.ParseHex(tile.Color)
	if err != nil {
		return colorTileFlat
	}
	return c
}

// keyCodes names the keys the bindings refer to
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeyHome:       "home",
	ebiten.KeyEnd:        "end",
	ebiten.KeyN:          "n",
	ebiten.KeyEqual:      "=",
	ebiten.KeyKPAdd:      "numpad_add",
	ebiten.KeyMinus:      "-",
	ebiten.KeyKPSubtract: "numpad_subtract",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// Update handles scrolling, regeneration and quitting. Scroll keys repeat
// while held, everything else fires once per press.
func (e *EbitenRenderer) Update() error {
	for key, code := range keyCodes {
		a := input.ActionFor(input.DeviceKeyboard, code)
		if input.IsScroll(a) {
			if ebiten.IsKeyPressed(key) {
				e.apply(a)
			}
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			if a == input.ActionQuit {
				return errQuit
			}
			e.apply(a)
		}
	}
	return nil
}

// apply performs one non-quit action
func (e *EbitenRenderer) apply(a input.Action) {
	visible := windowWidth / cellSize
	d := e.level.Difficulty
	switch a {
	case input.ActionScrollLeft:
		e.left = renderer.ClampOffset(e.level.Width(), visible, e.left-scrollSpeed)
	case input.ActionScrollRight:
		e.left = renderer.ClampOffset(e.level.Width(), visible, e.left+scrollSpeed)
	case input.ActionScrollStart:
		e.left = 0
	case input.ActionScrollEnd:
		e.left = renderer.ClampOffset(e.level.Width(), visible, e.level.Width())
	case input.ActionRegenerate:
		e.regenerate(d)
	case input.ActionHarder:
		e.regenerate(d + 1)
	case input.ActionEasier:
		if d > 1 {
			e.regenerate(d - 1)
		}
	}
}

func (e *EbitenRenderer) regenerate(d int) {
	if e.generate == nil {
		return
	}
	if err := e.load(e.generate(d)); err != nil {
		e.log.Error("regenerate failed", "difficulty", d, "error", err)
		e.status = err.Error()
		return
	}
	ebiten.SetWindowTitle(fmt.Sprintf("Cagebreak - %s %d", gotext.Get("LEVEL"), d))
}

// Draw renders the visible tiles, the spawn markers and the HUD line
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	start, end := renderer.Window(e.level.Width(), windowWidth/cellSize, e.left)
	for row := 0; row < e.level.Height(); row++ {
		for col := start; col < end; col++ {
			c := e.tiles[row][col]
			if c.A == 0 {
				continue
			}
			x := float32((col - start) * cellSize)
			y := float32(row * cellSize)
			vector.DrawFilledRect(screen, x, y, cellSize, cellSize, c, false)
		}
	}

	for _, m := range e.markers {
		if m.Col < start || m.Col >= end {
			continue
		}
		x := float32((m.Col-start)*cellSize + markerInset)
		y := float32(m.Row*cellSize + markerInset)
		size := float32(cellSize - 2*markerInset)
		vector.DrawFilledRect(screen, x, y, size, size, markerColor(m), false)
	}

	hudY := e.level.Height() * cellSize
	vector.DrawFilledRect(screen, 0, float32(hudY), windowWidth, hudHeight, colorHUD, false)
	line := fmt.Sprintf("%s %d  %s  %d-%d/%d  %s %d  %s",
		gotext.Get("LEVEL"), e.level.Difficulty, e.level.Biome.Label(),
		start, end-1, e.level.Width(),
		gotext.Get("SPAWNS"), len(e.level.Spawns), gotext.Get("WINDOW_KEYS"))
	ebitenutil.DebugPrintAt(screen, line, 8, hudY+2)
	if e.status != "" {
		ebitenutil.DebugPrintAt(screen, e.status, 8, hudY+16)
	}
}

// markerColor returns the fill color for a spawn marker
func markerColor(m renderer.Marker) color.RGBA {
	switch {
	case m.Boss:
		return colorBoss
	case m.Enemy:
		return colorEnemy
	default:
		return colorObject
	}
}

// Layout returns the fixed logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
