package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cagebreak/pkg/engine/terminal"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/generator"
	"cagebreak/pkg/game/renderer"
)

// ViewportSideMargin is the space kept free right of the map
const ViewportSideMargin = 2

// TUIRenderer prints a window of the level once, colored, and returns
type TUIRenderer struct {
	out io.Writer

	// Columns overrides the terminal width when positive
	Columns int
	// Offset is the first level column shown
	Offset int

	colorHeader  color.Style
	colorSubtle  color.Style
	colorEnemy   color.Style
	colorBoss    color.Style
	colorObject  color.Style
	colorLadder  color.Style
	colorGoal    color.Style
	colorDefault color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: w}
	t.Init()
	return t
}

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorHeader = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorBoss = color.Style{color.FgLightMagenta, color.OpBold}
	t.colorObject = color.Style{color.FgCyan}
	t.colorLadder = color.Style{color.FgYellow}
	t.colorGoal = color.Style{color.FgGreen, color.OpBold}
	t.colorDefault = color.Style{color.FgWhite}
}

// Name returns the viewer name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Show prints the header, the visible window of the map and the legend
func (t *TUIRenderer) Show(lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}
	markers, err := renderer.Markers(lvl.Spawns)
	if err != nil {
		return fmt.Errorf("build markers: %w", err)
	}
	idx := renderer.MarkerIndex(markers)

	visible := t.Columns
	if visible <= 0 {
		visible = terminal.VisibleColumns(1, ViewportSideMargin)
	}
	start, end := renderer.Window(lvl.Width(), visible, t.Offset)

	var b strings.Builder
	b.WriteString(t.colorHeader.Sprintf("%s %d", gotext.Get("LEVEL"), lvl.Difficulty))
	b.WriteString(t.colorSubtle.Sprintf("  %s  %d-%d / %d\n", lvl.Biome.Label(), start, end-1, lvl.Width()))

	for row := 0; row < lvl.Height(); row++ {
		for col := start; col < end; col++ {
			if m, ok := idx[renderer.Cell{Row: row, Col: col}]; ok {
				b.WriteString(t.styleMarker(m))
				continue
			}
			tile, _ := lvl.Grid.Get(row, col)
			b.WriteString(t.styleTile(tile))
		}
		b.WriteByte('\n')
	}

	b.WriteString(t.legend())
	_, err = io.WriteString(t.out, b.String())
	return err
}

// styleTile colors one tile glyph: its own color when set, else by type
func (t *TUIRenderer) styleTile(tile world.Tile) string {
	glyph := string(renderer.TileGlyph(tile))
	if tile.Type == world.Empty {
		return " "
	}
	if tile.Color != "" {
		return color.HEX(tile.Color).Sprint(glyph)
	}
	switch tile.Type {
	case world.Ladder:
		return t.colorLadder.Sprint(glyph)
	case world.Goal, world.Checkpoint:
		return t.colorGoal.Sprint(glyph)
	default:
		return t.colorDefault.Sprint(glyph)
	}
}

func (t *TUIRenderer) styleMarker(m renderer.Marker) string {
	glyph := string(m.Glyph)
	switch {
	case m.Boss:
		return t.colorBoss.Sprint(glyph)
	case m.Enemy:
		return t.colorEnemy.Sprint(glyph)
	default:
		return t.colorObject.Sprint(glyph)
	}
}

// legend renders the glyph legend on one line
func (t *TUIRenderer) legend() string {
	entries := append(renderer.TileLegend(), renderer.KindLegend()...)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%c %s", e.Glyph, e.Label))
	}
	return t.colorSubtle.Sprint(strings.Join(parts, "  ")) + "\n"
}
