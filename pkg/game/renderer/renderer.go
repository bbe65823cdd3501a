// Package renderer holds what every level viewer shares: tile glyphs, the
// spawn marker overlay, the legend and the scrolling window arithmetic.
package renderer

import (
	"github.com/leonelquinteros/gotext"

	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/entities"
)

// Tile glyphs
const (
	GlyphEmpty      = '.'
	GlyphDirt       = '%'
	GlyphStone      = '#'
	GlyphMetal      = 'X'
	GlyphSpikes     = '^'
	GlyphLava       = '~'
	GlyphCheckpoint = 'p'
	GlyphActive     = 'P' // checkpoint after the player touched it
	GlyphLadder     = 'H'
	GlyphGoal       = 'E'
	GlyphUnknown    = '?'
)

// TileGlyph returns the single-character symbol for a tile
func TileGlyph(t world.Tile) rune {
	switch t.Type {
	case world.Empty:
		return GlyphEmpty
	case world.Dirt:
		return GlyphDirt
	case world.Stone:
		return GlyphStone
	case world.Metal:
		return GlyphMetal
	case world.Hazard:
		if t.ID == world.HazardLava {
			return GlyphLava
		}
		return GlyphSpikes
	case world.Checkpoint:
		if t.Active {
			return GlyphActive
		}
		return GlyphCheckpoint
	case world.Ladder:
		return GlyphLadder
	case world.Goal:
		return GlyphGoal
	default:
		return GlyphUnknown
	}
}

// Marker is a spawn reduced to what a viewer draws: a glyph on a cell
type Marker struct {
	Row, Col int
	Glyph    rune
	Kind     entities.Kind
	Enemy    bool
	Boss     bool
}

var markerFactory = entities.NewFactory[Marker]().RegisterAll(func(s entities.Spawn) Marker {
	return Marker{
		Row:   s.Row(),
		Col:   s.Col(),
		Glyph: s.Kind.Glyph(),
		Kind:  s.Kind,
		Enemy: s.Kind.IsEnemy(),
		Boss:  s.Kind.IsBoss(),
	}
})

// Markers converts spawns to markers, in spawn order
func Markers(spawns []entities.Spawn) ([]Marker, error) {
	return markerFactory.Build(spawns)
}

// Cell is a row/col key
type Cell struct {
	Row, Col int
}

// MarkerIndex maps each occupied cell to its marker. When several spawns
// share a cell, enemies win over objects and later spawns over earlier.
func MarkerIndex(markers []Marker) map[Cell]Marker {
	idx := make(map[Cell]Marker, len(markers))
	for _, m := range markers {
		key := Cell{m.Row, m.Col}
		if prev, ok := idx[key]; ok && prev.Enemy && !m.Enemy {
			continue
		}
		idx[key] = m
	}
	return idx
}

// LegendEntry pairs a glyph with its translated description
type LegendEntry struct {
	Glyph rune
	Label string
}

// TileLegend returns the tile symbols with translated labels
func TileLegend() []LegendEntry {
	return []LegendEntry{
		{GlyphEmpty, gotext.Get("LEGEND_EMPTY")},
		{GlyphDirt, gotext.Get("LEGEND_DIRT")},
		{GlyphStone, gotext.Get("LEGEND_STONE")},
		{GlyphMetal, gotext.Get("LEGEND_METAL")},
		{GlyphSpikes, gotext.Get("LEGEND_SPIKES")},
		{GlyphLava, gotext.Get("LEGEND_LAVA")},
		{GlyphCheckpoint, gotext.Get("LEGEND_CHECKPOINT")},
		{GlyphLadder, gotext.Get("LEGEND_LADDER")},
		{GlyphGoal, gotext.Get("LEGEND_GOAL")},
	}
}

// KindLegend returns every spawn kind's glyph with its translated label
func KindLegend() []LegendEntry {
	kinds := entities.AllKinds()
	out := make([]LegendEntry, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, LegendEntry{k.Glyph(), k.Label()})
	}
	return out
}

// Window returns the half-open column range [start, end) shown by a view
// visible columns wide whose left edge is scrolled to offset. The range is
// clamped to [0, cols).
func Window(cols, visible, offset int) (start, end int) {
	if visible <= 0 || cols <= 0 {
		return 0, 0
	}
	if visible > cols {
		visible = cols
	}
	start = offset
	if start > cols-visible {
		start = cols - visible
	}
	if start < 0 {
		start = 0
	}
	return start, start + visible
}

// ClampOffset keeps a scroll offset inside the range Window accepts
func ClampOffset(cols, visible, offset int) int {
	start, _ := Window(cols, visible, offset)
	return start
}
