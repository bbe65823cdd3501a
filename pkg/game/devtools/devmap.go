package devtools

import (
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
	"cagebreak/pkg/game/generator"
)

// Showcase dimensions
const (
	showcaseRows    = 16
	showcaseCols    = 64
	showcaseSurface = 11
)

// ShowcaseLevel returns a small hand-built level holding every tile type
// and one spawn of every kind, spaced four columns apart along the
// surface. It is for checking viewers and palettes, not for play, and
// does not satisfy Level.Validate.
func ShowcaseLevel() *generator.Level {
	grid := world.NewGrid(showcaseRows, showcaseCols)
	surface := make([]int, showcaseCols)

	for col := 0; col < showcaseCols; col++ {
		surface[col] = showcaseSurface
		grid.FillColumn(col, showcaseSurface, showcaseRows-1, world.Dirt)
		grid.FillColumn(col, showcaseRows-2, showcaseRows-1, world.Stone)
	}

	// Row of tile samples under the surface, one per column from col 2.
	samples := []world.Tile{
		{Type: world.Stone},
		{Type: world.Metal},
		{Type: world.Hazard, ID: world.HazardSpikes, Color: "#9e9e9e"},
		{Type: world.Hazard, ID: world.HazardLava, Color: "#ff4500"},
		{Type: world.Ladder},
		{Type: world.Checkpoint, ID: 1},
		{Type: world.Checkpoint, ID: 2, Active: true},
		{Type: world.Empty},
	}
	for i, tile := range samples {
		grid.SetTile(showcaseSurface+1, 2+i, tile)
	}

	grid.SetTile(showcaseSurface-1, showcaseCols-3, world.Tile{Type: world.Goal})
	grid.FillColumn(0, 0, showcaseRows-1, world.Stone)
	grid.FillColumn(showcaseCols-1, 0, showcaseRows-1, world.Stone)

	var spawns []entities.Spawn
	for i, kind := range entities.AllKinds() {
		row := showcaseSurface - 1
		if kind == entities.Flyer || kind == entities.AirBoss {
			row -= 4
		}
		s := entities.At(kind, 12+i*4, row)
		s.Airborne = kind == entities.Flyer || kind == entities.AirBoss
		spawns = append(spawns, s)
	}

	return &generator.Level{
		Difficulty: 1,
		Biome:      difficulty.Forest,
		Grid:       grid,
		Surface:    surface,
		Spawns:     spawns,
	}
}
