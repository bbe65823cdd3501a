package generator

import (
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/entities"
)

const (
	towerOffset      = 25 // tower's left column is width-towerOffset
	towerWidth       = 5
	towerHeight      = 10
	arenaTowerMargin = 10 // on arena levels the tower stands this far before the arena
	exitOffset       = 3  // exit column is width-exitOffset
	exitSearch       = 10 // columns searched leftwards for ground under the exit
)

// guaranteeEndZone restores the one-captain invariant. When no captain was
// placed by the surface pass, it builds a Metal tower near the end of the
// level and forces the captain squad onto its roof.
func guaranteeEndZone(ctx *genContext, grid *world.Grid, surface []int) *world.Grid {
	if ctx.captainSpawned {
		return grid
	}

	left := ctx.towerLeft()
	roof := buildTower(grid, surface, left)
	resettle(ctx, grid, left, left+towerWidth-1)
	spawnSquad(ctx, left+towerWidth/2, flatRow(roof-1), true, entities.RolePatrol)

	ctx.log.Debug("end zone tower built", "col", left, "roof", roof)
	return grid
}

// buildTower raises a hollow Metal tower whose base sits on the surface of
// its left column. The ground under the footprint is backfilled so the
// tower never floats over a pit. Returns the roof row.
func buildTower(grid *world.Grid, surface []int, left int) int {
	base, _ := surfaceAt(surface, left)
	roof := base - towerHeight
	if roof < 1 {
		roof = 1
	}
	right := left + towerWidth - 1
	core := left + towerWidth/2

	for col := left; col <= right; col++ {
		if !grid.IsPlayableColumn(col) {
			continue
		}
		for row := base; row < grid.Rows(); row++ {
			if grid.Type(row, col) == world.Empty {
				grid.Set(row, col, world.Dirt)
			}
		}
		grid.FillColumn(col, grid.Rows()-bedrockRows, grid.Rows()-1, world.Stone)

		switch col {
		case left, right:
			grid.FillColumn(col, roof, base-1, world.Metal)
		case core:
			grid.FillColumn(col, roof, base-1, world.Ladder)
		default:
			grid.FillColumn(col, roof+1, base-1, world.Empty)
			grid.Set(roof, col, world.Metal)
		}
	}
	return roof
}

// resettle repairs the spawns in columns [left, right] after solid tiles
// were written over them. A bridge inside solid ground spans a pit that no
// longer exists and is dropped; anything else is lifted to the first open
// cell above it.
func resettle(ctx *genContext, grid *world.Grid, left, right int) {
	kept := ctx.spawns[:0]
	for _, s := range ctx.spawns {
		col, row := s.Col(), s.Row()
		if col < left || col > right || !grid.Type(row, col).IsSolid() {
			kept = append(kept, s)
			continue
		}
		if s.Kind == entities.BridgeBlock {
			continue
		}
		for row > 0 && grid.Type(row, col).IsSolid() {
			row--
		}
		s.Y = float64(row * world.TileSize)
		kept = append(kept, s)
	}
	ctx.spawns = kept
}

// placeExit puts the Goal tile just above the ground near the end of the
// level, searching left past pits. Runs after every other geometry pass.
func placeExit(ctx *genContext, grid *world.Grid, surface []int) *world.Grid {
	col := ctx.params.Width - exitOffset
	for i := 0; i < exitSearch; i++ {
		if top, ok := surfaceAt(surface, col-i); ok {
			grid.Set(top-1, col-i, world.Goal)
			return grid
		}
	}

	// Every candidate is a pit: give the exit its own footing.
	grid.Set(startHeight, col, world.Stone)
	grid.Set(startHeight-1, col, world.Goal)
	resettle(ctx, grid, col, col)
	return grid
}
