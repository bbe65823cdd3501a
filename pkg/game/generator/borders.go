package generator

import (
	"cagebreak/pkg/engine/world"
)

// sealBorders forces the outermost columns to Stone in every row so the
// play area stays closed whatever the earlier passes carved.
func sealBorders(grid *world.Grid) *world.Grid {
	last := grid.Cols() - 1
	grid.FillColumn(0, 0, grid.Rows()-1, world.Stone)
	grid.FillColumn(last, 0, grid.Rows()-1, world.Stone)
	return grid
}
