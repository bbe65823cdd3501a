package generator

import (
	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
)

const (
	pitStartCol       = 20   // pits only after this column
	bridgeChance      = 0.5  // bridge block over a fresh pit
	surfaceCageChance = 0.08 // cage seeding during the walk
	cageGuardOffset   = 2    // guard squad spawns this many columns ahead
)

// Hazard tile colors per biome
const (
	lavaColor   = "#ff4500"
	spikesColor = "#9e9e9e"
)

// walkSurface synthesizes the surface height per column with a bounded
// random walk and fills every column down to bedrock. Pits and surface
// cages are placed inline. Cage guards stand ahead of their cage, so they
// are spawned once the walk has fixed those columns.
func walkSurface(ctx *genContext) (*world.Grid, []int) {
	p := ctx.params
	grid := world.NewGrid(p.Height, p.Width)
	surface := make([]int, p.Width)

	height := startHeight
	pits := 0
	var guarded []int // cage columns awaiting their guard squad

	for x := 0; x < p.Width; x++ {
		switch {
		case ctx.inSafeZone(x):
			height = startHeight
		case ctx.inArena(x):
			height = arenaFloorRow
		default:
			if ctx.chance(p.Roughness) {
				height += rng.Sign(ctx.rng)
			}
			height = clampSurface(height, p.Height)
		}

		if x > pitStartCol && x < p.Width-1 && !ctx.inArena(x) && ctx.chance(p.PitChance) {
			carvePit(ctx, grid, x, height)
			surface[x] = pitSentinel(p.Height)
			pits++
			continue
		}
		surface[x] = height

		if !ctx.inSafeZone(x) && x <= ctx.maxCol() && ctx.canPlaceCage(x) && ctx.chance(surfaceCageChance) {
			ctx.placeCage(x, height-1, false)
			guarded = append(guarded, x)
		}

		fillColumn(ctx, grid, x, height)
	}

	for _, x := range guarded {
		fallback := surface[x] - 1
		spawnSquad(ctx, ctx.clampCol(x+cageGuardOffset), groundRow(surface, fallback), false, entities.RoleCageGuard)
	}

	ctx.log.Debug("surface walked", "pits", pits, "cages", ctx.cageCols.Size(), "spawns", len(ctx.spawns))
	return grid, surface
}

// carvePit clears the column, lays the biome hazard on the bottom row and
// maybe records a bridge where the ground would have been.
func carvePit(ctx *genContext, grid *world.Grid, x, height int) {
	grid.FillColumn(x, 0, grid.Rows()-1, world.Empty)
	grid.SetTile(grid.Rows()-1, x, hazardTile(ctx.params.Biome))

	if ctx.chance(bridgeChance) {
		ctx.add(entities.At(entities.BridgeBlock, x, height))
	}
}

// hazardTile returns lava for the volcano biome, spikes otherwise
func hazardTile(b difficulty.Biome) world.Tile {
	if b == difficulty.Volcano {
		return world.Tile{Type: world.Hazard, ID: world.HazardLava, Color: lavaColor}
	}
	return world.Tile{Type: world.Hazard, ID: world.HazardSpikes, Color: spikesColor}
}

// fillColumn fills from the surface down. Safe zone and arena columns are
// Stone; the bottom rows are always Stone bedrock.
func fillColumn(ctx *genContext, grid *world.Grid, x, height int) {
	base := world.Dirt
	if ctx.inSafeZone(x) || ctx.inArena(x) {
		base = world.Stone
	}
	grid.FillColumn(x, height, grid.Rows()-1, base)
	grid.FillColumn(x, grid.Rows()-bedrockRows, grid.Rows()-1, world.Stone)
}
