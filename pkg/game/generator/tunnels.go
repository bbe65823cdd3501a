package generator

import (
	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/entities"
)

const (
	tunnelStartCol    = 40
	tunnelStride      = 40
	tunnelEndMargin   = 60 // last shaft column is width-tunnelEndMargin
	shaftChance       = 0.7
	tunnelHeadroom    = 15 // surface must be above height-tunnelHeadroom
	shaftBottomMargin = 5  // shafts stop above height-shaftBottomMargin
	minTunnels        = 2
	maxTunnels        = 4
	minTunnelLength   = 10
	maxTunnelLength   = 24
	encounterStep     = 5 // encounters are rolled on every 5th step past the 5th
	ambushChance      = 0.1
	kamikazeBias      = 0.6
	tunnelCageChance  = 0.05
)

// carveTunnels adds ladder shafts with horizontal tunnels branching off
// them. Later carving overwrites earlier carving, including ladders.
func carveTunnels(ctx *genContext, grid *world.Grid, surface []int) *world.Grid {
	p := ctx.params
	shafts, tunnels := 0, 0

	for x := tunnelStartCol; x <= p.Width-tunnelEndMargin; x += tunnelStride {
		top, ok := surfaceAt(surface, x)
		if !ok || top >= p.Height-tunnelHeadroom || ctx.inTowerFootprint(x) {
			continue
		}
		if !ctx.chance(shaftChance) {
			continue
		}

		bottom := p.Height - shaftBottomMargin
		for row := top; row < bottom; row++ {
			grid.Set(row, x, world.Ladder)
		}
		shafts++

		count := rng.Range(ctx.rng, minTunnels, maxTunnels)
		for i := 0; i < count; i++ {
			carveTunnel(ctx, grid, x, top, bottom)
			tunnels++
		}
	}

	ctx.log.Debug("tunnels carved", "shafts", shafts, "tunnels", tunnels, "cages", ctx.cageCols.Size())
	return grid
}

// carveTunnel clears one 3-row corridor from the shaft and rolls the
// tunnel encounters along it. The corridor stops at the borders, the boss
// arena and the tower footprint, since both are rebuilt later.
func carveTunnel(ctx *genContext, grid *world.Grid, shaft, top, bottom int) {
	depth := rng.Range(ctx.rng, top+3, bottom-2)
	length := rng.Range(ctx.rng, minTunnelLength, maxTunnelLength)
	dir := world.Right
	if rng.Sign(ctx.rng) < 0 {
		dir = world.Left
	}

	ceiling, floor := depth-1, depth+1
	for step := 1; step <= length; step++ {
		col := dir.Step(shaft, step)
		if !grid.IsPlayableColumn(col) || ctx.inArena(col) || ctx.inTowerFootprint(col) {
			break
		}
		grid.FillColumn(col, ceiling, floor, world.Empty)

		if step <= encounterStep || step%encounterStep != 0 {
			continue
		}

		if ctx.chance(ambushChance) {
			kind := entities.Grunt
			if ctx.params.Difficulty >= 3 && ctx.chance(kamikazeBias) {
				kind = entities.Kamikaze
			}
			s := entities.At(kind, col, floor)
			s.Role = entities.RoleAmbush
			ctx.add(s)
		}

		if ctx.canPlaceCage(col) && ctx.chance(tunnelCageChance) {
			ctx.placeCage(col, ceiling, true)
			guard := entities.Grunt
			if ctx.params.Difficulty >= 5 {
				guard = entities.HeavyGunner
			}
			addUnit(ctx, guard, col, floor, ctx.nextSquad(), entities.RoleCageGuard)
		}
	}
}
