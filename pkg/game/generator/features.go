package generator

import (
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/entities"
)

const (
	mechChance        = 0.3
	mechMinDifficulty = 3
	mechOffset        = 2
	squadChance       = 0.4
	sniperChance      = 0.02
	sniperMinDiff     = 3
	sniperLift        = 6
	flyerChance       = 0.02
	flyerMinDiff      = 2
	flyerLift         = 8
	featureCageChance = 0.02
)

// placeSurfaceFeatures walks the surface a second time and places
// checkpoints, propane tanks, roaming squads, elevated threats and the
// occasional extra cage. Pits and the boss arena are skipped. Checkpoints
// only replace solid ground, so a shaft entrance or a tunnel breaking the
// surface pushes the checkpoint to the next column.
func placeSurfaceFeatures(ctx *genContext, grid *world.Grid, surface []int) *world.Grid {
	p := ctx.params
	endZone := p.Width - endZoneCols
	squads := 0

	for x := 1; x < p.Width-1; x++ {
		top, ok := surfaceAt(surface, x)
		if !ok || ctx.inArena(x) {
			continue
		}
		above := top - 1

		onCheckpoint := false
		if x >= ctx.nextCheckpoint && ctx.checkpoints < p.CheckpointCap && grid.Type(top, x).IsSolid() {
			placeCheckpoint(ctx, grid, surface, x, top)
			onCheckpoint = true
		}

		if !onCheckpoint && ctx.chance(p.HazardChance) && grid.Type(above, x) == world.Empty {
			ctx.add(entities.At(entities.PropaneTank, x, above))
		}

		forced := x >= endZone && !ctx.captainSpawned
		if forced || x-ctx.lastEncounterX > p.EncounterGap {
			if forced || ctx.chance(squadChance) {
				spawnSquad(ctx, x, groundRow(surface, above), forced, entities.RolePatrol)
				ctx.lastEncounterX = x
				squads++
			}
		}

		if p.Difficulty >= sniperMinDiff && ctx.chance(sniperChance) {
			s := entities.At(entities.Sniper, x, ctx.clampRow(top-sniperLift))
			s.Role = entities.RoleSentry
			ctx.add(s)
		}
		if p.Difficulty >= flyerMinDiff && ctx.chance(flyerChance) {
			s := entities.At(entities.Flyer, x, ctx.clampRow(top-flyerLift))
			s.Role = entities.RoleSentry
			s.Airborne = true
			ctx.add(s)
		}

		if !onCheckpoint && ctx.canPlaceCage(x) && ctx.chance(featureCageChance) {
			ctx.placeCage(x, above, false)
		}
	}

	ctx.log.Debug("surface features placed", "checkpoints", ctx.checkpoints, "squads", squads, "captain", ctx.captainSpawned)
	return grid
}

// placeCheckpoint turns the surface tile to Stone with an inactive
// checkpoint on top, and maybe drops a mech pickup on the ground nearby.
func placeCheckpoint(ctx *genContext, grid *world.Grid, surface []int, x, top int) {
	ctx.checkpoints++
	ctx.nextCheckpoint = x + ctx.params.CheckpointInterval

	grid.Set(top, x, world.Stone)
	grid.SetTile(top-1, x, world.Tile{Type: world.Checkpoint, ID: ctx.checkpoints})

	if ctx.params.Difficulty >= mechMinDifficulty && ctx.chance(mechChance) {
		col := ctx.clampCol(x + mechOffset)
		ctx.add(entities.At(entities.MechPickup, col, groundRow(surface, top-1)(col)))
	}
}
