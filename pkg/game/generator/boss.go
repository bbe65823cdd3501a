package generator

import (
	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
)

const (
	bossZoneStart    = 0.7 // bosses appear in the final 30% of the level
	bossClearance    = 3   // rows between the surface and a ground boss
	minBossRow       = 2
	airborneChance   = 0.5
	airborneLift     = 6
	entourageOffset  = 5
	arenaTurretInset = 6
)

// placeBoss spawns the boss on boss levels: inside a sealed arena from
// difficulty 20, otherwise in open terrain flanked by two squads.
func placeBoss(ctx *genContext, grid *world.Grid, surface []int) *world.Grid {
	if !ctx.params.BossLevel {
		return grid
	}
	if ctx.params.Arena {
		return buildArena(ctx, grid, surface)
	}

	p := ctx.params
	lo := int(float64(p.Width) * bossZoneStart)
	col := ctx.clampCol(lo + rng.Intn(ctx.rng, p.Width-lo))

	top, _ := surfaceAt(surface, col)
	row := top - bossClearance
	if row < minBossRow {
		row = minBossRow
	}

	boss := pickBoss(ctx, col, row)
	ctx.add(boss)

	for _, offset := range []int{-entourageOffset, entourageOffset} {
		flank := ctx.clampCol(col + offset)
		flankTop, _ := surfaceAt(surface, flank)
		spawnSquad(ctx, flank, groundRow(surface, flankTop-1), false, entities.RoleEntourage)
	}

	ctx.log.Debug("boss placed", "kind", boss.Kind.String(), "col", col, "row", boss.Row())
	return grid
}

// pickBoss chooses the ground or airborne variant. Airborne bosses float
// airborneLift rows higher, clamped to minBossRow.
func pickBoss(ctx *genContext, col, row int) entities.Spawn {
	if difficulty.AirborneBossAllowed(ctx.params.Difficulty) && ctx.chance(airborneChance) {
		row -= airborneLift
		if row < minBossRow {
			row = minBossRow
		}
		s := entities.At(entities.AirBoss, col, row)
		s.Role = entities.RoleBoss
		s.Airborne = true
		return s
	}
	s := entities.At(entities.GroundBoss, col, row)
	s.Role = entities.RoleBoss
	return s
}

// buildArena shapes the tail of the level into the boss room: Stone floor,
// cleared interior, a Metal wall sealing the entrance from the top row down
// to the floor and a ladder up the cliff face in front of it, ending one row
// below the top of the wall. The boss stands in the middle with a heavy
// gunner turret near each end.
func buildArena(ctx *genContext, grid *world.Grid, surface []int) *world.Grid {
	p := ctx.params
	left := ctx.arenaStart()
	right := p.Width - 2

	grid.FillRect(arenaFloorRow, left, p.Height-1, right, world.Stone)
	grid.FillRect(0, left+1, arenaFloorRow-1, right, world.Empty)
	grid.FillColumn(left, 0, arenaFloorRow-1, world.Metal)

	approach := left - 1
	if grid.IsPlayableColumn(approach) {
		foot, ok := surfaceAt(surface, approach)
		if !ok {
			foot = p.Height - bedrockRows
		}
		grid.FillColumn(approach, 1, foot-1, world.Ladder)
	}

	boss := pickBoss(ctx, left+arenaCols/2, arenaFloorRow-bossClearance+1)
	ctx.add(boss)

	squad := ctx.nextSquad()
	for _, col := range []int{left + arenaTurretInset, right - arenaTurretInset} {
		s := entities.At(entities.HeavyGunner, col, arenaFloorRow-1)
		s.Squad = squad
		s.Role = entities.RoleTurret
		s.Turret = true
		ctx.add(s)
	}

	ctx.log.Debug("boss arena built", "left", left, "kind", boss.Kind.String())
	return grid
}
