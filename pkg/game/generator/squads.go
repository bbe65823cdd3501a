package generator

import (
	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/game/entities"
)

// Composition bands, checked in this order against one draw
const (
	shieldBand   = 0.25 // difficulty >= 5
	heavyBand    = 0.35 // difficulty >= 7
	kamikazeBand = 0.45 // difficulty >= 3
)

// rowFunc returns the row a squad member stands on in the given column
type rowFunc func(col int) int

// flatRow stands every member on the same row, e.g. a tower roof
func flatRow(row int) rowFunc {
	return func(int) int { return row }
}

// groundRow stands each member on its own column's surface. Pit columns
// fall back to row.
func groundRow(surface []int, row int) rowFunc {
	return func(col int) int {
		if top, ok := surfaceAt(surface, col); ok {
			return top - 1
		}
		return row
	}
}

// spawnSquad places one squad with its leader in col and returns the squad
// id. Each member's row comes from rowAt for that member's column. A forced
// request places the captain if none exists yet, which consumes the captain
// flag for the rest of the level; otherwise the composition comes from the
// difficulty bands.
func spawnSquad(ctx *genContext, col int, rowAt rowFunc, forceCaptain bool, role entities.Role) int {
	id := ctx.nextSquad()

	if forceCaptain && !ctx.captainSpawned {
		ctx.captainSpawned = true
		col = ctx.fitRun(col-1, 3) + 1
		addUnit(ctx, entities.Captain, col, rowAt(col), id, entities.RoleCaptain)
		for i, kind := range captainEscorts(ctx.params.Difficulty) {
			offset := -1
			if i%2 == 1 {
				offset = 1
			}
			addUnit(ctx, kind, col+offset, rowAt(col+offset), id, entities.RoleEscort)
		}
		ctx.log.Debug("captain placed", "col", col, "row", rowAt(col), "squad", id)
		return id
	}

	members := composeSquad(ctx)
	col = ctx.fitRun(col, len(members))
	for i, kind := range members {
		addUnit(ctx, kind, col+i, rowAt(col+i), id, role)
	}
	return id
}

// captainEscorts returns the two flanking guards for the captain
func captainEscorts(d int) []entities.Kind {
	switch {
	case d >= 5:
		return []entities.Kind{entities.ShieldBearer, entities.ShieldBearer}
	case d >= 3:
		return []entities.Kind{entities.ShieldBearer, entities.Grunt}
	default:
		return []entities.Kind{entities.Grunt, entities.Grunt}
	}
}

// composeSquad picks the squad members. Only the first matching band fires.
func composeSquad(ctx *genContext) []entities.Kind {
	d := ctx.params.Difficulty
	r := ctx.rng.Float64()

	switch {
	case d >= 5 && r < shieldBand:
		return []entities.Kind{entities.ShieldBearer, entities.ShieldBearer, entities.Grunt}
	case d >= 7 && r < heavyBand:
		return []entities.Kind{entities.HeavyGunner, entities.Grunt}
	case d >= 3 && r < kamikazeBand:
		return []entities.Kind{entities.Kamikaze, entities.Kamikaze, entities.Kamikaze}
	}

	size := 1 + rng.Intn(ctx.rng, ctx.params.PatrolMax)
	patrol := make([]entities.Kind, size)
	for i := range patrol {
		patrol[i] = entities.Grunt
	}
	return patrol
}

// addUnit records one squad member, clamped to the open columns and rows
func addUnit(ctx *genContext, kind entities.Kind, col, row, squad int, role entities.Role) {
	s := entities.At(kind, ctx.clampCol(col), ctx.clampRow(row))
	s.Squad = squad
	s.Role = role
	ctx.add(s)
}
