package entities

import (
	"cagebreak/pkg/engine/world"
)

// Role describes why a unit was placed
type Role int

const (
	RoleObject    Role = iota // Non-hostile placement (cage, tank, bridge, pickup)
	RolePatrol                // Roaming surface squad
	RoleCageGuard             // Guards a rescue cage
	RoleCaptain               // The captain itself
	RoleEscort                // Flanks the captain
	RoleEntourage             // Squad flanking a boss
	RoleTurret                // Static arena guard
	RoleAmbush                // Tunnel encounter
	RoleSentry                // Elevated sniper or flyer
	RoleBoss                  // The boss itself
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleObject:
		return "object"
	case RolePatrol:
		return "patrol"
	case RoleCageGuard:
		return "cage-guard"
	case RoleCaptain:
		return "captain"
	case RoleEscort:
		return "escort"
	case RoleEntourage:
		return "entourage"
	case RoleTurret:
		return "turret"
	case RoleAmbush:
		return "ambush"
	case RoleSentry:
		return "sentry"
	case RoleBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Spawn is a placement descriptor in pixel coordinates.
type Spawn struct {
	Kind Kind
	X, Y float64

	Squad int // squad id, 0 if not part of a squad
	Role  Role

	Hanging  bool // cage hung from a tunnel ceiling
	Airborne bool // flying unit or flying boss
	Turret   bool // static guard that does not patrol
}

// At creates a spawn for the given kind at a tile position
func At(kind Kind, col, row int) Spawn {
	return Spawn{
		Kind: kind,
		X:    float64(col * world.TileSize),
		Y:    float64(row * world.TileSize),
	}
}

// Col returns the tile column of the spawn
func (s Spawn) Col() int {
	return int(s.X) / world.TileSize
}

// Row returns the tile row of the spawn
func (s Spawn) Row() int {
	return int(s.Y) / world.TileSize
}

// Count returns how many spawns have the given kind
func Count(spawns []Spawn, kind Kind) int {
	n := 0
	for _, s := range spawns {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the spawns for which keep returns true
func Filter(spawns []Spawn, keep func(Spawn) bool) []Spawn {
	var out []Spawn
	for _, s := range spawns {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// Squads groups squad members by squad id. Spawns outside a squad are skipped.
func Squads(spawns []Spawn) map[int][]Spawn {
	squads := make(map[int][]Spawn)
	for _, s := range spawns {
		if s.Squad == 0 {
			continue
		}
		squads[s.Squad] = append(squads[s.Squad], s)
	}
	return squads
}
