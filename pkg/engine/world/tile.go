// Package world provides the 2D tile grid primitives shared by the level
// generator and its downstream collaborators (physics, rendering).
package world

// TileSize is the pixel size of one grid cell. Spawn positions are
// expressed in pixels as column*TileSize, row*TileSize.
const TileSize = 16

// TileType is the terrain type of a single cell. The numeric values are
// the wire format consumed by physics and rendering and must not change.
type TileType int

const (
	Empty      TileType = 0 // passable
	Dirt       TileType = 1 // solid, destructible by explosions
	Stone      TileType = 2 // solid, indestructible
	Metal      TileType = 3 // solid, destructible by large explosions only
	Hazard     TileType = 4 // solid, damages on contact
	Checkpoint TileType = 5 // trigger, Active toggled by the player collaborator
	Ladder     TileType = 6 // climbable, non-solid
	Goal       TileType = 9 // level exit trigger
)

// Hazard variants, stored in Tile.ID for Hazard tiles.
const (
	HazardSpikes = 1
	HazardLava   = 2
)

// AllTileTypes returns every valid tile type in wire order.
func AllTileTypes() []TileType {
	return []TileType{Empty, Dirt, Stone, Metal, Hazard, Checkpoint, Ladder, Goal}
}

// IsValid returns true if t is one of the defined wire values.
func (t TileType) IsValid() bool {
	switch t {
	case Empty, Dirt, Stone, Metal, Hazard, Checkpoint, Ladder, Goal:
		return true
	default:
		return false
	}
}

// String returns the name of the tile type
func (t TileType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Dirt:
		return "Dirt"
	case Stone:
		return "Stone"
	case Metal:
		return "Metal"
	case Hazard:
		return "Hazard"
	case Checkpoint:
		return "Checkpoint"
	case Ladder:
		return "Ladder"
	case Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// IsSolid reports whether the solid-collision pass treats the tile as ground.
func (t TileType) IsSolid() bool {
	switch t {
	case Dirt, Stone, Metal, Hazard:
		return true
	case Empty, Checkpoint, Ladder, Goal:
		return false
	default:
		return false
	}
}

// IsClimbable is true only for ladders.
func (t TileType) IsClimbable() bool {
	return t == Ladder
}

// IsDestructible reports whether explosions of the given radius class can
// remove the tile. Metal needs a large blast.
func (t TileType) IsDestructible(largeBlast bool) bool {
	switch t {
	case Dirt:
		return true
	case Metal:
		return largeBlast
	case Empty, Stone, Hazard, Checkpoint, Ladder, Goal:
		return false
	default:
		return false
	}
}

// Tile is one cell of the level grid.
type Tile struct {
	Type TileType

	// Active is only meaningful for checkpoints. The generator always
	// leaves it false.
	Active bool

	// Color is an optional cosmetic hint ("#rrggbb"), filled by the
	// generator for hazards and by the palette pass for everything else.
	Color string

	// ID is a per-type identifier: the hazard variant for Hazard tiles, the
	// 1-based checkpoint number for Checkpoint tiles.
	ID int
}
