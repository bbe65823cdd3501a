package generator

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
)

// Layout constants shared by the stages
const (
	startHeight   = 35 // surface row of the landing zone, also the fallback row
	safeZoneCols  = 15 // columns pinned flat with Stone fill
	minSurfaceRow = 6
	surfaceMargin = 10 // deepest surface is LevelHeight-surfaceMargin
	bedrockRows   = 2

	arenaCols     = 40 // tail columns reserved for the boss arena
	arenaFloorRow = 12

	endZoneCols = 60 // tail columns where the captain is forced

	maxCages    = 8
	cageSpacing = 30 // minimum column distance between any two cages
)

// genContext carries the counters that several stages share. One context
// lives for exactly one Generate call.
type genContext struct {
	rng    rng.Source
	log    *slog.Logger
	params difficulty.Params

	spawns []entities.Spawn

	cageCols       mapset.Set[int]
	captainSpawned bool
	checkpoints    int
	nextCheckpoint int
	lastEncounterX int
	squadSeq       int
}

func newContext(d int, src rng.Source, logger *slog.Logger) *genContext {
	p := difficulty.ParamsFor(d)
	return &genContext{
		rng:            src,
		log:            logger.With("difficulty", p.Difficulty),
		params:         p,
		cageCols:       mapset.New[int](),
		nextCheckpoint: p.CheckpointInterval,
		lastEncounterX: safeZoneCols,
	}
}

// chance draws once from the source
func (c *genContext) chance(p float64) bool {
	return rng.Chance(c.rng, p)
}

// add appends a spawn to the level's list
func (c *genContext) add(s entities.Spawn) {
	c.spawns = append(c.spawns, s)
}

// nextSquad returns a fresh squad id (1-based)
func (c *genContext) nextSquad() int {
	c.squadSeq++
	return c.squadSeq
}

// maxCol is the last column open to ordinary placements: the column before
// the right border, or before the arena on arena levels.
func (c *genContext) maxCol() int {
	if c.params.Arena {
		return c.arenaStart() - 1
	}
	return c.params.Width - 2
}

// clampCol keeps a column inside [1, maxCol]
func (c *genContext) clampCol(col int) int {
	if col < 1 {
		return 1
	}
	if col > c.maxCol() {
		return c.maxCol()
	}
	return col
}

// fitRun shifts a run of size consecutive columns starting at start so the
// whole run stays inside [1, maxCol].
func (c *genContext) fitRun(start, size int) int {
	if start+size-1 > c.maxCol() {
		start = c.maxCol() - size + 1
	}
	if start < 1 {
		start = 1
	}
	return start
}

// clampRow keeps a row inside the grid
func (c *genContext) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row > c.params.Height-1 {
		return c.params.Height - 1
	}
	return row
}

func (c *genContext) inSafeZone(col int) bool {
	return col < safeZoneCols
}

// inArena reports whether col belongs to the boss arena tail
func (c *genContext) inArena(col int) bool {
	return c.params.Arena && col >= c.arenaStart()
}

func (c *genContext) arenaStart() int {
	return c.params.Width - arenaCols
}

// towerLeft is the left column of the end-zone tower footprint. The tower
// is only built when no captain was placed, but its columns are reserved
// from the start so nothing is carved beneath it.
func (c *genContext) towerLeft() int {
	if c.params.Arena {
		return c.arenaStart() - arenaTowerMargin - towerWidth
	}
	return c.params.Width - towerOffset
}

func (c *genContext) inTowerFootprint(col int) bool {
	left := c.towerLeft()
	return col >= left && col < left+towerWidth
}

// canPlaceCage checks the global cage cap and spacing against every cage
// placed so far, whichever stage placed it.
func (c *genContext) canPlaceCage(col int) bool {
	if c.cageCols.Size() >= maxCages {
		return false
	}
	ok := true
	c.cageCols.Each(func(other int) {
		if abs(other-col) < cageSpacing {
			ok = false
		}
	})
	return ok
}

// placeCage records a rescue cage at the tile position
func (c *genContext) placeCage(col, row int, hanging bool) {
	c.cageCols.Put(col)
	s := entities.At(entities.RescueCage, col, c.clampRow(row))
	s.Role = entities.RoleObject
	s.Hanging = hanging
	c.add(s)
}

// pitSentinel is the surface value marking a column with no ground.
func pitSentinel(height int) int {
	return height + 10
}

// surfaceAt returns the surface row of col, or the fallback row and false
// when col is out of range or a pit.
func surfaceAt(surface []int, col int) (int, bool) {
	if col < 0 || col >= len(surface) {
		return startHeight, false
	}
	row := surface[col]
	if row < 0 || row >= difficulty.LevelHeight {
		return startHeight, false
	}
	return row, true
}

func clampSurface(row, height int) int {
	if row < minSurfaceRow {
		return minSurfaceRow
	}
	if row > height-surfaceMargin {
		return height - surfaceMargin
	}
	return row
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
