// Package difficulty holds every difficulty-driven curve used by level
// generation. All functions are pure functions of the difficulty index
// (1-based); out-of-range input is clamped rather than rejected.
package difficulty

import (
	"github.com/leonelquinteros/gotext"
)

// LevelHeight is the fixed number of tile rows in every level.
const LevelHeight = 60

// Biome is the cosmetic theme of a level. It only affects coloring
// (and the lava/spike choice for pit floors).
type Biome int

const (
	Forest  Biome = iota // difficulty 1-2
	City                 // difficulty 3-4
	Volcano              // difficulty 5+
)

// String returns the biome identifier
func (b Biome) String() string {
	switch b {
	case City:
		return "city"
	case Volcano:
		return "volcano"
	default:
		return "forest"
	}
}

// Label returns the translated biome name. Uses gotext.Get with constant keys.
func (b Biome) Label() string {
	switch b {
	case City:
		return gotext.Get("BIOME_CITY")
	case Volcano:
		return gotext.Get("BIOME_VOLCANO")
	default:
		return gotext.Get("BIOME_FOREST")
	}
}

// Clamp maps any difficulty to the nearest valid value (>= 1).
func Clamp(d int) int {
	if d < 1 {
		return 1
	}
	return d
}

// BiomeFor returns the biome for the given difficulty.
func BiomeFor(d int) Biome {
	d = Clamp(d)
	switch {
	case d < 3:
		return Forest
	case d < 5:
		return City
	default:
		return Volcano
	}
}

// LevelWidth returns the number of columns.
// 1: 200, 2: 250, 3: 300, 4: 350, 5+: 400
func LevelWidth(d int) int {
	d = Clamp(d)
	if d >= 5 {
		return 400
	}
	return 200 + (d-1)*50
}

// Roughness is the per-column probability of the surface stepping up or
// down. From difficulty 16 it reaches 1 and the surface moves every column.
func Roughness(d int) float64 {
	d = Clamp(d)
	if d <= 2 {
		return 0.1
	}
	return 0.2 + 0.05*float64(d)
}

// PitChance is the per-column probability of carving a pit.
func PitChance(d int) float64 {
	d = Clamp(d)
	if d == 1 {
		return 0
	}
	return 0.005 + 0.01*float64(d)
}

// HazardChance is the per-column probability of an ambient propane hazard.
func HazardChance(d int) float64 {
	return 0.03 + 0.01*float64(Clamp(d))
}

// EncounterGap is the minimum column gap between roaming squads.
func EncounterGap(d int) int {
	gap := 30 - Clamp(d)
	if gap < 12 {
		gap = 12
	}
	return gap
}

// CheckpointCap is the maximum number of checkpoints in a level.
func CheckpointCap(d int) int {
	if Clamp(d) >= 5 {
		return 3
	}
	return 5
}

// CheckpointInterval is the minimum column gap between checkpoints.
func CheckpointInterval(d int) int {
	w := LevelWidth(d)
	if Clamp(d) >= 5 {
		return w / 4
	}
	return w / 6
}

// PatrolMax is the largest standard grunt patrol: 1 at 1-2, 2 at 3-5, 3 at 6+.
func PatrolMax(d int) int {
	n := 1 + Clamp(d)/3
	if n > 3 {
		n = 3
	}
	return n
}

// IsBossLevel is true on every 5th difficulty from 10 upward.
func IsBossLevel(d int) bool {
	d = Clamp(d)
	return d >= 10 && d%5 == 0
}

// HasArena is true for boss levels that append a sealed boss arena.
func HasArena(d int) bool {
	return IsBossLevel(d) && Clamp(d) >= 20
}

// AirborneBossAllowed reports whether the flying boss variant may be picked.
func AirborneBossAllowed(d int) bool {
	d = Clamp(d)
	return d >= 14 && d%2 == 0
}

// Params bundles the curves for one level.
type Params struct {
	Difficulty         int
	Biome              Biome
	Width              int
	Height             int
	Roughness          float64
	PitChance          float64
	HazardChance       float64
	EncounterGap       int
	CheckpointCap      int
	CheckpointInterval int
	PatrolMax          int
	BossLevel          bool
	Arena              bool
}

// ParamsFor returns the parameters for the given difficulty.
func ParamsFor(d int) Params {
	d = Clamp(d)
	return Params{
		Difficulty:         d,
		Biome:              BiomeFor(d),
		Width:              LevelWidth(d),
		Height:             LevelHeight,
		Roughness:          Roughness(d),
		PitChance:          PitChance(d),
		HazardChance:       HazardChance(d),
		EncounterGap:       EncounterGap(d),
		CheckpointCap:      CheckpointCap(d),
		CheckpointInterval: CheckpointInterval(d),
		PatrolMax:          PatrolMax(d),
		BossLevel:          IsBossLevel(d),
		Arena:              HasArena(d),
	}
}
