package generator

import (
	"fmt"
	"sort"

	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
)

// Validate checks the level-wide placement invariants and returns an error
// description or empty string if valid
func (l *Level) Validate() string {
	if l.Grid == nil {
		return "Level has no grid"
	}
	if err := l.Grid.Validate(); err != "" {
		return err
	}

	p := difficulty.ParamsFor(l.Difficulty)
	if l.Height() != p.Height || l.Width() != p.Width {
		return fmt.Sprintf("Level is %dx%d, want %dx%d", l.Height(), l.Width(), p.Height, p.Width)
	}
	if len(l.Surface) != l.Width() {
		return fmt.Sprintf("Surface map has %d entries, want %d", len(l.Surface), l.Width())
	}

	for row := 0; row < l.Height(); row++ {
		if l.Grid.Type(row, 0) != world.Stone || l.Grid.Type(row, l.Width()-1) != world.Stone {
			return fmt.Sprintf("Border breached at row %d", row)
		}
	}

	if n := entities.Count(l.Spawns, entities.Captain); n != 1 {
		return fmt.Sprintf("Level has %d captains, want 1", n)
	}

	bosses := len(entities.Filter(l.Spawns, func(s entities.Spawn) bool { return s.Kind.IsBoss() }))
	wantBosses := 0
	if p.BossLevel {
		wantBosses = 1
	}
	if bosses != wantBosses {
		return fmt.Sprintf("Level has %d bosses, want %d", bosses, wantBosses)
	}

	if n := l.Grid.Count(world.Checkpoint); n > p.CheckpointCap {
		return fmt.Sprintf("Level has %d checkpoints, cap is %d", n, p.CheckpointCap)
	}
	if n := l.Grid.Count(world.Goal); n != 1 {
		return fmt.Sprintf("Level has %d exits, want 1", n)
	}

	if err := checkCageSpacing(l.Spawns); err != "" {
		return err
	}

	maxX := float64(l.Width() * world.TileSize)
	maxY := float64(l.Height() * world.TileSize)
	for i, s := range l.Spawns {
		if !s.Kind.IsValid() {
			return fmt.Sprintf("Spawn %d has invalid kind %d", i, int(s.Kind))
		}
		if s.X < 0 || s.X >= maxX || s.Y < 0 || s.Y >= maxY {
			return fmt.Sprintf("Spawn %d (%v) at %.0f,%.0f is outside the level", i, s.Kind, s.X, s.Y)
		}
		if s.Kind != entities.BridgeBlock && l.Grid.Type(s.Row(), s.Col()).IsSolid() {
			return fmt.Sprintf("Spawn %d (%v) at %d,%d starts inside solid ground", i, s.Kind, s.Row(), s.Col())
		}
	}

	return ""
}

// checkCageSpacing verifies that no two cages are closer than cageSpacing
// columns and that there are at most maxCages.
func checkCageSpacing(spawns []entities.Spawn) string {
	var cols []int
	for _, s := range spawns {
		if s.Kind == entities.RescueCage {
			cols = append(cols, s.Col())
		}
	}
	if len(cols) > maxCages {
		return fmt.Sprintf("Level has %d cages, cap is %d", len(cols), maxCages)
	}
	sort.Ints(cols)
	for i := 1; i < len(cols); i++ {
		if cols[i]-cols[i-1] < cageSpacing {
			return fmt.Sprintf("Cages at columns %d and %d are closer than %d", cols[i-1], cols[i], cageSpacing)
		}
	}
	return ""
}
