// Package generator tests the full pipeline: grid shape, border sealing,
// the one-captain guarantee, boss cadence, checkpoint caps and cage spacing.
package generator

import (
	"io"
	"log/slog"
	"testing"

	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
)

// quietLogger discards everything the generator logs.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// generate runs one seeded generation.
func generate(t *testing.T, d int, seed int64) *Level {
	t.Helper()
	lvl := New(rng.Seeded(seed), quietLogger()).Generate(d)
	if lvl == nil {
		t.Fatalf("Generate(%d) returned nil", d)
	}
	return lvl
}

// countSquadsWithRole returns how many distinct squads contain a unit with role.
func countSquadsWithRole(spawns []entities.Spawn, role entities.Role) int {
	ids := make(map[int]bool)
	for _, s := range spawns {
		if s.Role == role && s.Squad != 0 {
			ids[s.Squad] = true
		}
	}
	return len(ids)
}

func bosses(spawns []entities.Spawn) []entities.Spawn {
	return entities.Filter(spawns, func(s entities.Spawn) bool { return s.Kind.IsBoss() })
}

func TestGenerate_InvariantsHoldAcrossDifficulties(t *testing.T) {
	for d := 1; d <= 30; d++ {
		for seed := int64(1); seed <= 6; seed++ {
			lvl := generate(t, d, seed)
			if err := lvl.Validate(); err != "" {
				t.Errorf("difficulty %d seed %d: %s", d, seed, err)
			}
		}
	}
}

func TestGenerate_GridShape(t *testing.T) {
	for _, d := range []int{1, 2, 3, 4, 5, 9, 15} {
		lvl := generate(t, d, 11)
		if lvl.Height() != difficulty.LevelHeight {
			t.Errorf("difficulty %d: rows = %d, want %d", d, lvl.Height(), difficulty.LevelHeight)
		}
		if lvl.Width() != difficulty.LevelWidth(d) {
			t.Errorf("difficulty %d: cols = %d, want %d", d, lvl.Width(), difficulty.LevelWidth(d))
		}
		lvl.Grid.ForEachTile(func(row, col int, tile world.Tile) {
			if !tile.Type.IsValid() {
				t.Fatalf("difficulty %d: tile %d,%d has invalid type %d", d, row, col, int(tile.Type))
			}
		})
	}
}

func TestGenerate_BordersAreStone(t *testing.T) {
	for _, d := range []int{1, 6, 20} {
		lvl := generate(t, d, 3)
		for row := 0; row < lvl.Height(); row++ {
			if lvl.Grid.Type(row, 0) != world.Stone {
				t.Fatalf("difficulty %d: column 0 row %d = %v, want Stone", d, row, lvl.Grid.Type(row, 0))
			}
			if lvl.Grid.Type(row, lvl.Width()-1) != world.Stone {
				t.Fatalf("difficulty %d: last column row %d = %v, want Stone", d, row, lvl.Grid.Type(row, lvl.Width()-1))
			}
		}
	}
}

func TestGenerate_ExactlyOneCaptain(t *testing.T) {
	for d := 1; d <= 25; d++ {
		lvl := generate(t, d, int64(100+d))
		if n := entities.Count(lvl.Spawns, entities.Captain); n != 1 {
			t.Errorf("difficulty %d: %d captains, want 1", d, n)
		}
	}
}

func TestGenerate_BossCadence(t *testing.T) {
	for d := 1; d <= 35; d++ {
		lvl := generate(t, d, int64(d))
		want := 0
		if d >= 10 && d%5 == 0 {
			want = 1
		}
		if got := len(bosses(lvl.Spawns)); got != want {
			t.Errorf("difficulty %d: %d bosses, want %d", d, got, want)
		}
	}
}

func TestGenerate_CheckpointCaps(t *testing.T) {
	for d := 1; d <= 12; d++ {
		lvl := generate(t, d, 7)
		n := lvl.Grid.Count(world.Checkpoint)
		limit := 5
		if d >= 5 {
			limit = 3
		}
		if n > limit {
			t.Errorf("difficulty %d: %d checkpoints, want <= %d", d, n, limit)
		}
		lvl.Grid.ForEachTile(func(row, col int, tile world.Tile) {
			if tile.Type == world.Checkpoint && tile.Active {
				t.Errorf("difficulty %d: checkpoint %d,%d generated active", d, row, col)
			}
		})
	}
}

func TestGenerate_CageSpacing(t *testing.T) {
	for d := 1; d <= 20; d++ {
		for seed := int64(1); seed <= 4; seed++ {
			lvl := generate(t, d, seed*31)
			var cols []int
			for _, s := range lvl.Spawns {
				if s.Kind == entities.RescueCage {
					cols = append(cols, s.Col())
				}
			}
			for i := range cols {
				for j := i + 1; j < len(cols); j++ {
					if abs(cols[i]-cols[j]) < cageSpacing {
						t.Errorf("difficulty %d seed %d: cages at %d and %d", d, seed, cols[i], cols[j])
					}
				}
			}
		}
	}
}

func TestGenerate_NoSpawnInsideSolidGround(t *testing.T) {
	for _, d := range []int{1, 3, 5, 7, 10, 15, 16, 20, 25, 30} {
		for seed := int64(1); seed <= 12; seed++ {
			lvl := generate(t, d, seed)
			for _, s := range lvl.Spawns {
				if s.Kind == entities.BridgeBlock {
					continue
				}
				if got := lvl.Grid.Type(s.Row(), s.Col()); got.IsSolid() {
					t.Errorf("difficulty %d seed %d: %v (%v) at %d,%d inside %v",
						d, seed, s.Kind, s.Role, s.Row(), s.Col(), got)
				}
			}
		}
	}
}

func TestGenerate_ClampsDifficulty(t *testing.T) {
	lvl := generate(t, -4, 1)
	if lvl.Difficulty != 1 {
		t.Errorf("Difficulty = %d, want 1", lvl.Difficulty)
	}
	if lvl.Width() != 200 {
		t.Errorf("Width = %d, want 200", lvl.Width())
	}
	if err := lvl.Validate(); err != "" {
		t.Error(err)
	}
}

func TestScenario_Difficulty1(t *testing.T) {
	lvl := generate(t, 1, 42)
	if lvl.Width() != 200 {
		t.Errorf("Width = %d, want 200", lvl.Width())
	}
	if lvl.Biome.String() != "forest" {
		t.Errorf("Biome = %v, want forest", lvl.Biome)
	}
	if n := len(bosses(lvl.Spawns)); n != 0 {
		t.Errorf("%d bosses, want 0", n)
	}
	if n := entities.Count(lvl.Spawns, entities.Captain); n != 1 {
		t.Errorf("%d captains, want 1", n)
	}
	for col := 0; col < safeZoneCols; col++ {
		if top, _ := lvl.SurfaceAt(col); top != startHeight {
			t.Errorf("safe zone column %d surface = %d, want %d", col, top, startHeight)
		}
	}
}

func TestScenario_Difficulty10(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		lvl := generate(t, 10, seed)
		if lvl.Width() != 400 {
			t.Fatalf("Width = %d, want 400", lvl.Width())
		}
		b := bosses(lvl.Spawns)
		if len(b) != 1 {
			t.Fatalf("seed %d: %d bosses, want 1", seed, len(b))
		}
		if b[0].Kind != entities.GroundBoss {
			t.Errorf("seed %d: boss = %v, want ground boss (airborne needs even difficulty >= 14)", seed, b[0].Kind)
		}
		if col := b[0].Col(); col < int(float64(lvl.Width())*bossZoneStart) {
			t.Errorf("seed %d: boss at column %d, want final 30%%", seed, col)
		}
		if n := countSquadsWithRole(lvl.Spawns, entities.RoleEntourage); n != 2 {
			t.Errorf("seed %d: %d entourage squads, want 2", seed, n)
		}
	}
}

func TestScenario_Difficulty20Arena(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		lvl := generate(t, 20, seed)
		if lvl.Width() != 400 {
			t.Fatalf("Width = %d, want 400", lvl.Width())
		}
		arena := lvl.Width() - arenaCols

		b := bosses(lvl.Spawns)
		if len(b) != 1 {
			t.Fatalf("seed %d: %d bosses, want 1", seed, len(b))
		}
		if b[0].Col() < arena {
			t.Errorf("seed %d: boss at column %d, want >= %d", seed, b[0].Col(), arena)
		}

		turrets := entities.Filter(lvl.Spawns, func(s entities.Spawn) bool {
			return s.Kind == entities.HeavyGunner && s.Turret
		})
		if len(turrets) != 2 {
			t.Errorf("seed %d: %d turret guards, want 2", seed, len(turrets))
		}
		for _, tr := range turrets {
			if tr.Col() < arena {
				t.Errorf("seed %d: turret at column %d outside arena", seed, tr.Col())
			}
		}

		for row := 0; row < arenaFloorRow; row++ {
			if got := lvl.Grid.Type(row, arena); got != world.Metal {
				t.Errorf("seed %d: entrance wall row %d = %v, want Metal", seed, row, got)
			}
		}
		for col := arena; col < lvl.Width()-1; col++ {
			if got := lvl.Grid.Type(arenaFloorRow, col); got != world.Stone {
				t.Errorf("seed %d: arena floor column %d = %v, want Stone", seed, col, got)
			}
		}
		for _, s := range lvl.Spawns {
			if s.Col() > arena && s.Role != entities.RoleBoss && s.Role != entities.RoleTurret {
				t.Errorf("seed %d: %v (%v) placed inside arena", seed, s.Kind, s.Role)
			}
		}
	}
}

func TestGenerate_ShapeIdempotence(t *testing.T) {
	a := generate(t, 8, 1)
	b := generate(t, 8, 2)
	if a.Width() != b.Width() || a.Height() != b.Height() {
		t.Errorf("shapes differ: %dx%d vs %dx%d", a.Height(), a.Width(), b.Height(), b.Width())
	}
	if a.Validate() != "" || b.Validate() != "" {
		t.Errorf("validate: %q / %q", a.Validate(), b.Validate())
	}
}

func TestGenerateLevel_DefaultGenerator(t *testing.T) {
	if DefaultGenerator.Name() == "" {
		t.Error("DefaultGenerator has no name")
	}
	lvl := GenerateLevel(3)
	if err := lvl.Validate(); err != "" {
		t.Error(err)
	}
}

func TestLevel_Validate_ReportsBreaches(t *testing.T) {
	lvl := generate(t, 2, 5)
	lvl.Grid.Set(10, 0, world.Empty)
	if lvl.Validate() == "" {
		t.Error("Validate accepted a breached border")
	}

	lvl = generate(t, 2, 5)
	lvl.Spawns = append(lvl.Spawns, entities.At(entities.Captain, 50, 10))
	if lvl.Validate() == "" {
		t.Error("Validate accepted two captains")
	}

	lvl = generate(t, 2, 5)
	lvl.Spawns = append(lvl.Spawns, entities.At(entities.GroundBoss, 50, 10))
	if lvl.Validate() == "" {
		t.Error("Validate accepted a boss on a non-boss level")
	}

	lvl = generate(t, 2, 5)
	lvl.Spawns = append(lvl.Spawns, entities.At(entities.Grunt, 50, lvl.Height()-1))
	if lvl.Validate() == "" {
		t.Error("Validate accepted a spawn inside bedrock")
	}

	if (&Level{}).Validate() == "" {
		t.Error("Validate accepted a level without grid")
	}
}
