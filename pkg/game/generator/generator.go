package generator

import (
	"log/slog"

	"cagebreak/pkg/engine/rng"
	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
	"cagebreak/pkg/game/entities"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(difficulty int) *Level
	Name() string
}

// Level is the output of one generation run. Ownership passes to the
// caller; the generator never touches it again.
type Level struct {
	Difficulty int
	Biome      difficulty.Biome

	Grid    *world.Grid
	Surface []int // surface row per column, pitSentinel for pits
	Spawns  []entities.Spawn
}

// Width returns the number of columns
func (l *Level) Width() int {
	return l.Grid.Cols()
}

// Height returns the number of rows
func (l *Level) Height() int {
	return l.Grid.Rows()
}

// SurfaceAt returns the surface row of col; ok is false for pits and
// out-of-range columns, in which case row is the fallback row.
func (l *Level) SurfaceAt(col int) (row int, ok bool) {
	return surfaceAt(l.Surface, col)
}

// IsPit reports whether col has no ground
func (l *Level) IsPit(col int) bool {
	if col < 0 || col >= len(l.Surface) {
		return false
	}
	return l.Surface[col] == pitSentinel(l.Height())
}

// PlatformGenerator runs the multi-pass side-scroller pipeline
type PlatformGenerator struct {
	rng    rng.Source
	logger *slog.Logger
}

// New creates a generator drawing from src. A nil src uses the process-wide
// source; a nil logger uses slog.Default() at generation time.
func New(src rng.Source, logger *slog.Logger) *PlatformGenerator {
	if src == nil {
		src = rng.Global()
	}
	return &PlatformGenerator{rng: src, logger: logger}
}

// Name returns the name of this generator
func (g *PlatformGenerator) Name() string {
	return "Surface Walker"
}

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = New(nil, nil)

// GenerateLevel generates a level with the default generator
func GenerateLevel(d int) *Level {
	return DefaultGenerator.Generate(d)
}

// Generate runs every stage in dependency order. It always returns a
// structurally valid level; out-of-range difficulty is clamped.
func (g *PlatformGenerator) Generate(d int) *Level {
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx := newContext(d, g.rng, logger)

	grid, surface := walkSurface(ctx)
	grid = carveTunnels(ctx, grid, surface)
	grid = placeSurfaceFeatures(ctx, grid, surface)
	grid = sealBorders(grid)
	grid = guaranteeEndZone(ctx, grid, surface)
	grid = placeBoss(ctx, grid, surface)
	grid = placeExit(ctx, grid, surface)

	level := &Level{
		Difficulty: ctx.params.Difficulty,
		Biome:      ctx.params.Biome,
		Grid:       grid,
		Surface:    surface,
		Spawns:     ctx.spawns,
	}

	ctx.log.Info("level generated",
		"biome", level.Biome.String(),
		"width", level.Width(),
		"spawns", len(level.Spawns),
		"cages", ctx.cageCols.Size(),
		"checkpoints", ctx.checkpoints,
		"boss", ctx.params.BossLevel,
	)

	return level
}
