// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/entities"
	"cagebreak/pkg/game/generator"
	"cagebreak/pkg/game/renderer"
)

const mapDumpFilename = "level.txt"

// writeMapGrid writes the tile map with spawn glyphs overlaid
func writeMapGrid(w io.Writer, lvl *generator.Level, idx map[renderer.Cell]renderer.Marker) {
	line := make([]rune, lvl.Width())
	for row := 0; row < lvl.Height(); row++ {
		for col := 0; col < lvl.Width(); col++ {
			if m, ok := idx[renderer.Cell{Row: row, Col: col}]; ok {
				line[col] = m.Glyph
				continue
			}
			tile, _ := lvl.Grid.Get(row, col)
			line[col] = renderer.TileGlyph(tile)
		}
		fmt.Fprintln(w, string(line))
	}
}

// WriteLevel writes a full debug dump of lvl to w: metadata, legend, the
// map with spawns overlaid, and the spawn list grouped by squad. Format is
// sections with key: value lines.
func WriteLevel(w io.Writer, lvl *generator.Level, seed int64) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level")
	}

	markers, err := renderer.Markers(lvl.Spawns)
	if err != nil {
		return fmt.Errorf("build markers: %w", err)
	}

	bw := bufio.NewWriter(w)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== LEVEL DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "difficulty: %d\n", lvl.Difficulty)
	fmt.Fprintf(bw, "seed: %d\n", seed)
	fmt.Fprintf(bw, "biome: %s\n", lvl.Biome)
	fmt.Fprintf(bw, "grid_rows: %d\n", lvl.Height())
	fmt.Fprintf(bw, "grid_cols: %d\n", lvl.Width())
	fmt.Fprintf(bw, "tile_size: %d\n", world.TileSize)
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(bw, "spawns: %d\n", len(lvl.Spawns))
	fmt.Fprintf(bw, "checkpoints: %d\n", lvl.Grid.Count(world.Checkpoint))
	pits := 0
	for col := 0; col < lvl.Width(); col++ {
		if lvl.IsPit(col) {
			pits++
		}
	}
	fmt.Fprintf(bw, "pits: %d\n", pits)
	if problem := lvl.Validate(); problem != "" {
		fmt.Fprintf(bw, "validate: %q\n", problem)
	} else {
		fmt.Fprintln(bw, "validate: ok")
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend ---")
	for _, e := range renderer.TileLegend() {
		fmt.Fprintf(bw, "%c = %s\n", e.Glyph, e.Label)
	}
	for _, e := range renderer.KindLegend() {
		fmt.Fprintf(bw, "%c = %s\n", e.Glyph, e.Label)
	}
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	writeMapGrid(bw, lvl, renderer.MarkerIndex(markers))
	fmt.Fprintln(bw, "")

	// --- Surface ---
	fmt.Fprintln(bw, "--- Surface (row per column, pit = -) ---")
	for col := 0; col < lvl.Width(); col++ {
		if row, ok := lvl.SurfaceAt(col); ok {
			fmt.Fprintf(bw, "%d", row)
		} else {
			fmt.Fprint(bw, "-")
		}
		if col < lvl.Width()-1 {
			fmt.Fprint(bw, " ")
		}
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "")

	// --- Spawns ---
	fmt.Fprintln(bw, "--- Spawns ---")
	for i, s := range lvl.Spawns {
		fmt.Fprintf(bw, "  index: %d kind: %s row: %d col: %d x: %.0f y: %.0f squad: %d role: %s", i, s.Kind, s.Row(), s.Col(), s.X, s.Y, s.Squad, s.Role)
		if s.Hanging {
			fmt.Fprint(bw, " hanging: true")
		}
		if s.Airborne {
			fmt.Fprint(bw, " airborne: true")
		}
		if s.Turret {
			fmt.Fprint(bw, " turret: true")
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "")

	// --- Squads ---
	fmt.Fprintln(bw, "--- Squads ---")
	squads := entities.Squads(lvl.Spawns)
	ids := make([]int, 0, len(squads))
	for id := range squads {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, squad := range ids {
		members := squads[squad]
		fmt.Fprintf(bw, "  squad: %d size: %d role: %s leader_col: %d\n", squad, len(members), members[0].Role, members[0].Col())
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END LEVEL DUMP ===")
	return bw.Flush()
}

// DumpLevelToFile writes the WriteLevel dump to path (level.txt in the
// working directory when path is empty) and returns the absolute path.
func DumpLevelToFile(lvl *generator.Level, seed int64, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	if err := WriteLevel(f, lvl, seed); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
