// Package palette colors level tiles for the preview renderers. The
// generator leaves Tile.Color empty except on hazards; everything else is
// filled here from the biome palette, shaded with perlin noise.
package palette

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aquilax/go-perlin"

	"cagebreak/pkg/engine/world"
	"cagebreak/pkg/game/difficulty"
)

// Noise parameters
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	noiseScale   = 0.08
	shadeRange   = 0.18 // largest brightness shift either way
)

// Palette maps tile types to their base color for one biome.
type Palette map[world.TileType]string

var biomePalettes = map[difficulty.Biome]Palette{
	difficulty.Forest: {
		world.Dirt:       "#6b4f2a",
		world.Stone:      "#7a7a72",
		world.Metal:      "#8fa3b0",
		world.Hazard:     "#9e9e9e",
		world.Checkpoint: "#3fa34d",
		world.Ladder:     "#c8a165",
		world.Goal:       "#ffd700",
	},
	difficulty.City: {
		world.Dirt:       "#5c5249",
		world.Stone:      "#6e7378",
		world.Metal:      "#a0aab4",
		world.Hazard:     "#9e9e9e",
		world.Checkpoint: "#2e86de",
		world.Ladder:     "#d1b06b",
		world.Goal:       "#ffd700",
	},
	difficulty.Volcano: {
		world.Dirt:       "#4a2c21",
		world.Stone:      "#3d3533",
		world.Metal:      "#7d6f6a",
		world.Hazard:     "#ff4500",
		world.Checkpoint: "#f5a623",
		world.Ladder:     "#b08850",
		world.Goal:       "#ffd700",
	},
}

// terrain tiles get noise shading, the rest keep their flat base color
var terrain = map[world.TileType]bool{
	world.Dirt:  true,
	world.Stone: true,
	world.Metal: true,
}

// ForBiome returns the palette for b. Unknown biomes use the forest palette.
func ForBiome(b difficulty.Biome) Palette {
	if p, ok := biomePalettes[b]; ok {
		return p
	}
	return biomePalettes[difficulty.Forest]
}

// Base returns the base color for t, or "" for Empty and unknown types.
func (p Palette) Base(t world.TileType) string {
	return p[t]
}

// Shade fills Tile.Color on every non-empty tile that has none. Terrain
// tiles are lightened or darkened by 2D perlin noise seeded with seed, so
// the same level and seed always shade the same way.
func Shade(grid *world.Grid, b difficulty.Biome, seed int64) {
	p := ForBiome(b)
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			grid.Update(row, col, func(t *world.Tile) {
				if t.Type == world.Empty || t.Color != "" {
					return
				}
				base := p.Base(t.Type)
				if base == "" {
					return
				}
				if !terrain[t.Type] {
					t.Color = base
					return
				}
				n := noise.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale)
				t.Color = Scale(base, 1+n*shadeRange)
			})
		}
	}
}

// ParseHex converts "#rrggbb" into an opaque RGBA color.
func ParseHex(hex string) (color.RGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ToHex formats c as "#rrggbb", ignoring alpha.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale multiplies each channel of hex by factor, clamped to [0, 255].
// Invalid input is returned unchanged.
func Scale(hex string, factor float64) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		switch {
		case f < 0:
			return 0
		case f > 255:
			return 255
		default:
			return uint8(f)
		}
	}
	return ToHex(color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 0xff})
}
