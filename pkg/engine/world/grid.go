package world

import "fmt"

// Grid is the level tile map, stored row-major.
type Grid struct {
	tiles []Tile
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions, every cell Empty
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build (re)initializes the grid. Non-positive dimensions are clamped to 1
// so that a grid is always structurally valid.
func (g *Grid) Build(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	g.rows = rows
	g.cols = cols
	g.tiles = make([]Tile, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsBorderColumn reports whether col is one of the two containment columns.
func (g *Grid) IsBorderColumn(col int) bool {
	return col == 0 || col == g.cols-1
}

// IsPlayableColumn checks if col is inside the grid and not a border column
func (g *Grid) IsPlayableColumn(col int) bool {
	return col > 0 && col < g.cols-1
}

// Get returns the tile at the given position. ok is false when out of bounds.
func (g *Grid) Get(row, col int) (Tile, bool) {
	if !g.IsValidPosition(row, col) {
		return Tile{}, false
	}
	return g.tiles[row*g.cols+col], true
}

// Type returns the tile type at the given position, Empty when out of bounds.
func (g *Grid) Type(row, col int) TileType {
	t, _ := g.Get(row, col)
	return t.Type
}

// Set replaces the tile at the given position with a plain tile of type t.
// Returns false if out of bounds.
func (g *Grid) Set(row, col int, t TileType) bool {
	return g.SetTile(row, col, Tile{Type: t})
}

// SetTile stores tile at the given position. Returns false if out of bounds.
func (g *Grid) SetTile(row, col int, tile Tile) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.tiles[row*g.cols+col] = tile
	return true
}

// Update applies fn to the tile in place. Returns false if out of bounds.
func (g *Grid) Update(row, col int, fn func(t *Tile)) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	fn(&g.tiles[row*g.cols+col])
	return true
}

// FillColumn sets rows [fromRow, toRow] of col to t, clipped to the grid.
func (g *Grid) FillColumn(col, fromRow, toRow int, t TileType) {
	if fromRow > toRow {
		fromRow, toRow = toRow, fromRow
	}
	for row := fromRow; row <= toRow; row++ {
		g.Set(row, col, t)
	}
}

// FillRect sets every cell of the inclusive rectangle to t, clipped to the grid.
func (g *Grid) FillRect(top, left, bottom, right int, t TileType) {
	if left > right {
		left, right = right, left
	}
	for col := left; col <= right; col++ {
		g.FillColumn(col, top, bottom, t)
	}
}

// ForEachTile iterates over all cells in row-major order
func (g *Grid) ForEachTile(fn func(row, col int, tile Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.tiles[row*g.cols+col])
		}
	}
}

// Count returns the number of cells of type t
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, tile := range g.tiles {
		if tile.Type == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// Validate checks the grid for structural issues and returns an error
// description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	if len(g.tiles) != g.rows*g.cols {
		return fmt.Sprintf("Grid storage holds %d tiles, want %d", len(g.tiles), g.rows*g.cols)
	}

	for i, tile := range g.tiles {
		if !tile.Type.IsValid() {
			return fmt.Sprintf("Tile %d,%d has invalid type %d", i/g.cols, i%g.cols, int(tile.Type))
		}
	}

	return ""
}
