package world

import "testing"

func TestNewGrid_ClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Errorf("NewGrid(0, -3) = %dx%d, want 1x1", g.Rows(), g.Cols())
	}
	if err := g.Validate(); err != "" {
		t.Errorf("Validate() = %q, want empty", err)
	}
}

func TestGrid_GetSetOutOfBounds(t *testing.T) {
	g := NewGrid(4, 6)
	if g.Set(4, 0, Stone) || g.Set(0, 6, Stone) || g.Set(-1, 2, Stone) {
		t.Error("Set accepted an out-of-bounds position")
	}
	if _, ok := g.Get(0, -1); ok {
		t.Error("Get(0, -1) ok = true")
	}
	if got := g.Type(99, 99); got != Empty {
		t.Errorf("Type out of bounds = %v, want Empty", got)
	}

	g.SetTile(2, 3, Tile{Type: Checkpoint, ID: 4})
	tile, ok := g.Get(2, 3)
	if !ok || tile.Type != Checkpoint || tile.ID != 4 {
		t.Errorf("Get(2, 3) = %+v, %v", tile, ok)
	}
}

func TestGrid_RowMajorLayout(t *testing.T) {
	g := NewGrid(3, 5)
	g.Set(1, 4, Metal)
	var seen [][2]int
	g.ForEachTile(func(row, col int, tile Tile) {
		if tile.Type == Metal {
			seen = append(seen, [2]int{row, col})
		}
	})
	if len(seen) != 1 || seen[0] != [2]int{1, 4} {
		t.Errorf("Metal found at %v, want [[1 4]]", seen)
	}
	if g.Type(4, 1) != Empty {
		t.Error("row and column swapped")
	}
}

func TestGrid_FillColumnAndRect(t *testing.T) {
	g := NewGrid(10, 10)
	g.FillColumn(2, 8, 3, Ladder)
	for row := 0; row < 10; row++ {
		want := Empty
		if row >= 3 && row <= 8 {
			want = Ladder
		}
		if got := g.Type(row, 2); got != want {
			t.Errorf("column 2 row %d = %v, want %v", row, got, want)
		}
	}

	g.FillRect(7, 8, 20, 5, Stone)
	if n := g.Count(Stone); n != 3*4 {
		t.Errorf("FillRect clipped to %d cells, want 12", n)
	}
}

func TestGrid_Update(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 1, Checkpoint)
	g.Update(0, 1, func(t *Tile) { t.Active = true })
	if tile, _ := g.Get(0, 1); !tile.Active {
		t.Error("Update did not modify the tile in place")
	}
	if g.Update(5, 5, func(*Tile) {}) {
		t.Error("Update accepted an out-of-bounds position")
	}
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g := NewGrid(3, 3)
	c := g.Clone()
	c.Set(1, 1, Dirt)
	if g.Type(1, 1) != Empty {
		t.Error("Clone shares storage with the original")
	}
}

func TestGrid_ColumnsAndValidate(t *testing.T) {
	g := NewGrid(3, 5)
	if !g.IsBorderColumn(0) || !g.IsBorderColumn(4) || g.IsBorderColumn(2) {
		t.Error("IsBorderColumn wrong")
	}
	if g.IsPlayableColumn(0) || g.IsPlayableColumn(4) || !g.IsPlayableColumn(3) {
		t.Error("IsPlayableColumn wrong")
	}

	g.Set(1, 1, TileType(7))
	if g.Validate() == "" {
		t.Error("Validate accepted tile type 7")
	}
}

func TestTileType_Properties(t *testing.T) {
	for _, tt := range AllTileTypes() {
		if !tt.IsValid() {
			t.Errorf("%v not valid", tt)
		}
	}
	if TileType(8).IsValid() || TileType(-1).IsValid() {
		t.Error("undefined wire values accepted")
	}
	if Goal != 9 || Ladder != 6 || Empty != 0 {
		t.Error("wire values changed")
	}
	if Ladder.IsSolid() || !Ladder.IsClimbable() || !Hazard.IsSolid() {
		t.Error("ladder/hazard collision classes wrong")
	}
	if Metal.IsDestructible(false) || !Metal.IsDestructible(true) || Stone.IsDestructible(true) {
		t.Error("destructibility wrong")
	}
}

func TestDirection_Step(t *testing.T) {
	if got := Left.Step(10, 3); got != 7 {
		t.Errorf("Left.Step(10, 3) = %d, want 7", got)
	}
	if got := Right.Step(10, 3); got != 13 {
		t.Errorf("Right.Step(10, 3) = %d, want 13", got)
	}
	if Left.Opposite() != Right {
		t.Error("Left.Opposite() != Right")
	}
}
