package world

// Direction is a horizontal heading along the level
type Direction int

// Direction constants. The value doubles as the column delta.
const (
	Left  Direction = -1
	Right Direction = 1
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is Left or Right
func (d Direction) IsValid() bool {
	return d == Left || d == Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Step returns the column reached by moving n cells from col
func (d Direction) Step(col, n int) int {
	if !d.IsValid() {
		return col
	}
	return col + int(d)*n
}
