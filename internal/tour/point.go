package tour

// Offset is a relative displacement the pawn may apply in a single step.
// Negative values move up/left, positive values move down/right.
type Offset struct {
	DX, DY int
}

// Point is an absolute board position. X is the row, Y is the column.
// Equality is structural; points are never mutated.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(o Offset) Point {
	return Point{p.X + o.DX, p.Y + o.DY}
}

// moves is the pawn's full move catalog: three-square straight leaps in the
// four cardinal directions and two-square diagonal leaps. The enumeration
// order is fixed and observable: the Warnsdorff scan keeps the current best
// only on strict improvement, so ties resolve to the earliest entry.
var moves = [8]Offset{
	{0, 3},
	{-2, 2},
	{-3, 0},
	{-2, -2},
	{0, -3},
	{2, -2},
	{3, 0},
	{2, 2},
}

// Moves returns a copy of the move catalog in its fixed enumeration order.
func Moves() []Offset {
	catalog := make([]Offset, len(moves))
	copy(catalog, moves[:])
	return catalog
}
