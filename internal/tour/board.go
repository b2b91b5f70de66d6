package tour

import (
	"fmt"
	"strings"
)

// Unvisited is the marker of a cell no attempt has stepped on yet.
const Unvisited = 0

// Board holds one visit marker per cell of a Dim x Dim grid. A marker of
// Unvisited means the cell is free, any positive value is the step number at
// which the pawn landed there. Cells are indexed x*Dim+y.
type Board struct {
	Dim   int
	Cells []int
}

func NewBoard(dim int) Board {
	return Board{Dim: dim, Cells: make([]int, dim*dim)}
}

func (b Board) At(p Point) int {
	return b.Cells[p.X*b.Dim+p.Y]
}

func (b Board) mark(p Point, step int) {
	b.Cells[p.X*b.Dim+p.Y] = step
}

// Contains reports whether p lies inside the board.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Dim && p.Y < b.Dim
}

// open reports whether p is a legal destination: inside the board and not
// yet visited.
func (b Board) open(p Point) bool {
	return b.Contains(p) && b.At(p) == Unvisited
}

// String renders the marker grid row by row, three characters per cell.
func (b Board) String() string {
	var sb strings.Builder
	for x := range b.Dim {
		for y := range b.Dim {
			fmt.Fprintf(&sb, "%3d", b.Cells[x*b.Dim+y])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
