package tour

import "errors"

var (
	ErrBadDimension = errors.New("tour: dimension must be positive")
	ErrBadStart     = errors.New("tour: starting point lies outside the board")
)

// Tour is the outcome of a single greedy attempt. Path lists the visited
// cells in visit order (index = step number - 1). Complete reports whether
// the attempt covered the whole board; an incomplete tour is a normal
// outcome, not an error.
type Tour struct {
	Path     []Point
	Board    Board
	Complete bool
}

// BuildTour runs one attempt at a full tour of a dim x dim board starting
// from start, using Warnsdorff's rule: at every step move to the open cell
// with the fewest onward moves. There is no backtracking; the attempt ends
// as soon as no open cell is reachable.
//
// BuildTour is deterministic: the same dimension and start always produce
// the same tour.
func BuildTour(dim int, start Point) (*Tour, error) {
	if dim <= 0 {
		return nil, ErrBadDimension
	}
	board := NewBoard(dim)
	if !board.Contains(start) {
		return nil, ErrBadStart
	}

	path := make([]Point, 0, dim*dim)
	current := start
	board.mark(current, 1)
	path = append(path, current)

	for step := 2; step <= dim*dim; step++ {
		next, ok := nextMove(board, current)
		if !ok {
			break
		}
		board.mark(next, step)
		path = append(path, next)
		current = next
	}

	return &Tour{
		Path:     path,
		Board:    board,
		Complete: len(path) == dim*dim,
	}, nil
}

// nextMove picks the open cell reachable from current with the lowest
// degree. Only a strictly lower degree replaces the running best, so equal
// candidates resolve to the earliest catalog entry.
func nextMove(board Board, current Point) (Point, bool) {
	var (
		best       Point
		bestDegree = len(moves) + 1
		found      bool
	)
	for _, move := range moves {
		candidate := current.Add(move)
		if !board.open(candidate) {
			continue
		}
		if d := degree(board, candidate); d < bestDegree {
			best, bestDegree, found = candidate, d, true
		}
	}
	return best, found
}

// degree counts the open cells reachable from p with the board as it
// currently stands. p itself is not marked during the lookahead.
func degree(board Board, p Point) int {
	n := 0
	for _, move := range moves {
		if board.open(p.Add(move)) {
			n++
		}
	}
	return n
}
