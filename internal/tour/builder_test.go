package tour

import (
	"io"
	"log/slog"
	"testing"
)

func TestMain(m *testing.M) {
	Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	m.Run()
}

func TestMoveCatalog(t *testing.T) {
	catalog := Moves()
	if len(catalog) != 8 {
		t.Fatalf("expected 8 moves, got %d", len(catalog))
	}

	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	for _, m := range catalog {
		dx, dy := abs(m.DX), abs(m.DY)
		straight := (dx == 3 && dy == 0) || (dx == 0 && dy == 3)
		diagonal := dx == 2 && dy == 2
		if !straight && !diagonal {
			t.Errorf("move %+v is neither a 3-square straight leap nor a 2-square diagonal leap", m)
		}
	}

	// The enumeration order is part of the contract: it decides ties.
	want := []Offset{
		{0, 3}, {-2, 2}, {-3, 0}, {-2, -2}, {0, -3}, {2, -2}, {3, 0}, {2, 2},
	}
	for i, m := range catalog {
		if m != want[i] {
			t.Errorf("catalog[%d] = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestBuildTourArguments(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		start   Point
		wantErr error
	}{
		{"zero dimension", 0, Point{0, 0}, ErrBadDimension},
		{"negative dimension", -4, Point{0, 0}, ErrBadDimension},
		{"start row below board", 5, Point{-1, 0}, ErrBadStart},
		{"start col below board", 5, Point{0, -1}, ErrBadStart},
		{"start row past board", 5, Point{5, 0}, ErrBadStart},
		{"start col past board", 5, Point{0, 5}, ErrBadStart},
		{"valid corner", 5, Point{0, 0}, nil},
		{"valid last cell", 5, Point{4, 4}, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := BuildTour(test.dim, test.start)
			if err != test.wantErr {
				t.Errorf("BuildTour(%d, %+v) error = %v, want %v",
					test.dim, test.start, err, test.wantErr)
			}
		})
	}
}

func TestSingleCellBoard(t *testing.T) {
	tr, err := BuildTour(1, Point{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Complete {
		t.Error("a 1x1 board should be covered by the starting cell alone")
	}
	if len(tr.Path) != 1 || tr.Path[0] != (Point{0, 0}) {
		t.Errorf("path = %v, want [{0 0}]", tr.Path)
	}
}

func TestThreeByThreeNeverCompletes(t *testing.T) {
	for x := range 3 {
		for y := range 3 {
			tr, err := BuildTour(3, Point{x, y})
			if err != nil {
				t.Fatal(err)
			}
			if tr.Complete {
				t.Errorf("3x3 tour from %d:%d reported complete", x, y)
			}
		}
	}

	// The center cannot reach any cell at all: every leap lands outside.
	tr, err := BuildTour(3, Point{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Path) != 1 {
		t.Errorf("path from center has %d cells, want 1", len(tr.Path))
	}
}

func TestBuildTourIsDeterministic(t *testing.T) {
	first, err := BuildTour(10, Point{4, 7})
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildTour(10, Point{4, 7})
	if err != nil {
		t.Fatal(err)
	}
	if first.Complete != second.Complete {
		t.Fatalf("runs disagree on completeness: %v vs %v", first.Complete, second.Complete)
	}
	if len(first.Path) != len(second.Path) {
		t.Fatalf("runs disagree on path length: %d vs %d", len(first.Path), len(second.Path))
	}
	for i := range first.Path {
		if first.Path[i] != second.Path[i] {
			t.Fatalf("paths diverge at step %d: %+v vs %+v", i+1, first.Path[i], second.Path[i])
		}
	}
}

func TestPathInvariants(t *testing.T) {
	for _, dim := range []int{4, 5, 8, 10} {
		for x := range dim {
			for y := range dim {
				tr, err := BuildTour(dim, Point{x, y})
				if err != nil {
					t.Fatal(err)
				}

				seen := make(map[Point]bool, len(tr.Path))
				for i, p := range tr.Path {
					if !tr.Board.Contains(p) {
						t.Fatalf("dim %d start %d:%d: step %d left the board: %+v",
							dim, x, y, i+1, p)
					}
					if seen[p] {
						t.Fatalf("dim %d start %d:%d: cell %+v visited twice", dim, x, y, p)
					}
					seen[p] = true
					if got := tr.Board.At(p); got != i+1 {
						t.Fatalf("dim %d start %d:%d: marker at %+v = %d, want %d",
							dim, x, y, p, got, i+1)
					}
				}

				if tr.Complete && len(tr.Path) != dim*dim {
					t.Fatalf("dim %d start %d:%d: complete tour of %d cells, want %d",
						dim, x, y, len(tr.Path), dim*dim)
				}
				if !tr.Complete && len(tr.Path) >= dim*dim {
					t.Fatalf("dim %d start %d:%d: incomplete tour covered the whole board", dim, x, y)
				}
			}
		}
	}
}

func TestTieBreakPrefersCatalogOrder(t *testing.T) {
	current := Point{5, 5}
	first := Point{5, 8}  // reached by catalog move {0, 3}
	second := Point{7, 7} // reached by catalog move {2, 2}, last in the catalog

	freshBoard := func(open ...Point) Board {
		b := NewBoard(10)
		for i := range b.Cells {
			b.Cells[i] = 1
		}
		for _, p := range open {
			b.Cells[p.X*b.Dim+p.Y] = Unvisited
		}
		return b
	}

	// Both candidates are dead ends (degree 0): the earlier catalog entry
	// must win.
	b := freshBoard(first, second)
	got, ok := nextMove(b, current)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != first {
		t.Errorf("tie broke to %+v, want first catalog candidate %+v", got, first)
	}

	// Opening an onward cell for the first candidate raises its degree to 1;
	// the later candidate now wins on strictly lower degree.
	b = freshBoard(first, second, Point{2, 8})
	got, ok = nextMove(b, current)
	if !ok {
		t.Fatal("expected a candidate")
	}
	if got != second {
		t.Errorf("selected %+v, want lower-degree candidate %+v", got, second)
	}
}
