package tour

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSearchParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  SearchParams
		wantErr error
	}{
		{"ok", SearchParams{Dimension: 10, MaxAttempts: 100}, nil},
		{"zero dimension", SearchParams{Dimension: 0, MaxAttempts: 100}, ErrBadDimension},
		{"negative dimension", SearchParams{Dimension: -1, MaxAttempts: 100}, ErrBadDimension},
		{"zero budget", SearchParams{Dimension: 10, MaxAttempts: 0}, ErrBadBudget},
		{"negative budget", SearchParams{Dimension: 10, MaxAttempts: -5}, ErrBadBudget},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.params.Validate(); err != test.wantErr {
				t.Errorf("Validate() = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestSearchSpendsBudgetOnUnsolvableBoard(t *testing.T) {
	// 3x3 boards can never be covered, so every attempt fails and the
	// search must stop exactly at the budget.
	rnd := rand.New(rand.NewPCG(1, 2))
	state, err := Search(SearchParams{Dimension: 3, MaxAttempts: 5}, rnd)
	if err != nil {
		t.Fatal(err)
	}
	if state.Solved {
		t.Error("3x3 search reported solved")
	}
	if state.AttemptsUsed != 5 {
		t.Errorf("AttemptsUsed = %d, want 5", state.AttemptsUsed)
	}
	if !state.Done() {
		t.Error("search with a spent budget should be done")
	}
	if state.Last == nil || state.Last.Complete {
		t.Error("last tour should exist and be incomplete")
	}

	if _, err := state.Attempt(Point{0, 0}); !errors.Is(err, ErrSearchOver) {
		t.Errorf("Attempt after exhaustion = %v, want ErrSearchOver", err)
	}
}

func TestSearchStopsOnFirstFullTour(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	state, err := Search(SearchParams{Dimension: 10, MaxAttempts: 100}, rnd)
	if err != nil {
		t.Fatal(err)
	}
	if state.AttemptsUsed < 1 || state.AttemptsUsed > 100 {
		t.Fatalf("AttemptsUsed = %d, want 1..100", state.AttemptsUsed)
	}
	if !state.Done() {
		t.Error("finished search should be done")
	}
	if state.Solved != state.Last.Complete {
		t.Error("Solved flag disagrees with the last tour")
	}
	if state.Solved && len(state.Last.Path) != 100 {
		t.Errorf("solved tour covers %d cells, want 100", len(state.Last.Path))
	}
}

func TestSearchIsDeterministicForSeed(t *testing.T) {
	run := func() *SearchState {
		rnd := rand.New(rand.NewPCG(7, 11))
		state, err := Search(SearchParams{Dimension: 8, MaxAttempts: 20}, rnd)
		if err != nil {
			t.Fatal(err)
		}
		return state
	}

	first, second := run(), run()
	if first.AttemptsUsed != second.AttemptsUsed || first.Solved != second.Solved {
		t.Fatalf("seeded runs diverged: %d/%v vs %d/%v",
			first.AttemptsUsed, first.Solved, second.AttemptsUsed, second.Solved)
	}
	if len(first.Last.Path) != len(second.Last.Path) {
		t.Fatalf("seeded runs produced different paths")
	}
	for i := range first.Last.Path {
		if first.Last.Path[i] != second.Last.Path[i] {
			t.Fatalf("seeded paths diverge at step %d", i+1)
		}
	}
}

func TestRandomStartStaysOnBoard(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	b := NewBoard(10)
	for range 1000 {
		if p := RandomStart(10, rnd); !b.Contains(p) {
			t.Fatalf("random start %+v is off the board", p)
		}
	}
}

func TestSearchStateRoundTrip(t *testing.T) {
	state, err := NewSearch(SearchParams{Dimension: 4, MaxAttempts: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := state.Attempt(Point{1, 2}); err != nil {
		t.Fatal(err)
	}

	buf, err := state.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeSearchState(buf)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Dimension != state.Dimension ||
		decoded.MaxAttempts != state.MaxAttempts ||
		decoded.AttemptsUsed != state.AttemptsUsed ||
		decoded.Solved != state.Solved {
		t.Errorf("decoded state %+v does not match original %+v", decoded, state)
	}
	if len(decoded.Last.Path) != len(state.Last.Path) {
		t.Errorf("decoded path has %d cells, want %d",
			len(decoded.Last.Path), len(state.Last.Path))
	}
}
