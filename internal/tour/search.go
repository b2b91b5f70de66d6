package tour

import (
	"bytes"
	"encoding/gob"
	"errors"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

var (
	ErrBadBudget  = errors.New("tour: attempt budget must be positive")
	ErrSearchOver = errors.New("tour: search already finished")
)

// SearchParams bounds one search for a full tour.
type SearchParams struct {
	Dimension   int
	MaxAttempts int
}

func (p SearchParams) Validate() error {
	if p.Dimension <= 0 {
		return ErrBadDimension
	}
	if p.MaxAttempts <= 0 {
		return ErrBadBudget
	}
	return nil
}

// SearchState tracks a search across attempts. Every attempt owns a fresh
// board; the state only remembers the most recent tour and the budget
// spent so far.
type SearchState struct {
	SearchParams
	AttemptsUsed int
	Solved       bool
	Last         *Tour
}

func NewSearch(params SearchParams) (*SearchState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &SearchState{SearchParams: params}, nil
}

func DecodeSearchState(buf []byte) (*SearchState, error) {
	var state SearchState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s SearchState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Exhausted reports whether the attempt budget is spent.
func (s *SearchState) Exhausted() bool {
	return s.AttemptsUsed >= s.MaxAttempts
}

// Done reports whether the search is over, either because a full tour was
// found or because the budget is spent.
func (s *SearchState) Done() bool {
	return s.Solved || s.Exhausted()
}

// Attempt runs one greedy attempt from start and records its outcome.
func (s *SearchState) Attempt(start Point) (*Tour, error) {
	if s.Done() {
		return nil, ErrSearchOver
	}
	t, err := BuildTour(s.Dimension, start)
	if err != nil {
		return nil, err
	}
	s.AttemptsUsed++
	s.Last = t
	s.Solved = t.Complete
	Log.Debug("attempt finished",
		slog.Int("attempt", s.AttemptsUsed),
		slog.Any("start", start),
		slog.Int("covered", len(t.Path)),
		slog.Bool("complete", t.Complete),
	)
	return t, nil
}

// RandomStart draws a starting point uniformly from a dim x dim board.
func RandomStart(dim int, rnd *rand.Rand) Point {
	return Point{rnd.IntN(dim), rnd.IntN(dim)}
}

// Run keeps attempting from random starts until the search is done and
// returns the last tour. Attempts run strictly one after another.
func (s *SearchState) Run(rnd *rand.Rand) (*Tour, error) {
	for !s.Done() {
		if _, err := s.Attempt(RandomStart(s.Dimension, rnd)); err != nil {
			return nil, err
		}
	}
	return s.Last, nil
}

// Search runs a fresh search to completion.
func Search(params SearchParams, rnd *rand.Rand) (*SearchState, error) {
	state, err := NewSearch(params)
	if err != nil {
		return nil, err
	}
	if _, err := state.Run(rnd); err != nil {
		return nil, err
	}
	return state, nil
}
