package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"pawntour/internal/repository"
	"pawntour/internal/tour"
)

// DefaultMaxAttempts bounds a search when the client does not ask for a
// specific budget.
const DefaultMaxAttempts = 100

type CreateSessionDTO struct {
	Dimension   int `schema:"dimension,required"`
	MaxAttempts int `schema:"max_attempts"`
}

func ParseCreateSessionDTO(src map[string][]string) (CreateSessionDTO, error) {
	dto := CreateSessionDTO{MaxAttempts: DefaultMaxAttempts}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var pos Position
	err := dec.Decode(&pos, src)
	return pos, err
}

type TourSessionDTO struct {
	TourSessionId string       `json:"tour_session_id"`
	Dimension     int          `json:"dimension"`
	MaxAttempts   int          `json:"max_attempts"`
	AttemptsUsed  int          `json:"attempts_used"`
	Solved        bool         `json:"solved"`
	Board         []int        `json:"board,omitempty"`
	Path          []tour.Point `json:"path,omitempty"`
	StartedAt     int64        `json:"started_at"`
	EndedAt       *int64       `json:"ended_at,omitempty"`
}

func NewTourSessionDTO(
	session *repository.TourSession, state *tour.SearchState,
) *TourSessionDTO {
	dto := &TourSessionDTO{
		TourSessionId: strconv.FormatInt(session.TourSessionId, 10),
		Dimension:     session.Dimension,
		MaxAttempts:   session.MaxAttempts,
		AttemptsUsed:  session.AttemptsUsed,
		Solved:        session.Solved,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	if state.Last != nil {
		dto.Board = state.Last.Board.Cells
		dto.Path = state.Last.Path
	}
	return dto
}
