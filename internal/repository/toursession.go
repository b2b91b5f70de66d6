package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"pawntour/internal/tour"
)

type TourSession struct {
	TourSessionId int64
	PlayerId      *int64
	Dimension     int
	MaxAttempts   int
	AttemptsUsed  int
	Solved        bool
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateTourSessionParams struct {
	PlayerId *int64
}

func (q *Queries) CreateTourSession(
	ctx context.Context, state *tour.SearchState, params CreateTourSessionParams,
) (*TourSession, error) {
	buf, err := state.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"dimension":     state.Dimension,
		"max_attempts":  state.MaxAttempts,
		"attempts_used": state.AttemptsUsed,
		"solved":        state.Solved,
		"state":         buf,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO tour_session (
			player_id, dimension, max_attempts, attempts_used, solved, state
		)
		VALUES (
			@player_id, @dimension, @max_attempts, @attempts_used, @solved, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[TourSession])
}

func (q *Queries) FetchTourSession(ctx context.Context, tourSessionId int64) (*TourSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM tour_session WHERE tour_session_id = $1",
		tourSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[TourSession])
}

type UpdateTourSessionParams struct {
	AttemptsUsed *int
	Solved       *bool
	State        *[]byte
	EndedAt      *time.Time
}

func (p UpdateTourSessionParams) SetClause() (string, map[string]any) {
	parts := []string{"updated_at = now()"}
	args := make(map[string]any)

	if p.AttemptsUsed != nil {
		parts = append(parts, "attempts_used = @attempts_used")
		args["attempts_used"] = *p.AttemptsUsed
	}
	if p.Solved != nil {
		parts = append(parts, "solved = @solved")
		args["solved"] = *p.Solved
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateTourSession(
	ctx context.Context, tourSessionId int64, params UpdateTourSessionParams,
) (*TourSession, error) {
	setClause, args := params.SetClause()
	args["tour_session_id"] = tourSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE tour_session SET "+setClause+
			" WHERE tour_session_id = @tour_session_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[TourSession])
}
