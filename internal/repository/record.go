package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// TourRecord is one leaderboard row: a solved session ranked by how few
// attempts it burned and how quickly it finished.
type TourRecord struct {
	TourSessionId int64   `json:"tour_session_id"`
	Username      *string `json:"username"`
	Dimension     int     `json:"dimension"`
	MaxAttempts   int     `json:"max_attempts"`
	AttemptsUsed  int     `json:"attempts_used"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username  *string
	Dimension *int
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Dimension != nil {
		clauses = append(clauses, "dimension = @dimension")
		args["dimension"] = *f.Dimension
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]TourRecord, error) {
	query := `
	SELECT
		tour_session_id,
		username,
		dimension,
		max_attempts,
		attempts_used,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM tour_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		solved = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY attempts_used, playtime_ms"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[TourRecord])
}
