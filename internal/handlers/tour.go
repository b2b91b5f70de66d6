package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pawntour/internal/config"
	"pawntour/internal/middleware"
	"pawntour/internal/repository"
	"pawntour/internal/tour"
)

type TourHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewTourHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *TourHandler {
	return &TourHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseCreateSessionDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	state, err := tour.NewSearch(tour.SearchParams{
		Dimension:   dto.Dimension,
		MaxAttempts: dto.MaxAttempts,
	})
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	params := repository.CreateTourSessionParams{}
	if claims, loggedIn := middleware.PlayerClaimsFrom(r.Context()); loggedIn {
		h.logger.Debug("creating player session", "claims", claims)
		params.PlayerId = &claims.PlayerId
	}

	session, err := h.repo.CreateTourSession(r.Context(), state, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create tour session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewTourSessionDTO(session, state))
}

func (h *TourHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.logger, NewTourSessionDTO(session, state))
}

// Attempt runs exactly one greedy attempt, from x:y when given and from a
// random cell otherwise.
func (h *TourHandler) Attempt(w http.ResponseWriter, r *http.Request) {
	session, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	if state.Done() {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(tour.ErrSearchOver))
		return
	}

	query := r.URL.Query()
	start := tour.RandomStart(state.Dimension, h.rnd)
	if query.Has("x") || query.Has("y") {
		pos, err := ParsePosition(query)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		start = tour.Point{X: pos.X, Y: pos.Y}
	}

	if _, err := state.Attempt(start); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	h.persist(w, r, session, state, state.Done())
}

// Solve spends whatever is left of the attempt budget on random starts.
func (h *TourHandler) Solve(w http.ResponseWriter, r *http.Request) {
	session, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	if _, err := state.Run(h.rnd); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("search failed", "error", err)
		return
	}

	h.persist(w, r, session, state, true)
}

func (h *TourHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	h.persist(w, r, session, state, true)
}

func (h *TourHandler) Records(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.RecordFilter{}

	if query.Has("dimension") {
		dimension, err := strconv.Atoi(query.Get("dimension"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.logger, wrapError(err))
			return
		}
		filter.Dimension = &dimension
	}
	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}

	records, err := h.repo.GetRecords(r.Context(), filter)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("failed to fetch records",
			slog.Any("error", err), slog.Any("filter", filter))
		return
	}

	sendJSONOrLog(w, h.logger, records)
}

func (h *TourHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.TourSession, *tour.SearchState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := h.repo.FetchTourSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	state, err := tour.DecodeSearchState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid tour_session.state", "error", err)
		return nil, nil, false
	}

	return session, state, true
}

func (h *TourHandler) persist(
	w http.ResponseWriter, r *http.Request,
	session *repository.TourSession, state *tour.SearchState, ended bool,
) {
	buf, err := state.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to serialize search state", "error", err)
		return
	}

	params := repository.UpdateTourSessionParams{
		AttemptsUsed: &state.AttemptsUsed,
		Solved:       &state.Solved,
		State:        &buf,
	}
	if ended && !session.EndedAt.Valid {
		now := time.Now().UTC()
		params.EndedAt = &now
	}

	updated, err := h.repo.UpdateTourSession(r.Context(), session.TourSessionId, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewTourSessionDTO(updated, state))
}
