package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"pawntour/internal/config"
	"pawntour/internal/repository"
)

type AuthHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuthHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to hash password", "error", err)
		return
	}

	player, err := h.repo.CreatePlayer(
		r.Context(), repository.CreatePlayerParams{
			Username: username, PasswordHash: hash,
		},
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			w.WriteHeader(http.StatusConflict)
			sendJSONOrLog(w, h.logger, map[string]string{"error": "username taken"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to insert player", "error", err)
		return
	}

	h.refreshCookies(w, player)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	player, err := h.repo.FetchPlayer(r.Context(), username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			w.WriteHeader(http.StatusUnauthorized)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
			h.logger.Error("could not fetch player from db", "error", err)
		}
		return
	}

	err = bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password))
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			h.logger.Error("bcrypt compare error", "error", err)
		}
		return
	}

	h.refreshCookies(w, player)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
}

func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *AuthHandler) refreshCookies(w http.ResponseWriter, player *repository.Player) {
	token, err := h.jwt.Sign(
		config.NewPlayerClaims(player.PlayerId, player.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create a jwt token", "error", err)
		return
	}

	err = h.cookies.Refresh(w, token, time.Now().Add(h.jwt.TokenLifetime))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("failed to set auth cookies", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, "ok")
}
