package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"pawntour/internal/repository"
)

// ConnectWS upgrades the session endpoint to a websocket. Each text message
// carries newline-separated commands (see commandNargs); the session is
// persisted and written back after every message.
func (h *TourHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("upgrade failed", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("read failed", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		ended := false
		for line := range byLine(strings.TrimSpace(string(message))) {
			stop, err := executeCommand(state, h.rnd, line)
			if err != nil {
				h.logger.Error("command failed", "command", line, "error", err)
				return
			}
			if stop {
				ended = true
				break
			}
		}

		buf, err := state.Bytes()
		if err != nil {
			h.logger.Error("unable to serialize search state", "error", err)
			break
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
		session, err = h.repo.UpdateTourSession(r.Context(), session.TourSessionId, params)
		if err != nil {
			h.logger.Error("unable to update session in db", "error", err)
			break
		}

		if err := c.WriteJSON(NewTourSessionDTO(session, state)); err != nil {
			h.logger.Error("write failed", "error", err)
			break
		}
	}
}
