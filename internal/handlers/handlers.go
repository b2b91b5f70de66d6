package handlers

import (
	"encoding/json"
	"iter"
	"log/slog"
	"net/http"
	"strings"
)

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, logger *slog.Logger, v any) {
	_, err := sendJSON(w, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error(
			"unable to send response",
			slog.Any("response", v),
			slog.Any("error", err),
		)
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

// byLine yields the trimmed lines of s in order.
func byLine(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		found := true
		var line string
		for found {
			line, s, found = strings.Cut(s, "\n")
			if !yield(strings.TrimSpace(line)) {
				return
			}
		}
	}
}
