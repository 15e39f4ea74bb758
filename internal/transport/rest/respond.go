package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors to HTTP status codes. Upstream failures
// are logged with detail but reported to the client generically so API
// tokens and raw payloads never leak into responses.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrConfiguration):
		log.ErrorContext(r.Context(), "board configuration error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "board configuration error")
	case errors.Is(err, domain.ErrAPI), errors.Is(err, domain.ErrTransport):
		log.ErrorContext(r.Context(), "upstream request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "upstream request failed")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
