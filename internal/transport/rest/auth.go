package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/helmling/zeiterfassung-backend/internal/config"
)

// SessionHandler turns identity provider access tokens into HTTP-only
// session cookies so the static frontend never touches localStorage.
type SessionHandler struct {
	cfg        config.SessionConfig
	production bool
	log        *slog.Logger
}

// NewSessionHandler creates a SessionHandler. Cookies carry the Secure
// attribute only in production so local development over plain HTTP works.
func NewSessionHandler(cfg config.SessionConfig, production bool, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{cfg: cfg, production: production, log: logger.With("handler", "session")}
}

type setSessionRequest struct {
	AccessToken string `json:"access_token"`
}

// Set handles POST /auth/set. It accepts the token either as a JSON body
// or as a form field and stores it in the session cookie.
func (h *SessionHandler) Set(w http.ResponseWriter, r *http.Request) {
	token := h.extractToken(r)
	if token == "" {
		writeError(w, http.StatusBadRequest, "missing token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.MaxAge,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SessionHandler) extractToken(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var req setSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return ""
		}
		return req.AccessToken
	}
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostFormValue("access_token")
}
