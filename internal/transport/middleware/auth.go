package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/pkg/ctxutil"
)

// TokenValidator checks an access token and reports the user it belongs to.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Paths reachable without a session. Prefixes end with a slash.
var openPaths = map[string]bool{
	"/login.html":    true,
	"/register.html": true,
	"/favicon.ico":   true,
}

var openPrefixes = []string{
	"/auth/",
	"/js/",
	"/css/",
	"/img/",
	"/assets/",
}

// RequireAuth returns middleware for API endpoints. It reads the session
// cookie, validates the token, and stores the user ID in the request
// context. Missing or invalid sessions get a 401 JSON response.
func RequireAuth(cfg config.SessionConfig, validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := sessionUser(r, cfg.CookieName, validator)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PageGate returns middleware for browser-facing pages. Requests without a
// valid session are redirected to the login page instead of getting an API
// error. Login, registration, auth endpoints, and static asset directories
// stay reachable so the login flow itself is never gated.
func PageGate(cfg config.SessionConfig, validator TokenValidator, log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isOpenPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := sessionUser(r, cfg.CookieName, validator)
			if !ok {
				log.Debug("redirecting unauthenticated request",
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				http.Redirect(w, r, cfg.LoginPath, http.StatusFound)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionUser(r *http.Request, cookieName string, validator TokenValidator) (uuid.UUID, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return uuid.Nil, false
	}
	userID, err := validator.ValidateToken(r.Context(), cookie.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func isOpenPath(path string) bool {
	if openPaths[path] {
		return true
	}
	for _, prefix := range openPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
