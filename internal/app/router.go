package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/transport/middleware"
	"github.com/helmling/zeiterfassung-backend/internal/transport/rest"
)

// handlers bundles everything the router mounts.
type handlers struct {
	session *rest.SessionHandler
	options *rest.OptionsHandler
	entries *rest.EntryHandler
	health  *rest.HealthHandler
}

// newRouter assembles the HTTP routing table.
//
// Three protection tiers:
//   - open: health probes and the session endpoints (rate limited).
//   - gated: browser-facing pages and option endpoints; unauthenticated
//     requests are redirected to the login page.
//   - protected: form submission endpoints; unauthenticated requests get
//     a 401 JSON response.
func newRouter(cfg *config.Config, h handlers, validator middleware.TokenValidator, rl *middleware.RateLimiter, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health.Health)
	mux.HandleFunc("GET /live", h.health.Live)

	sessionLimit := rl.Limit(20)
	mux.Handle("POST /auth/set", sessionLimit(http.HandlerFunc(h.session.Set)))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.session.Logout))

	gate := middleware.PageGate(cfg.Session, validator, log)
	mux.Handle("GET /options/mitarbeiter", gate(http.HandlerFunc(h.options.Employees)))
	mux.Handle("GET /options/project", gate(http.HandlerFunc(h.options.Projects)))
	mux.Handle("GET /", gate(http.FileServer(http.Dir(cfg.Server.StaticDir))))

	requireAuth := middleware.RequireAuth(cfg.Session, validator)
	mux.Handle("POST /create-item", requireAuth(http.HandlerFunc(h.entries.CreateTimeEntry)))
	mux.Handle("POST /create-expense", requireAuth(http.HandlerFunc(h.entries.CreateExpense)))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	)

	return chain(mux)
}

// newRateLimiter creates the shared limiter for the session endpoints.
func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(5 * time.Minute)
}
