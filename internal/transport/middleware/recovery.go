package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/helmling/zeiterfassung-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics in downstream
// handlers, logs the panic with a stack trace, and responds with 500.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("stack", string(debug.Stack())),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
