package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/helmling/zeiterfassung-backend/internal/adapter/provider/supabase"
	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/monday"
	"github.com/helmling/zeiterfassung-backend/internal/service/options"
	"github.com/helmling/zeiterfassung-backend/internal/service/timesheet"
	"github.com/helmling/zeiterfassung-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// work-management client, services, and HTTP transport, and serves until
// the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	client := monday.NewClient(cfg.Monday, logger)
	schema := monday.NewSchemaResolver(client, logger)
	verifier := supabase.NewVerifier(cfg.Supabase, logger)

	timesheetSvc := timesheet.NewService(logger, schema, client, cfg.Monday)
	optionsSvc := options.NewService(logger, schema, client, cfg.Monday)

	rl := newRateLimiter()
	defer rl.Stop()

	h := handlers{
		session: rest.NewSessionHandler(cfg.Session, cfg.IsProduction(), logger),
		options: rest.NewOptionsHandler(optionsSvc, logger),
		entries: rest.NewEntryHandler(timesheetSvc, cfg.Session, cfg.Server.MaxUploadBytes, logger),
		health:  rest.NewHealthHandler(BuildVersion()),
	}

	router := newRouter(cfg, h, verifier, rl, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
