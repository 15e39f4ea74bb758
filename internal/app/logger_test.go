package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/helmling/zeiterfassung-backend/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	cfg := config.LogConfig{Level: "info", Format: "json"}
	logger := NewLogger(cfg)

	def := slog.Default()
	if def.Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer

			logger := newLoggerWithWriter(&buf, config.LogConfig{
				Level:  tt.level,
				Format: "text",
			})

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress lower levels, got: %s", tt.wantSlog, buf.String())
			}
		})
	}
}

func TestNewLogger_TextAddSource(t *testing.T) {
	var buf bytes.Buffer

	logger := newLoggerWithWriter(&buf, config.LogConfig{Level: "info", Format: "text"})
	logger.Info("hello")

	if !strings.Contains(buf.String(), "source=") {
		t.Error("text format should include source")
	}
}

// newLoggerWithWriter mirrors NewLogger but writes to the given buffer so
// tests can assert on output.
func newLoggerWithWriter(buf *bytes.Buffer, cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(buf, opts)
	} else {
		handler = slog.NewTextHandler(buf, opts)
	}
	return slog.New(handler)
}
