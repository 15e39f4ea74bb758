package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

// Client issues queries and mutations against the monday.com API.
// Transport failures wrap domain.ErrTransport; a non-empty errors array in
// the response envelope becomes a *domain.APIError regardless of HTTP status.
type Client struct {
	apiURL     string
	fileURL    string
	token      string
	httpClient *http.Client
	fileClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from config. Uploads get their own, more
// generous timeout because receipt scans can be several megabytes.
func NewClient(cfg config.MondayConfig, logger *slog.Logger) *Client {
	return &Client{
		apiURL:     cfg.APIURL,
		fileURL:    cfg.FileURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		fileClient: &http.Client{Timeout: cfg.UploadTimeout},
		log:        logger.With("adapter", "monday"),
	}
}

// envelope is the GraphQL response wrapper: {data, errors?}.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Execute posts a query with variables and returns the data payload.
// The label names the call in diagnostics; the bearer token is never logged.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, label string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("monday %s: encode request: %w", label, err)
	}

	c.log.DebugContext(ctx, "monday request",
		slog.String("label", label),
		slog.Any("variables", variables),
	)

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("monday %s: create request: %w", label, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "monday request failed",
			slog.String("label", label),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("monday %s: %w: %w", label, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := decodeEnvelope(resp.Body, label)
	if err != nil {
		c.log.ErrorContext(ctx, "monday call failed",
			slog.String("label", label),
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.log.DebugContext(ctx, "monday response",
		slog.String("label", label),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return data, nil
}

// decodeEnvelope reads a GraphQL response body. API-level errors win over
// whatever data the envelope carries.
func decodeEnvelope(r io.Reader, label string) (json.RawMessage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("monday %s: read response: %w: %w", label, domain.ErrTransport, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("monday %s: malformed response: %w: %w", label, domain.ErrTransport, err)
	}

	if len(env.Errors) > 0 {
		apiErr := &domain.APIError{Label: label}
		for _, e := range env.Errors {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
		return nil, apiErr
	}

	return env.Data, nil
}
