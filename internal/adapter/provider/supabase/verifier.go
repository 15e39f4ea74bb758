// Package supabase validates opaque session tokens against a Supabase
// (GoTrue) auth endpoint, or locally when the signing secret is configured.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

// Verifier resolves an access token to a user ID. Results are never cached;
// every gated request pays one validation.
type Verifier struct {
	baseURL    string
	anonKey    string
	jwtSecret  []byte
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a Verifier. With SupabaseConfig.JWTSecret set, tokens
// are verified locally (HS256, the GoTrue signing scheme) and no network
// call is made per request.
func NewVerifier(cfg config.SupabaseConfig, logger *slog.Logger) *Verifier {
	v := &Verifier{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "supabase"),
	}
	if cfg.JWTSecret != "" {
		v.jwtSecret = []byte(cfg.JWTSecret)
	}
	return v
}

// ValidateToken resolves a token to the authenticated user's ID.
// Any invalid, expired, or empty token fails with domain.ErrUnauthorized.
func (v *Verifier) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, fmt.Errorf("supabase: empty token: %w", domain.ErrUnauthorized)
	}
	if v.jwtSecret != nil {
		return v.validateLocal(token)
	}
	return v.validateRemote(ctx, token)
}

func (v *Verifier) validateLocal(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return v.jwtSecret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("supabase: invalid token: %w", domain.ErrUnauthorized)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("supabase: token has no subject: %w", domain.ErrUnauthorized)
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("supabase: malformed subject: %w", domain.ErrUnauthorized)
	}
	return userID, nil
}

// userResponse is the subset of GET /auth/v1/user we care about.
type userResponse struct {
	ID string `json:"id"`
}

func (v *Verifier) validateRemote(ctx context.Context, token string) (uuid.UUID, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("supabase: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.anonKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "user lookup failed", slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("supabase: %w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		v.log.DebugContext(ctx, "token rejected",
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
		)
		return uuid.Nil, fmt.Errorf("supabase: status %d: %w", resp.StatusCode, domain.ErrUnauthorized)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return uuid.Nil, fmt.Errorf("supabase: decode user: %w: %w", domain.ErrTransport, err)
	}
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("supabase: malformed user id %q: %w", user.ID, domain.ErrUnauthorized)
	}
	return userID, nil
}
