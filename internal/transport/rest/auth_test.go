package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/helmling/zeiterfassung-backend/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		CookieName: "sb-access-token",
		MaxAge:     3600,
		LoginPath:  "/login.html",
		ThanksPath: "/thanks.html",
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSessionSet_JSONBody(t *testing.T) {
	t.Parallel()

	h := NewSessionHandler(sessionConfig(), false, testLogger())

	body := strings.NewReader(`{"access_token":"jwt-token-value"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/set", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Set(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, "sb-access-token")
	if cookie.Value != "jwt-token-value" {
		t.Errorf("expected token value, got %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.Path != "/" {
		t.Errorf("expected path /, got %q", cookie.Path)
	}
	if cookie.MaxAge != 3600 {
		t.Errorf("expected max age 3600, got %d", cookie.MaxAge)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite Lax, got %v", cookie.SameSite)
	}
	if cookie.Secure {
		t.Error("expected no Secure attribute outside production")
	}
}

func TestSessionSet_FormBody(t *testing.T) {
	t.Parallel()

	h := NewSessionHandler(sessionConfig(), false, testLogger())

	form := url.Values{"access_token": {"form-token"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/set", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Set(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cookie := findCookie(t, rec, "sb-access-token")
	if cookie.Value != "form-token" {
		t.Errorf("expected form-token, got %q", cookie.Value)
	}
}

func TestSessionSet_SecureInProduction(t *testing.T) {
	t.Parallel()

	h := NewSessionHandler(sessionConfig(), true, testLogger())

	body := strings.NewReader(`{"access_token":"jwt-token-value"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/set", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Set(rec, req)

	cookie := findCookie(t, rec, "sb-access-token")
	if !cookie.Secure {
		t.Error("expected Secure cookie in production")
	}
}

func TestSessionSet_MissingToken(t *testing.T) {
	t.Parallel()

	h := NewSessionHandler(sessionConfig(), false, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/set", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Set(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing token") {
		t.Errorf("expected error body, got %q", rec.Body.String())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie on error")
	}
}

func TestSessionLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	h := NewSessionHandler(sessionConfig(), false, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	cookie := findCookie(t, rec, "sb-access-token")
	if cookie.Value != "" {
		t.Errorf("expected cleared cookie, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("expected negative max age, got %d", cookie.MaxAge)
	}
}
