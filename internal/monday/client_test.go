package monday

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(apiURL, fileURL string) *Client {
	return NewClient(config.MondayConfig{
		APIURL:         apiURL,
		FileURL:        fileURL,
		Token:          "test-token",
		RequestTimeout: 5 * time.Second,
		UploadTimeout:  5 * time.Second,
	}, newTestLogger())
}

func TestClient_Execute_Success(t *testing.T) {
	t.Parallel()

	var gotBody struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"data":{"boards":[{"id":"42"}]}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	data, err := c.Execute(context.Background(), `query Q($b: ID!) { boards(ids: [$b]) { id } }`,
		map[string]any{"b": "42"}, "test_query")

	require.NoError(t, err)
	assert.JSONEq(t, `{"boards":[{"id":"42"}]}`, string(data))
	assert.Contains(t, gotBody.Query, "boards")
	assert.Equal(t, "42", gotBody.Variables["b"])
}

func TestClient_Execute_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// monday reports GraphQL errors with HTTP 200.
		io.WriteString(w, `{"data":null,"errors":[{"message":"ColumnValueException"},{"message":"rate limited"}]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.Execute(context.Background(), "query { boards { id } }", nil, "failing_call")

	require.ErrorIs(t, err, domain.ErrAPI)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failing_call", apiErr.Label)
	assert.Equal(t, []string{"ColumnValueException", "rate limited"}, apiErr.Messages)
}

func TestClient_Execute_MalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>gateway timeout</html>`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.Execute(context.Background(), "query { boards { id } }", nil, "test")

	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_Execute_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.Execute(context.Background(), "query { boards { id } }", nil, "test")

	require.ErrorIs(t, err, domain.ErrTransport)
	assert.False(t, errors.Is(err, domain.ErrAPI))
}
