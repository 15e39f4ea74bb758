package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok || got != id {
		t.Fatalf("UserIDFromCtx = %v, %v; want %v, true", got, ok, id)
	}
}

func TestUserID_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := UserIDFromCtx(context.Background()); ok {
		t.Fatal("expected ok = false for empty context")
	}
	if _, ok := UserIDFromCtx(WithUserID(context.Background(), uuid.Nil)); ok {
		t.Fatal("expected ok = false for nil UUID")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Fatalf("RequestIDFromCtx = %q, want %q", got, "req-123")
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("RequestIDFromCtx on empty context = %q, want empty", got)
	}
}
