package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("itemName", "required")

	if got := err.Error(); got != "validation: itemName: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "itemName", Message: "required"},
		{Field: "betrag", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestAPIError_Is(t *testing.T) {
	t.Parallel()

	err := &APIError{Label: "create_item", Messages: []string{"ColumnValueException"}}

	if !errors.Is(err, ErrAPI) {
		t.Fatal("errors.Is(err, ErrAPI) = false")
	}
	if got := err.Error(); got != "monday create_item: ColumnValueException" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestUploadError_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("connection reset")
	err := &UploadError{Filename: "beleg.pdf", Err: cause}

	if !errors.Is(err, ErrUpload) {
		t.Fatal("errors.Is(err, ErrUpload) = false")
	}
	if got := err.Error(); got != `upload "beleg.pdf": connection reset` {
		t.Fatalf("unexpected Error(): %q", got)
	}
}
