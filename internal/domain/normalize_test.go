package domain

import (
	"errors"
	"testing"
)

func TestNormalizeTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantDate string
		wantTime string
	}{
		{name: "offset shifted to utc", input: "2024-03-01T09:00:00+01:00", wantDate: "2024-03-01", wantTime: "08:00:00"},
		{name: "offset across midnight", input: "2024-03-01T00:30:00+02:00", wantDate: "2024-02-29", wantTime: "22:30:00"},
		{name: "zulu", input: "2024-06-15T12:34:56Z", wantDate: "2024-06-15", wantTime: "12:34:56"},
		{name: "naive taken as utc", input: "2024-06-15T12:34:56", wantDate: "2024-06-15", wantTime: "12:34:56"},
		{name: "datetime-local without seconds", input: "2024-06-15T12:34", wantDate: "2024-06-15", wantTime: "12:34:00"},
		{name: "space separated", input: "2024-06-15 12:34:56", wantDate: "2024-06-15", wantTime: "12:34:56"},
		{name: "date only", input: "2024-06-15", wantDate: "2024-06-15", wantTime: "00:00:00"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeTimestamp(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Date != tt.wantDate || got.Time != tt.wantTime {
				t.Errorf("NormalizeTimestamp(%q) = %s %s, want %s %s",
					tt.input, got.Date, got.Time, tt.wantDate, tt.wantTime)
			}
		})
	}
}

func TestNormalizeTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "yesterday", "15.06.2024"} {
		_, err := NormalizeTimestamp(input)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("NormalizeTimestamp(%q): expected ErrValidation, got %v", input, err)
		}
	}
}
