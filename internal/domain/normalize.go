package domain

import (
	"fmt"
	"time"
)

// DateTime is a UTC calendar date plus time of day, the shape the
// work-management API expects for date columns: no fractional seconds,
// no timezone offset.
type DateTime struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM:SS
}

// timestampLayouts are the accepted submission formats, most specific
// first. Layouts without an offset are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeTimestamp parses a submitted date-time value and converts it to
// a UTC date/time pair. Offset-carrying inputs are shifted to UTC; naive
// inputs are taken as already UTC.
func NormalizeTimestamp(value string) (DateTime, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		utc := t.UTC()
		return DateTime{
			Date: utc.Format("2006-01-02"),
			Time: utc.Format("15:04:05"),
		}, nil
	}
	return DateTime{}, fmt.Errorf("%w: unparseable timestamp %q", ErrValidation, value)
}
