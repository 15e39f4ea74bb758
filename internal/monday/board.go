// Package monday is the adapter for the monday.com GraphQL API: query
// execution, board schema resolution with memoization, cursor pagination,
// and multipart file uploads.
package monday

import (
	"fmt"
	"strconv"

	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

// Column is a board column definition, looked up by title.
type Column struct {
	ID       string
	Settings ColumnSettings
}

// ColumnSettings is the parsed settings_str blob. Only the fields needed
// for relation resolution are decoded; everything else is ignored.
type ColumnSettings struct {
	BoardIDs       []int64 `json:"boardIds"`
	LinkedBoardIDs []int64 `json:"linkedBoardIds"`
}

// ColumnMap maps column titles to their definitions for one board.
type ColumnMap map[string]Column

// Item is a board row.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LinkedBoardID extracts the board a relation column points to. Two settings
// shapes exist in the wild; boardIds wins over linkedBoardIds. A relation
// column pointing nowhere is a board setup problem, never defaulted.
func LinkedBoardID(col Column) (string, error) {
	if len(col.Settings.BoardIDs) > 0 {
		return strconv.FormatInt(col.Settings.BoardIDs[0], 10), nil
	}
	if len(col.Settings.LinkedBoardIDs) > 0 {
		return strconv.FormatInt(col.Settings.LinkedBoardIDs[0], 10), nil
	}
	return "", fmt.Errorf("%w: column %q has no linked board", domain.ErrConfiguration, col.ID)
}
