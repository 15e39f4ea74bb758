package monday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/helmling/zeiterfassung-backend/internal/domain"
)

const (
	schemaBatchCapacity = 10
	schemaBatchWait     = 2 * time.Millisecond
)

// executor is the subset of Client the resolver needs.
type executor interface {
	Execute(ctx context.Context, query string, variables map[string]any, label string) (json.RawMessage, error)
}

// SchemaResolver fetches board column definitions and memoizes them for the
// process lifetime. Column definitions are assumed stable while the process
// runs; there is no invalidation.
//
// The dataloader gives two things for free: concurrent first-time lookups of
// one board share a single in-flight fetch, and lookups of distinct boards
// arriving together collapse into one boards(ids: [...]) query. Failed
// fetches are cleared from the cache so a transient error is not memoized.
type SchemaResolver struct {
	loader *dataloader.Loader[string, ColumnMap]
	log    *slog.Logger
}

// NewSchemaResolver creates a SchemaResolver backed by the given executor.
func NewSchemaResolver(exec executor, logger *slog.Logger) *SchemaResolver {
	r := &SchemaResolver{
		log: logger.With("component", "schema_resolver"),
	}
	r.loader = dataloader.NewBatchedLoader(
		newColumnsBatchFn(exec, r.log),
		dataloader.WithWait[string, ColumnMap](schemaBatchWait),
		dataloader.WithBatchCapacity[string, ColumnMap](schemaBatchCapacity),
	)
	return r
}

// Columns returns the title→column mapping for a board, fetching it on
// first use.
func (r *SchemaResolver) Columns(ctx context.Context, boardID string) (ColumnMap, error) {
	cols, err := r.loader.Load(ctx, boardID)()
	if err != nil {
		r.loader.Clear(ctx, boardID)
		return nil, err
	}
	return cols, nil
}

type boardColumnsData struct {
	Boards []struct {
		ID      string `json:"id"`
		Columns []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			SettingsStr string `json:"settings_str"`
		} `json:"columns"`
	} `json:"boards"`
}

func newColumnsBatchFn(exec executor, log *slog.Logger) dataloader.BatchFunc[string, ColumnMap] {
	return func(ctx context.Context, boardIDs []string) []*dataloader.Result[ColumnMap] {
		data, err := exec.Execute(ctx, boardColumnsQuery, map[string]any{
			"boards": boardIDs,
		}, "board_columns")
		if err != nil {
			return errorResults(len(boardIDs), err)
		}

		var parsed boardColumnsData
		if err := json.Unmarshal(data, &parsed); err != nil {
			return errorResults(len(boardIDs), fmt.Errorf("board_columns: decode: %w: %w", domain.ErrTransport, err))
		}

		byBoard := make(map[string]ColumnMap, len(parsed.Boards))
		for _, b := range parsed.Boards {
			cols := make(ColumnMap, len(b.Columns))
			for _, c := range b.Columns {
				cols[c.Title] = Column{
					ID:       c.ID,
					Settings: parseSettings(ctx, log, c.ID, c.SettingsStr),
				}
			}
			byBoard[b.ID] = cols
			log.InfoContext(ctx, "board columns cached",
				slog.String("board_id", b.ID),
				slog.Int("columns", len(cols)),
			)
		}

		results := make([]*dataloader.Result[ColumnMap], len(boardIDs))
		for i, id := range boardIDs {
			cols, ok := byBoard[id]
			if !ok {
				results[i] = &dataloader.Result[ColumnMap]{
					Error: fmt.Errorf("%w: board %s not found", domain.ErrConfiguration, id),
				}
				continue
			}
			results[i] = &dataloader.Result[ColumnMap]{Data: cols}
		}
		return results
	}
}

// parseSettings decodes a settings_str blob. A column whose settings do not
// parse is still usable by ID, so the error is logged and swallowed.
func parseSettings(ctx context.Context, log *slog.Logger, columnID, raw string) ColumnSettings {
	var settings ColumnSettings
	if raw == "" {
		return settings
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.WarnContext(ctx, "unparseable column settings",
			slog.String("column_id", columnID),
			slog.String("error", err.Error()),
		)
		return ColumnSettings{}
	}
	return settings
}

func errorResults(n int, err error) []*dataloader.Result[ColumnMap] {
	results := make([]*dataloader.Result[ColumnMap], n)
	for i := range results {
		results[i] = &dataloader.Result[ColumnMap]{Error: err}
	}
	return results
}
