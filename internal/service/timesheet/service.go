// Package timesheet translates validated form submissions into monday.com
// item mutations for the time-tracking and expense boards.
package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/domain"
	"github.com/helmling/zeiterfassung-backend/internal/monday"
)

// schemaResolver is the column lookup the service depends on.
type schemaResolver interface {
	Columns(ctx context.Context, boardID string) (monday.ColumnMap, error)
}

// boardClient is the subset of monday.Client the service needs.
type boardClient interface {
	CreateItem(ctx context.Context, boardID, name, columnValues, label string) (string, error)
	UploadAll(ctx context.Context, itemID, columnID string, files []monday.Attachment) error
}

// Service creates time entries and expenses. Validation happens before any
// external call; a failed mutation is never retried.
type Service struct {
	log    *slog.Logger
	schema schemaResolver
	client boardClient
	cfg    config.MondayConfig
}

// NewService creates a timesheet service.
func NewService(logger *slog.Logger, schema schemaResolver, client boardClient, cfg config.MondayConfig) *Service {
	return &Service{
		log:    logger.With("service", "timesheet"),
		schema: schema,
		client: client,
		cfg:    cfg,
	}
}

// CreateTimeEntry creates an item on the time-tracking board from a
// submitted time entry.
func (s *Service) CreateTimeEntry(ctx context.Context, in domain.TimeEntryInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	start, err := domain.NormalizeTimestamp(in.StartDate)
	if err != nil {
		return domain.NewValidationError("startDate", err.Error())
	}
	end, err := domain.NormalizeTimestamp(in.EndDate)
	if err != nil {
		return domain.NewValidationError("endDate", err.Error())
	}

	pause := 0
	if in.PauseMinutes != "" {
		pause, err = strconv.Atoi(in.PauseMinutes)
		if err != nil {
			return domain.NewValidationError("pauseMins", "must be a whole number of minutes")
		}
	}

	project, err := relationValue("projectId", in.ProjectID)
	if err != nil {
		return err
	}
	employee, err := relationValue("mitarbeiterId", in.EmployeeID)
	if err != nil {
		return err
	}

	cols, err := s.schema.Columns(ctx, s.cfg.BoardID)
	if err != nil {
		return err
	}
	titles := s.cfg.Columns

	values := map[string]any{}
	for _, binding := range []struct {
		title string
		value any
	}{
		{titles.Start, start},
		{titles.End, end},
		{titles.Pause, pause},
		{titles.Project, project},
		{titles.Employee, employee},
	} {
		col, err := requireColumn(cols, binding.title, s.cfg.BoardID)
		if err != nil {
			return err
		}
		values[col.ID] = binding.value
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("timesheet: encode column values: %w", err)
	}

	itemID, err := s.client.CreateItem(ctx, s.cfg.BoardID, in.ItemName, string(encoded), "create_item")
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "time entry created",
		slog.String("item_id", itemID),
		slog.String("board_id", s.cfg.BoardID),
	)
	return nil
}

// CreateExpense creates an item on the expenses board and uploads the
// submitted receipts to it. On an upload failure the created item persists
// with the files uploaded so far; there is no rollback.
func (s *Service) CreateExpense(ctx context.Context, in domain.ExpenseInput, files []monday.Attachment) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	project, err := relationValue("projectId", in.ProjectID)
	if err != nil {
		return "", err
	}
	employee, err := relationValue("mitarbeiterId", in.EmployeeID)
	if err != nil {
		return "", err
	}

	cols, err := s.schema.Columns(ctx, s.cfg.ExpensesBoardID)
	if err != nil {
		return "", err
	}
	titles := s.cfg.Columns

	values := map[string]any{}
	for _, binding := range []struct {
		title string
		value any
	}{
		{titles.Description, map[string]string{"text": in.Description}},
		// The amount travels as its raw textual form; the API parses it.
		{titles.ExpenseAmount, in.Amount},
		{titles.Project, project},
		{titles.Employee, employee},
	} {
		col, err := requireColumn(cols, binding.title, s.cfg.ExpensesBoardID)
		if err != nil {
			return "", err
		}
		values[col.ID] = binding.value
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("timesheet: encode column values: %w", err)
	}

	itemID, err := s.client.CreateItem(ctx, s.cfg.ExpensesBoardID, in.ItemName, string(encoded), "create_expense")
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "expense created",
		slog.String("item_id", itemID),
		slog.String("board_id", s.cfg.ExpensesBoardID),
		slog.Int("attachments", len(files)),
	)

	if len(files) > 0 {
		receiptCol, err := requireColumn(cols, titles.Receipt, s.cfg.ExpensesBoardID)
		if err != nil {
			return "", err
		}
		if err := s.client.UploadAll(ctx, itemID, receiptCol.ID, files); err != nil {
			return itemID, err
		}
	}

	return itemID, nil
}

// relationValue encodes an item reference as a single-element relation
// payload.
func relationValue(field, raw string) (map[string]any, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a numeric item id")
	}
	return map[string]any{"item_ids": []int64{id}}, nil
}

func requireColumn(cols monday.ColumnMap, title, boardID string) (monday.Column, error) {
	col, ok := cols[title]
	if !ok {
		return monday.Column{}, fmt.Errorf("%w: board %s has no column titled %q", domain.ErrConfiguration, boardID, title)
	}
	return col, nil
}
