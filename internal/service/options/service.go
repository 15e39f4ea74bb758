// Package options populates the form dropdowns: the employee list and the
// projects an employee participates in. Both boards are discovered through
// relation columns instead of being configured directly.
package options

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/domain"
	"github.com/helmling/zeiterfassung-backend/internal/monday"
)

type schemaResolver interface {
	Columns(ctx context.Context, boardID string) (monday.ColumnMap, error)
}

type itemFetcher interface {
	AllItems(ctx context.Context, boardID string) ([]monday.Item, error)
	LinkedItems(ctx context.Context, itemID, relationColumnID, linkedBoardID string) ([]monday.Item, error)
}

// Service resolves dropdown options from the work-management boards.
type Service struct {
	log    *slog.Logger
	schema schemaResolver
	items  itemFetcher
	cfg    config.MondayConfig
}

// NewService creates an options service.
func NewService(logger *slog.Logger, schema schemaResolver, items itemFetcher, cfg config.MondayConfig) *Service {
	return &Service{
		log:    logger.With("service", "options"),
		schema: schema,
		items:  items,
		cfg:    cfg,
	}
}

// Employees lists every item on the employee board. The board is found by
// following the time-tracking board's employee relation column.
func (s *Service) Employees(ctx context.Context) ([]monday.Item, error) {
	boardID, err := s.employeeBoardID(ctx)
	if err != nil {
		return nil, err
	}
	return s.items.AllItems(ctx, boardID)
}

// ProjectsForEmployee lists the projects the employee's involvement
// relation points to.
func (s *Service) ProjectsForEmployee(ctx context.Context, employeeID string) ([]monday.Item, error) {
	employeeBoard, err := s.employeeBoardID(ctx)
	if err != nil {
		return nil, err
	}

	cols, err := s.schema.Columns(ctx, employeeBoard)
	if err != nil {
		return nil, err
	}
	involvement, ok := cols[s.cfg.Columns.Involvement]
	if !ok {
		return nil, fmt.Errorf("%w: board %s has no column titled %q",
			domain.ErrConfiguration, employeeBoard, s.cfg.Columns.Involvement)
	}

	projectBoard, err := monday.LinkedBoardID(involvement)
	if err != nil {
		return nil, err
	}

	return s.items.LinkedItems(ctx, employeeID, involvement.ID, projectBoard)
}

func (s *Service) employeeBoardID(ctx context.Context) (string, error) {
	cols, err := s.schema.Columns(ctx, s.cfg.BoardID)
	if err != nil {
		return "", err
	}
	employee, ok := cols[s.cfg.Columns.Employee]
	if !ok {
		return "", fmt.Errorf("%w: board %s has no column titled %q",
			domain.ErrConfiguration, s.cfg.BoardID, s.cfg.Columns.Employee)
	}
	return monday.LinkedBoardID(employee)
}
