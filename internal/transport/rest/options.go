package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/helmling/zeiterfassung-backend/internal/monday"
)

// optionsService defines the minimal interface needed by OptionsHandler.
type optionsService interface {
	Employees(ctx context.Context) ([]monday.Item, error)
	ProjectsForEmployee(ctx context.Context, employeeID string) ([]monday.Item, error)
}

// OptionsHandler serves the dropdown option endpoints the entry forms
// populate themselves from.
type OptionsHandler struct {
	svc optionsService
	log *slog.Logger
}

// NewOptionsHandler creates an OptionsHandler.
func NewOptionsHandler(svc optionsService, logger *slog.Logger) *OptionsHandler {
	return &OptionsHandler{svc: svc, log: logger.With("handler", "options")}
}

type optionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type optionsResponse struct {
	Items []optionResponse `json:"items"`
}

// Employees handles GET /options/mitarbeiter.
func (h *OptionsHandler) Employees(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Employees(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOptionsResponse(items))
}

// Projects handles GET /options/project?mitarbeiterId=... and returns only
// the projects the given employee is involved in.
func (h *OptionsHandler) Projects(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("mitarbeiterId")
	if employeeID == "" {
		writeError(w, http.StatusBadRequest, "missing mitarbeiterId")
		return
	}

	items, err := h.svc.ProjectsForEmployee(r.Context(), employeeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOptionsResponse(items))
}

func toOptionsResponse(items []monday.Item) optionsResponse {
	out := optionsResponse{Items: make([]optionResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, optionResponse{ID: item.ID, Name: item.Name})
	}
	return out
}
