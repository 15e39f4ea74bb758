package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/helmling/zeiterfassung-backend/internal/config"
	"github.com/helmling/zeiterfassung-backend/internal/domain"
	"github.com/helmling/zeiterfassung-backend/internal/monday"
)

// entryService defines the minimal interface needed by EntryHandler.
type entryService interface {
	CreateTimeEntry(ctx context.Context, in domain.TimeEntryInput) error
	CreateExpense(ctx context.Context, in domain.ExpenseInput, files []monday.Attachment) (string, error)
}

// EntryHandler accepts the HTML form submissions and hands them to the
// timesheet service.
type EntryHandler struct {
	svc            entryService
	thanksPath     string
	maxUploadBytes int64
	log            *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, cfg config.SessionConfig, maxUploadBytes int64, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		svc:            svc,
		thanksPath:     cfg.ThanksPath,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "entries"),
	}
}

// CreateTimeEntry handles POST /create-item. On success the browser is
// redirected to the confirmation page.
func (h *EntryHandler) CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	in := domain.TimeEntryInput{
		ItemName:     r.PostFormValue("itemName"),
		StartDate:    r.PostFormValue("startDate"),
		EndDate:      r.PostFormValue("endDate"),
		PauseMinutes: r.PostFormValue("pauseMins"),
		ProjectID:    r.PostFormValue("projectId"),
		EmployeeID:   r.PostFormValue("mitarbeiterId"),
	}

	if err := h.svc.CreateTimeEntry(r.Context(), in); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	http.Redirect(w, r, h.thanksPath, http.StatusSeeOther)
}

// multipartMemoryLimit caps in-memory buffering while parsing; larger file
// parts spill to temporary files. The total body size is bounded separately
// by MaxUploadBytes.
const multipartMemoryLimit = 10 << 20

// CreateExpense handles POST /create-expense. The form arrives as
// multipart/form-data so receipts can ride along as file parts named
// "beleg". A failed receipt upload does not roll the created item back.
func (h *EntryHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	in := domain.ExpenseInput{
		ItemName:    r.PostFormValue("itemName"),
		Description: r.PostFormValue("beschreibung"),
		Amount:      r.PostFormValue("betrag"),
		ProjectID:   r.PostFormValue("projectId"),
		EmployeeID:  r.PostFormValue("mitarbeiterId"),
	}

	var files []monday.Attachment
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["beleg"] {
			fh := fh
			files = append(files, monday.Attachment{
				Name: fh.Filename,
				Size: fh.Size,
				Open: func() (io.ReadCloser, error) { return fh.Open() },
			})
		}
	}

	itemID, err := h.svc.CreateExpense(r.Context(), in, files)
	if err != nil {
		var uploadErr *domain.UploadError
		if errors.As(err, &uploadErr) && itemID != "" {
			h.log.ErrorContext(r.Context(), "receipt upload failed after item creation",
				slog.String("item_id", itemID),
				slog.String("file", uploadErr.Filename),
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusInternalServerError, "expense saved but receipt upload failed")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	http.Redirect(w, r, h.thanksPath, http.StatusSeeOther)
}
