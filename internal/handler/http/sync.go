package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payroll"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	syncService "github.com/crewpay/crewpay-backend-go/internal/service/sync"
	"github.com/go-chi/chi/v5"
)

type SyncHandler interface {
	PushEntry(w http.ResponseWriter, r *http.Request)
	PushMonth(w http.ResponseWriter, r *http.Request)
	RemoveEntry(w http.ResponseWriter, r *http.Request)
}

type syncHandlerImpl struct {
	syncService *syncService.SyncService
}

func NewSyncHandler(svc *syncService.SyncService) SyncHandler {
	return &syncHandlerImpl{
		syncService: svc,
	}
}

// PushEntry implements SyncHandler. Pushes a single entry to the sheet.
func (h *syncHandlerImpl) PushEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.syncService.PushEntry(r.Context(), id); err != nil {
		h.handleSyncError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry pushed to sheet", nil)
}

// PushMonth implements SyncHandler. Pushes every entry in the month,
// reporting per-entry failures without aborting the run.
func (h *syncHandlerImpl) PushMonth(w http.ResponseWriter, r *http.Request) {
	req := payroll.PeriodRequest{
		Month: parseIntParam(r, "month"),
		Year:  parseIntParam(r, "year"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.syncService.PushMonth(r.Context(), req)
	if err != nil {
		h.handleSyncError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month push completed", report)
}

// RemoveEntry implements SyncHandler. Deletes a sheet row by its
// sheet-side row ID; local entries are untouched.
func (h *syncHandlerImpl) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	sheetID := chi.URLParam(r, "sheetID")
	if sheetID == "" {
		response.BadRequest(w, "Sheet row ID is required", nil)
		return
	}
	if _, err := strconv.Atoi(sheetID); err != nil {
		response.BadRequest(w, "Sheet row ID must be numeric", nil)
		return
	}

	if err := h.syncService.RemoveEntry(r.Context(), sheetID); err != nil {
		h.handleSyncError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sheet row removed", nil)
}

// handleSyncError covers the sync-only errors before falling back to
// the shared domain mapping.
func (h *syncHandlerImpl) handleSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncService.ErrSyncNotConfigured):
		response.BadRequest(w, "Sheet sync is not configured", nil)
	case errors.Is(err, syncService.ErrPushFailed):
		response.BadGateway(w, "Sheet endpoint rejected the push")
	default:
		response.HandleError(w, err)
	}
}
