package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payroll"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/sheets"
)

var (
	// ErrSyncNotConfigured is returned when no sheet endpoint URL is set.
	ErrSyncNotConfigured = errors.New("spreadsheet sync is not configured")

	// ErrPushFailed is returned when the sheet endpoint rejects a call.
	ErrPushFailed = errors.New("sheet push failed")
)

// PushReport summarizes one push run. Failures are counted, not fatal:
// the sheet is a mirror, the local store stays authoritative.
type PushReport struct {
	Pushed int `json:"pushed"`
	Failed int `json:"failed"`
}

// SyncService mirrors computed attendance entries to the spreadsheet
// endpoint. It only ever serializes what the store already holds; it
// never recomputes.
type SyncService struct {
	client    *sheets.Client
	entryRepo attendance.EntryRepository
}

func NewSyncService(client *sheets.Client, entryRepo attendance.EntryRepository) *SyncService {
	return &SyncService{
		client:    client,
		entryRepo: entryRepo,
	}
}

// PushEntry pushes a single entry by ID.
func (s *SyncService) PushEntry(ctx context.Context, id string) error {
	if s.client == nil {
		return ErrSyncNotConfigured
	}

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.client.Upsert(ctx, toPayload(entry)); err != nil {
		slog.Error("Failed to push entry to sheet", "entry_id", id, "error", err)
		return ErrPushFailed
	}

	return nil
}

// PushMonth pushes every entry of the given month, for all workers.
func (s *SyncService) PushMonth(ctx context.Context, req payroll.PeriodRequest) (PushReport, error) {
	if s.client == nil {
		return PushReport{}, ErrSyncNotConfigured
	}

	if err := req.Validate(); err != nil {
		return PushReport{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	entries, err := s.entryRepo.ListByRange(ctx, from, to)
	if err != nil {
		return PushReport{}, fmt.Errorf("failed to load entries for sync: %w", err)
	}

	var report PushReport
	for _, entry := range entries {
		if _, err := s.client.Upsert(ctx, toPayload(entry)); err != nil {
			slog.Error("Failed to push entry to sheet", "entry_id", entry.ID, "error", err)
			report.Failed++
			continue
		}
		report.Pushed++
	}

	return report, nil
}

// RemoveEntry deletes a row from the sheet by its sheet-side ID. The
// local entry is untouched.
func (s *SyncService) RemoveEntry(ctx context.Context, sheetID string) error {
	if s.client == nil {
		return ErrSyncNotConfigured
	}

	if err := s.client.Delete(ctx, sheetID); err != nil {
		slog.Error("Failed to remove sheet row", "sheet_id", sheetID, "error", err)
		return ErrPushFailed
	}

	return nil
}

// toPayload flattens an entry to the sheet's wire shape. The sheet still
// carries the legacy pair of leave booleans, derived here from the
// single leave tag.
func toPayload(e attendance.Entry) sheets.EntryPayload {
	notes := ""
	if e.Notes != nil {
		notes = *e.Notes
	}

	return sheets.EntryPayload{
		ID:              e.ID,
		Date:            e.Date.Format("2006-01-02"),
		WorkerID:        e.WorkerID,
		CheckIn:         e.CheckIn,
		CheckOut:        e.CheckOut,
		BreakMinutes:    e.BreakMinutes,
		WorkingHours:    e.WorkingHours,
		OTHours:         e.OTHours,
		OTPay:           e.OTPay,
		IsRejectedLeave: e.LeaveStatus == attendance.LeaveRejected,
		IsApprovedLeave: e.LeaveStatus == attendance.LeaveApproved,
		AdvancePayment:  e.AdvancePayment,
		Notes:           notes,
		UpdatedAt:       e.UpdatedAt.UnixMilli(),
	}
}
