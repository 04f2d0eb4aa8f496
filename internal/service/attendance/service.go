package attendance

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/timeclock"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	payrollService "github.com/crewpay/crewpay-backend-go/internal/service/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// leavePlaceholder is stored in the time fields of leave entries, where
// check-in/check-out are meaningless.
const leavePlaceholder = "--"

type EntryServiceImpl struct {
	entryRepo  attendance.EntryRepository
	workerRepo worker.WorkerRepository
	calculator *payrollService.Calculator
	defaults   config.DefaultsConfig
}

func NewEntryService(
	entryRepo attendance.EntryRepository,
	workerRepo worker.WorkerRepository,
	calculator *payrollService.Calculator,
	defaults config.DefaultsConfig,
) attendance.EntryService {
	return &EntryServiceImpl{
		entryRepo:  entryRepo,
		workerRepo: workerRepo,
		calculator: calculator,
		defaults:   defaults,
	}
}

// SaveEntry implements attendance.EntryService. The entry for the worker
// and date is created, or overwritten if one already exists; computed
// fields always come from the worker's current profile, never from a
// snapshot frozen at creation.
func (s *EntryServiceImpl) SaveEntry(ctx context.Context, req attendance.SaveEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	leaveStatus := attendance.LeaveNone
	if req.LeaveStatus != nil {
		leaveStatus = attendance.LeaveStatus(strings.ToLower(*req.LeaveStatus))
	}

	advance := decimal.Zero
	if req.AdvancePayment != nil {
		advance = *req.AdvancePayment
	}

	entry := attendance.Entry{
		ID:             uuid.NewString(),
		WorkerID:       w.ID,
		Date:           date,
		LeaveStatus:    leaveStatus,
		AdvancePayment: advance,
		Notes:          req.Notes,
	}

	if err := s.computeEntry(&entry, w, req.CheckIn, req.CheckOut, req.BreakMinutes); err != nil {
		return attendance.EntryResponse{}, err
	}

	saved, err := s.entryRepo.Upsert(ctx, entry)
	if err != nil {
		slog.Error("Failed to save attendance entry", "worker_id", w.ID, "date", req.Date, "error", err)
		return attendance.EntryResponse{}, err
	}

	saved.WorkerName = &w.Name
	return mapToEntryResponse(saved), nil
}

// UpdateEntry implements attendance.EntryService.
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, req attendance.UpdateEntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, entry.WorkerID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		entry.Date = date
	}
	if req.LeaveStatus != nil {
		entry.LeaveStatus = attendance.LeaveStatus(strings.ToLower(*req.LeaveStatus))
	}
	if req.AdvancePayment != nil {
		entry.AdvancePayment = *req.AdvancePayment
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	checkIn := &entry.CheckIn
	if req.CheckIn != nil {
		checkIn = req.CheckIn
	}
	checkOut := &entry.CheckOut
	if req.CheckOut != nil {
		checkOut = req.CheckOut
	}
	breakMinutes := &entry.BreakMinutes
	if req.BreakMinutes != nil {
		breakMinutes = req.BreakMinutes
	}

	if err := s.computeEntry(&entry, w, checkIn, checkOut, breakMinutes); err != nil {
		return attendance.EntryResponse{}, err
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return attendance.EntryResponse{}, err
	}

	entry.UpdatedAt = time.Now()
	entry.WorkerName = &w.Name
	return mapToEntryResponse(entry), nil
}

// computeEntry fills the derived fields of an entry from the live worker
// profile. Leave entries disregard the time fields entirely and zero out
// hours and pay.
func (s *EntryServiceImpl) computeEntry(entry *attendance.Entry, w worker.Worker, checkIn, checkOut *string, breakMinutes *int) error {
	if entry.OnLeave() {
		entry.CheckIn = leavePlaceholder
		entry.CheckOut = leavePlaceholder
		entry.BreakMinutes = 0
		entry.WorkingHours = 0
		entry.OTHours = 0
		entry.OTPay = decimal.Zero
		return nil
	}

	if missingTime(checkIn) || missingTime(checkOut) {
		return validator.ValidationErrors{
			{Field: "check_in", Message: "check_in and check_out are required unless the entry is a leave day"},
		}
	}

	brk := s.defaults.BreakMinutes
	if breakMinutes != nil {
		brk = *breakMinutes
	}

	hours, err := timeclock.CalculateHours(*checkIn, *checkOut, brk, w.BaseHours)
	if err != nil {
		if errors.Is(err, timeclock.ErrInvalidTimeFormat) {
			return attendance.ErrInvalidTimeFormat
		}
		return err
	}

	entry.CheckIn = strings.TrimSpace(*checkIn)
	entry.CheckOut = strings.TrimSpace(*checkOut)
	entry.BreakMinutes = brk
	entry.WorkingHours = hours.WorkingHours
	entry.OTHours = hours.OTHours
	entry.OTPay = s.calculator.OTPay(hours.OTHours, w.MonthlySalary, w.BaseHours)

	return nil
}

// missingTime reports whether a time field is absent. The leave
// placeholder counts as absent so a leave day flipped back to a normal
// day must supply real times.
func missingTime(v *string) bool {
	return v == nil || validator.IsEmpty(*v) || *v == leavePlaceholder
}

// GetEntry implements attendance.EntryService.
func (s *EntryServiceImpl) GetEntry(ctx context.Context, id string) (attendance.EntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	return mapToEntryResponse(entry), nil
}

// GetEntryForDay implements attendance.EntryService.
func (s *EntryServiceImpl) GetEntryForDay(ctx context.Context, workerID, date string) (*attendance.EntryResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "date must be in YYYY-MM-DD format"},
		}
	}

	entry, err := s.entryRepo.GetByWorkerAndDate(ctx, workerID, day)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil // no entry yet for that day
	}

	resp := mapToEntryResponse(*entry)
	return &resp, nil
}

// ListEntries implements attendance.EntryService.
func (s *EntryServiceImpl) ListEntries(ctx context.Context, filter attendance.EntryFilter) (attendance.ListEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListEntriesResponse{}, err
	}

	entries, totalCount, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListEntriesResponse{}, err
	}

	result := make([]attendance.EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToEntryResponse(e))
	}

	totalPages := int(totalCount) / filter.Limit
	if int(totalCount)%filter.Limit > 0 {
		totalPages++
	}

	return attendance.ListEntriesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Entries:    result,
	}, nil
}

// DeleteEntry implements attendance.EntryService.
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepo.Delete(ctx, id)
}

func mapToEntryResponse(e attendance.Entry) attendance.EntryResponse {
	workerName := ""
	if e.WorkerName != nil {
		workerName = *e.WorkerName
	}

	return attendance.EntryResponse{
		ID:             e.ID,
		WorkerID:       e.WorkerID,
		WorkerName:     workerName,
		Date:           e.Date.Format("2006-01-02"),
		CheckIn:        e.CheckIn,
		CheckOut:       e.CheckOut,
		BreakMinutes:   e.BreakMinutes,
		WorkingHours:   e.WorkingHours,
		OTHours:        e.OTHours,
		OTPay:          e.OTPay,
		LeaveStatus:    string(e.LeaveStatus),
		AdvancePayment: e.AdvancePayment,
		Notes:          e.Notes,
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
