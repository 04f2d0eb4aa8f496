package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payroll"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/crewpay/crewpay-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db         *database.DB
	workerRepo worker.WorkerRepository
	entryRepo  attendance.EntryRepository
	calculator *Calculator
}

func NewPayrollService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	entryRepo attendance.EntryRepository,
	calculator *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:         db,
		workerRepo: workerRepo,
		entryRepo:  entryRepo,
		calculator: calculator,
	}
}

// monthBounds returns the first and last day of the month, both inclusive.
func monthBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func (s *PayrollServiceImpl) MonthlySummary(ctx context.Context, req payroll.MonthlySummaryRequest) (payroll.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	// The worker must resolve before any computation happens.
	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	from, to := monthBounds(req.Month, req.Year)
	entries, err := s.entryRepo.ListByWorkerAndRange(ctx, w.ID, from, to)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, fmt.Errorf("failed to load entries for payroll: %w", err)
	}

	summary := s.calculator.MonthlySummary(w, req.Month, req.Year, entries)
	return mapToSummaryResponse(summary, w.Name), nil
}

func (s *PayrollServiceImpl) AllMonthlySummaries(ctx context.Context, req payroll.PeriodRequest) ([]payroll.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := monthBounds(req.Month, req.Year)

	// One transaction so the report sees a single snapshot of workers and
	// entries.
	var result []payroll.MonthlySummaryResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		status := worker.StatusActive
		workers, err := s.workerRepo.List(txCtx, &status)
		if err != nil {
			return fmt.Errorf("failed to load workers for payroll: %w", err)
		}

		entries, err := s.entryRepo.ListByRange(txCtx, from, to)
		if err != nil {
			return fmt.Errorf("failed to load entries for payroll: %w", err)
		}

		entriesByWorker := make(map[string][]attendance.Entry)
		for _, e := range entries {
			entriesByWorker[e.WorkerID] = append(entriesByWorker[e.WorkerID], e)
		}

		result = make([]payroll.MonthlySummaryResponse, 0, len(workers))
		for _, w := range workers {
			summary := s.calculator.MonthlySummary(w, req.Month, req.Year, entriesByWorker[w.ID])
			result = append(result, mapToSummaryResponse(summary, w.Name))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func mapToSummaryResponse(s payroll.MonthlySummary, workerName string) payroll.MonthlySummaryResponse {
	return payroll.MonthlySummaryResponse{
		WorkerID:          s.WorkerID,
		WorkerName:        workerName,
		Month:             s.Month,
		Year:              s.Year,
		MonthlySalary:     s.MonthlySalary,
		DaysPresent:       s.DaysPresent,
		TotalWorkingHours: s.TotalWorkingHours,
		TotalOTHours:      s.TotalOTHours,
		TotalOTPay:        s.TotalOTPay,
		RejectedLeaveDays: s.RejectedLeaveDays,
		ApprovedLeaveDays: s.ApprovedLeaveDays,
		LeaveDeduction:    s.LeaveDeduction,
		TotalAdvances:     s.TotalAdvances,
		FinalPayable:      s.FinalPayable,
	}
}
