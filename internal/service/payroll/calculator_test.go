package payroll

import (
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testWorker(salary int64, baseHours float64) worker.Worker {
	return worker.Worker{
		ID:            "w-1",
		Name:          "Ravi",
		BaseHours:     baseHours,
		MonthlySalary: decimal.NewFromInt(salary),
		Status:        worker.StatusActive,
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculator_OTPay(t *testing.T) {
	calc := NewCalculator()

	// 30000 / 30 / 10 * 1.5 = 150 per OT hour
	got := calc.OTPay(2, decimal.NewFromInt(30000), 10)
	assert.True(t, decimal.NewFromInt(300).Equal(got), "got %s", got)

	// Zero OT hours pay nothing
	assert.True(t, calc.OTPay(0, decimal.NewFromInt(30000), 10).IsZero())

	// Rate follows the worker's base hours: an 8-hour day pays more per
	// OT hour than a 10-hour day on the same salary.
	eight := calc.OTPay(1, decimal.NewFromInt(24000), 8)
	assert.True(t, decimal.NewFromInt(150).Equal(eight), "got %s", eight)

	// Fractional hours round to 2 decimals
	frac := calc.OTPay(1.25, decimal.NewFromInt(10000), 10)
	assert.True(t, decimal.NewFromFloat(62.5).Equal(frac), "got %s", frac)
}

func TestCalculator_MonthlySummary_RejectedLeave(t *testing.T) {
	calc := NewCalculator()
	w := testWorker(30000, 10)

	entries := []attendance.Entry{
		{WorkerID: w.ID, Date: day(1), LeaveStatus: attendance.LeaveRejected,
			OTPay: decimal.Zero, AdvancePayment: decimal.Zero},
	}

	summary := calc.MonthlySummary(w, 3, 2024, entries)

	assert.Equal(t, 1, summary.RejectedLeaveDays)
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.LeaveDeduction), "deduction %s", summary.LeaveDeduction)
	assert.True(t, decimal.NewFromInt(29000).Equal(summary.FinalPayable), "payable %s", summary.FinalPayable)
	assert.True(t, summary.TotalOTPay.IsZero())
	assert.True(t, summary.TotalAdvances.IsZero())
}

func TestCalculator_MonthlySummary_ApprovedLeaveIsInformational(t *testing.T) {
	calc := NewCalculator()
	w := testWorker(30000, 10)

	// Approved leave with an advance recorded on the same day: the day
	// contributes nothing to OT or deductions, but the advance still counts.
	entries := []attendance.Entry{
		{WorkerID: w.ID, Date: day(4), LeaveStatus: attendance.LeaveApproved,
			OTPay: decimal.Zero, AdvancePayment: decimal.NewFromInt(500)},
		{WorkerID: w.ID, Date: day(5), LeaveStatus: attendance.LeaveNone,
			WorkingHours: 9, OTHours: 0, OTPay: decimal.Zero, AdvancePayment: decimal.Zero},
	}

	summary := calc.MonthlySummary(w, 3, 2024, entries)

	assert.Equal(t, 1, summary.ApprovedLeaveDays)
	assert.Equal(t, 0, summary.RejectedLeaveDays)
	assert.Equal(t, 1, summary.DaysPresent)
	assert.True(t, summary.LeaveDeduction.IsZero())
	assert.True(t, decimal.NewFromInt(500).Equal(summary.TotalAdvances))
	assert.True(t, decimal.NewFromInt(29500).Equal(summary.FinalPayable), "payable %s", summary.FinalPayable)
}

func TestCalculator_MonthlySummary_CombinesAllTerms(t *testing.T) {
	calc := NewCalculator()
	w := testWorker(30000, 10)

	entries := []attendance.Entry{
		// 11h worked, 1h OT at 150/h
		{WorkerID: w.ID, Date: day(1), LeaveStatus: attendance.LeaveNone,
			WorkingHours: 11, OTHours: 1, OTPay: decimal.NewFromInt(150),
			AdvancePayment: decimal.Zero},
		{WorkerID: w.ID, Date: day(2), LeaveStatus: attendance.LeaveRejected,
			OTPay: decimal.Zero, AdvancePayment: decimal.NewFromInt(2000)},
		{WorkerID: w.ID, Date: day(3), LeaveStatus: attendance.LeaveNone,
			WorkingHours: 9, OTHours: 0, OTPay: decimal.Zero,
			AdvancePayment: decimal.NewFromInt(1000)},
	}

	summary := calc.MonthlySummary(w, 3, 2024, entries)

	// 30000 + 150 - 1000 - 3000 = 26150
	assert.True(t, decimal.NewFromInt(150).Equal(summary.TotalOTPay))
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.LeaveDeduction))
	assert.True(t, decimal.NewFromInt(3000).Equal(summary.TotalAdvances))
	assert.True(t, decimal.NewFromInt(26150).Equal(summary.FinalPayable), "payable %s", summary.FinalPayable)
	assert.Equal(t, 2, summary.DaysPresent)
	assert.Equal(t, float64(20), summary.TotalWorkingHours)
	assert.Equal(t, float64(1), summary.TotalOTHours)
}

func TestCalculator_MonthlySummary_NegativePayableSurfacedAsIs(t *testing.T) {
	calc := NewCalculator()
	w := testWorker(3000, 10)

	entries := []attendance.Entry{
		{WorkerID: w.ID, Date: day(1), LeaveStatus: attendance.LeaveNone,
			OTPay: decimal.Zero, AdvancePayment: decimal.NewFromInt(5000)},
	}

	summary := calc.MonthlySummary(w, 3, 2024, entries)

	assert.True(t, decimal.NewFromInt(-2000).Equal(summary.FinalPayable), "payable %s", summary.FinalPayable)
}

func TestCalculator_MonthlySummary_EmptyMonth(t *testing.T) {
	calc := NewCalculator()
	w := testWorker(30000, 10)

	summary := calc.MonthlySummary(w, 3, 2024, nil)

	assert.Equal(t, 0, summary.DaysPresent)
	assert.True(t, decimal.NewFromInt(30000).Equal(summary.FinalPayable))
}

func TestCalculator_MonthlySummary_Idempotent(t *testing.T) {
	calc := NewCalculator()
	w := testWorker(27500, 8)

	entries := []attendance.Entry{
		{WorkerID: w.ID, Date: day(1), LeaveStatus: attendance.LeaveNone,
			WorkingHours: 10.5, OTHours: 2.5, OTPay: decimal.NewFromFloat(429.69),
			AdvancePayment: decimal.NewFromInt(200)},
		{WorkerID: w.ID, Date: day(2), LeaveStatus: attendance.LeaveRejected,
			OTPay: decimal.Zero, AdvancePayment: decimal.Zero},
	}

	first := calc.MonthlySummary(w, 3, 2024, entries)
	second := calc.MonthlySummary(w, 3, 2024, entries)

	assert.Equal(t, first, second)
}
