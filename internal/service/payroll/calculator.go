package payroll

import (
	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/payroll"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// Calculator holds the pure pay arithmetic. Every method computes a fresh
// result from its inputs; recomputing over the same entries always yields
// identical output.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// OTPay computes the overtime pay for one entry:
// otHours x (monthlySalary / 30 / baseHours) x 1.5, rounded to 2 decimals.
// The hourly-rate divisor follows the worker's configured base hours, the
// same threshold the hour split uses. baseHours must be positive.
func (c *Calculator) OTPay(otHours float64, monthlySalary decimal.Decimal, baseHours float64) decimal.Decimal {
	if otHours <= 0 {
		return decimal.Zero
	}

	hourlyRate := monthlySalary.
		Div(decimal.NewFromInt(30)).
		Div(decimal.NewFromFloat(baseHours))
	otRate := hourlyRate.Mul(decimal.NewFromFloat(1.5))

	return otRate.Mul(decimal.NewFromFloat(otHours)).Round(2)
}

// MonthlySummary aggregates a month of entries for one worker. The caller
// supplies entries already filtered to the target month:
//   - overtime pay sums over non-leave entries only
//   - each rejected-leave day deducts one daily rate (salary / 30)
//   - advances sum over every entry regardless of leave status
//   - final payable = salary + OT pay - leave deduction - advances,
//     deliberately not floored at zero
//
// Approved leave is informational: zero hours, zero pay impact.
func (c *Calculator) MonthlySummary(w worker.Worker, month, year int, entries []attendance.Entry) payroll.MonthlySummary {
	totalOTPay := decimal.Zero
	totalAdvances := decimal.Zero
	rejectedDays := 0
	approvedDays := 0
	daysPresent := 0
	var workingHours, otHours float64

	for _, e := range entries {
		totalAdvances = totalAdvances.Add(e.AdvancePayment)

		switch e.LeaveStatus {
		case attendance.LeaveRejected:
			rejectedDays++
		case attendance.LeaveApproved:
			approvedDays++
		default:
			totalOTPay = totalOTPay.Add(e.OTPay)
			workingHours += e.WorkingHours
			otHours += e.OTHours
			daysPresent++
		}
	}

	leaveDeduction := w.DailyRate().
		Mul(decimal.NewFromInt(int64(rejectedDays))).
		Round(2)

	finalPayable := w.MonthlySalary.
		Add(totalOTPay).
		Sub(leaveDeduction).
		Sub(totalAdvances).
		Round(2)

	return payroll.MonthlySummary{
		WorkerID:          w.ID,
		Month:             month,
		Year:              year,
		MonthlySalary:     w.MonthlySalary,
		DaysPresent:       daysPresent,
		TotalWorkingHours: workingHours,
		TotalOTHours:      otHours,
		TotalOTPay:        totalOTPay,
		RejectedLeaveDays: rejectedDays,
		ApprovedLeaveDays: approvedDays,
		LeaveDeduction:    leaveDeduction,
		TotalAdvances:     totalAdvances,
		FinalPayable:      finalPayable,
	}
}
