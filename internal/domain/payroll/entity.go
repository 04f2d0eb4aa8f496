package payroll

import "github.com/shopspring/decimal"

// MonthlySummary is the aggregate of one worker's month:
// final payable = monthly salary + overtime pay - rejected-leave deduction
// - advances. Negative values are surfaced as-is; the report is
// descriptive, not a payment-issuing system.
type MonthlySummary struct {
	WorkerID          string
	Month             int
	Year              int
	MonthlySalary     decimal.Decimal
	DaysPresent       int
	TotalWorkingHours float64
	TotalOTHours      float64
	TotalOTPay        decimal.Decimal
	RejectedLeaveDays int
	ApprovedLeaveDays int
	LeaveDeduction    decimal.Decimal
	TotalAdvances     decimal.Decimal
	FinalPayable      decimal.Decimal
}
