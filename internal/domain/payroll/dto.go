package payroll

import (
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MonthlySummaryRequest struct {
	WorkerID string `json:"worker_id"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	errs := validatePeriod(r.Month, r.Year)
	if len(errs) > 0 {
		return validator.ValidationErrors(errs)
	}
	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	return errs
}

type MonthlySummaryResponse struct {
	WorkerID          string          `json:"worker_id"`
	WorkerName        string          `json:"worker_name"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	DaysPresent       int             `json:"days_present"`
	TotalWorkingHours float64         `json:"total_working_hours"`
	TotalOTHours      float64         `json:"total_ot_hours"`
	TotalOTPay        decimal.Decimal `json:"total_ot_pay"`
	RejectedLeaveDays int             `json:"rejected_leave_days"`
	ApprovedLeaveDays int             `json:"approved_leave_days"`
	LeaveDeduction    decimal.Decimal `json:"leave_deduction"`
	TotalAdvances     decimal.Decimal `json:"total_advances"`
	FinalPayable      decimal.Decimal `json:"final_payable"`
}
