package worker

import (
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	Name          string          `json:"name"`
	Trade         *string         `json:"trade,omitempty"`
	BaseHours     *float64        `json:"base_hours,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Status        *string         `json:"status,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.BaseHours != nil && *r.BaseHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_hours",
			Message: "base_hours must be greater than zero",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Trade         *string          `json:"trade,omitempty"`
	BaseHours     *float64         `json:"base_hours,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.BaseHours != nil && *r.BaseHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_hours",
			Message: "base_hours must be greater than zero",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Trade         *string         `json:"trade,omitempty"`
	BaseHours     float64         `json:"base_hours"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type WorkerFilter struct {
	Status *string `json:"status,omitempty"`
}

func (f *WorkerFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
