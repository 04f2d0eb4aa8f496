package attendance

import (
	"strings"

	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validLeaveStatuses = []string{string(LeaveNone), string(LeaveApproved), string(LeaveRejected)}

// SaveEntryRequest creates or overwrites the entry for a worker on a date.
// Check-in/check-out and break are ignored when the entry is a leave day.
type SaveEntryRequest struct {
	WorkerID       string           `json:"worker_id"`
	Date           string           `json:"date"` // YYYY-MM-DD
	CheckIn        *string          `json:"check_in,omitempty"`
	CheckOut       *string          `json:"check_out,omitempty"`
	BreakMinutes   *int             `json:"break_minutes,omitempty"`
	LeaveStatus    *string          `json:"leave_status,omitempty"`
	AdvancePayment *decimal.Decimal `json:"advance_payment,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *SaveEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.LeaveStatus != nil && !validator.IsInSlice(strings.ToLower(*r.LeaveStatus), validLeaveStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_status",
			Message: "leave_status must be one of: none, approved, rejected",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.AdvancePayment != nil && r.AdvancePayment.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "advance_payment",
			Message: "advance_payment must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEntryRequest edits an entry in place by ID. Computed fields are
// recalculated from the worker's current profile on every update.
type UpdateEntryRequest struct {
	ID             string           `json:"-"`
	Date           *string          `json:"date,omitempty"` // YYYY-MM-DD
	CheckIn        *string          `json:"check_in,omitempty"`
	CheckOut       *string          `json:"check_out,omitempty"`
	BreakMinutes   *int             `json:"break_minutes,omitempty"`
	LeaveStatus    *string          `json:"leave_status,omitempty"`
	AdvancePayment *decimal.Decimal `json:"advance_payment,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.LeaveStatus != nil && !validator.IsInSlice(strings.ToLower(*r.LeaveStatus), validLeaveStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_status",
			Message: "leave_status must be one of: none, approved, rejected",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if r.AdvancePayment != nil && r.AdvancePayment.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "advance_payment",
			Message: "advance_payment must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EntryResponse struct {
	ID             string          `json:"id"`
	WorkerID       string          `json:"worker_id"`
	WorkerName     string          `json:"worker_name,omitempty"`
	Date           string          `json:"date"`
	CheckIn        string          `json:"check_in"`
	CheckOut       string          `json:"check_out"`
	BreakMinutes   int             `json:"break_minutes"`
	WorkingHours   float64         `json:"working_hours"`
	OTHours        float64         `json:"ot_hours"`
	OTPay          decimal.Decimal `json:"ot_pay"`
	LeaveStatus    string          `json:"leave_status"`
	AdvancePayment decimal.Decimal `json:"advance_payment"`
	Notes          *string         `json:"notes,omitempty"`
	UpdatedAt      string          `json:"updated_at"`
}

type EntryFilter struct {
	// Search & Filter
	WorkerID  *string `json:"worker_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, worker_name, updated_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"date", "worker_name", "updated_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, worker_name, updated_at",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntriesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Entries    []EntryResponse `json:"entries"`
}
