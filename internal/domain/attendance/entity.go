package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveStatus is the exclusive three-way classification of an entry. A
// single tag replaces the pair of leave booleans so an entry can never be
// approved and rejected leave at the same time.
type LeaveStatus string

const (
	LeaveNone     LeaveStatus = "none"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Entry is one worker-day attendance record. WorkingHours, OTHours and
// OTPay are computed from the worker's current profile on every save and
// persisted for fast display.
type Entry struct {
	ID             string
	WorkerID       string
	Date           time.Time
	CheckIn        string
	CheckOut       string
	BreakMinutes   int
	WorkingHours   float64
	OTHours        float64
	OTPay          decimal.Decimal
	LeaveStatus    LeaveStatus
	AdvancePayment decimal.Decimal
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	WorkerName *string
}

// OnLeave reports whether the entry is any kind of leave day.
func (e Entry) OnLeave() bool {
	return e.LeaveStatus == LeaveApproved || e.LeaveStatus == LeaveRejected
}
