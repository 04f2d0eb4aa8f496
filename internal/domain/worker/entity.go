package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Worker is a crew member tracked for attendance and pay. MonthlySalary is
// the authoritative pay input; the rates below are derived on demand and
// never stored.
type Worker struct {
	ID            string
	Name          string
	Trade         *string
	BaseHours     float64
	MonthlySalary decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var thirty = decimal.NewFromInt(30)

// DailyRate spreads the monthly salary over a fixed 30-day month.
func (w Worker) DailyRate() decimal.Decimal {
	return w.MonthlySalary.Div(thirty)
}

// HourlyRate divides the daily rate by the worker's base hours.
// BaseHours must be positive; worker creation enforces that.
func (w Worker) HourlyRate() decimal.Decimal {
	return w.DailyRate().Div(decimal.NewFromFloat(w.BaseHours))
}

// OTRate is the overtime hourly rate at a 1.5x multiplier.
func (w Worker) OTRate() decimal.Decimal {
	return w.HourlyRate().Mul(decimal.NewFromFloat(1.5))
}
