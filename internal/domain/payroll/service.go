package payroll

import "context"

// PayrollService produces monthly pay summaries from persisted entries.
// Date filtering to the target month happens here; the underlying
// calculator is pure and only ever sees the filtered set.
type PayrollService interface {
	// MonthlySummary aggregates one worker's month.
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// AllMonthlySummaries aggregates the month for every active worker.
	AllMonthlySummaries(ctx context.Context, req PeriodRequest) ([]MonthlySummaryResponse, error)
}
