package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	payrollService "github.com/crewpay/crewpay-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context, status *worker.Status) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		if status == nil || w.Status == *status {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, w worker.Worker) error {
	if _, ok := f.workers[w.ID]; !ok {
		return worker.ErrWorkerNotFound
	}
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string) error {
	delete(f.workers, id)
	return nil
}

type workerDateKey struct {
	workerID string
	date     string
}

type fakeEntryRepo struct {
	entries map[string]attendance.Entry
	byDay   map[workerDateKey]string
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{
		entries: make(map[string]attendance.Entry),
		byDay:   make(map[workerDateKey]string),
	}
}

func dayKey(workerID string, date time.Time) workerDateKey {
	return workerDateKey{workerID: workerID, date: date.Format("2006-01-02")}
}

func (f *fakeEntryRepo) Upsert(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	key := dayKey(entry.WorkerID, entry.Date)
	if existingID, ok := f.byDay[key]; ok {
		entry.ID = existingID // overwrite keeps the stored ID
	}
	entry.UpdatedAt = time.Now()
	f.entries[entry.ID] = entry
	f.byDay[key] = entry.ID
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return attendance.Entry{}, attendance.ErrEntryNotFound
	}
	return e, nil
}

func (f *fakeEntryRepo) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Entry, error) {
	id, ok := f.byDay[dayKey(workerID, date)]
	if !ok {
		return nil, nil
	}
	e := f.entries[id]
	return &e, nil
}

func (f *fakeEntryRepo) List(ctx context.Context, filter attendance.EntryFilter) ([]attendance.Entry, int64, error) {
	var out []attendance.Entry
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntryRepo) ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]attendance.Entry, error) {
	var out []attendance.Entry
	for _, e := range f.entries {
		if e.WorkerID == workerID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Entry, error) {
	var out []attendance.Entry
	for _, e := range f.entries {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, entry attendance.Entry) error {
	old, ok := f.entries[entry.ID]
	if !ok {
		return attendance.ErrEntryNotFound
	}
	delete(f.byDay, dayKey(old.WorkerID, old.Date))
	entry.UpdatedAt = time.Now()
	f.entries[entry.ID] = entry
	f.byDay[dayKey(entry.WorkerID, entry.Date)] = entry.ID
	return nil
}

func (f *fakeEntryRepo) Delete(ctx context.Context, id string) error {
	e, ok := f.entries[id]
	if !ok {
		return attendance.ErrEntryNotFound
	}
	delete(f.byDay, dayKey(e.WorkerID, e.Date))
	delete(f.entries, id)
	return nil
}

// ===== HELPERS =====

func newTestService(workers ...worker.Worker) (attendance.EntryService, *fakeWorkerRepo, *fakeEntryRepo) {
	workerRepo := &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
	for _, w := range workers {
		workerRepo.workers[w.ID] = w
	}
	entryRepo := newFakeEntryRepo()
	svc := NewEntryService(entryRepo, workerRepo, payrollService.NewCalculator(), config.DefaultsConfig{
		BaseHours:    10,
		BreakMinutes: 60,
	})
	return svc, workerRepo, entryRepo
}

func activeWorker(id string, salary int64, baseHours float64) worker.Worker {
	return worker.Worker{
		ID:            id,
		Name:          "Suresh",
		BaseHours:     baseHours,
		MonthlySalary: decimal.NewFromInt(salary),
		Status:        worker.StatusActive,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// ===== TESTS =====

func TestEntryService_SaveEntry_ComputesHoursAndPay(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(activeWorker("w-1", 30000, 10))

	resp, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID: "w-1",
		Date:     "2024-03-05",
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("08:00 PM"),
		// break defaults to 60 from config
	})

	require.NoError(t, err)
	assert.Equal(t, 11.0, resp.WorkingHours)
	assert.Equal(t, 1.0, resp.OTHours)
	// 1 OT hour at 30000/30/10*1.5 = 150
	assert.True(t, decimal.NewFromInt(150).Equal(resp.OTPay), "ot pay %s", resp.OTPay)
	assert.Equal(t, "none", resp.LeaveStatus)
	assert.Equal(t, 60, resp.BreakMinutes)
}

func TestEntryService_SaveEntry_InvalidTimeFormat(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(activeWorker("w-1", 30000, 10))

	_, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID: "w-1",
		Date:     "2024-03-05",
		CheckIn:  strPtr("whenever"),
		CheckOut: strPtr("17:00"),
	})

	assert.ErrorIs(t, err, attendance.ErrInvalidTimeFormat)
}

func TestEntryService_SaveEntry_WorkerNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID: "missing",
		Date:     "2024-03-05",
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("17:00"),
	})

	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestEntryService_SaveEntry_LeaveZeroesComputedFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(activeWorker("w-1", 30000, 10))

	resp, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID:       "w-1",
		Date:           "2024-03-06",
		CheckIn:        strPtr("08:00"),
		CheckOut:       strPtr("20:00"),
		LeaveStatus:    strPtr("rejected"),
		AdvancePayment: decimalPtr(decimal.NewFromInt(500)),
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.LeaveStatus)
	assert.Equal(t, 0.0, resp.WorkingHours)
	assert.Equal(t, 0.0, resp.OTHours)
	assert.True(t, resp.OTPay.IsZero())
	assert.Equal(t, "--", resp.CheckIn)
	assert.Equal(t, "--", resp.CheckOut)
	// Advance survives the leave tag
	assert.True(t, decimal.NewFromInt(500).Equal(resp.AdvancePayment))
}

func TestEntryService_SaveEntry_OverwritesSameDay(t *testing.T) {
	ctx := context.Background()
	svc, _, entryRepo := newTestService(activeWorker("w-1", 30000, 10))

	first, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID: "w-1",
		Date:     "2024-03-07",
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("18:00"),
	})
	require.NoError(t, err)

	second, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID:     "w-1",
		Date:         "2024-03-07",
		CheckIn:      strPtr("09:00"),
		CheckOut:     strPtr("21:00"),
		BreakMinutes: intPtr(0),
	})
	require.NoError(t, err)

	// Same day resolves to the same stored entry
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, entryRepo.entries, 1)
	assert.Equal(t, 12.0, second.WorkingHours)
}

func TestEntryService_GetEntryForDay(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(activeWorker("w-1", 30000, 10))

	created, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID: "w-1",
		Date:     "2024-03-10",
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("18:00"),
	})
	require.NoError(t, err)

	found, err := svc.GetEntryForDay(ctx, "w-1", "2024-03-10")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// No entry yet for another day
	missing, err := svc.GetEntryForDay(ctx, "w-1", "2024-03-11")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = svc.GetEntryForDay(ctx, "w-1", "not-a-date")
	require.Error(t, err)
}

func TestEntryService_UpdateEntry_RecomputesFromLiveWorker(t *testing.T) {
	ctx := context.Background()
	w := activeWorker("w-1", 30000, 10)
	svc, workerRepo, _ := newTestService(w)

	created, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID: "w-1",
		Date:     "2024-03-08",
		CheckIn:  strPtr("08:00"),
		CheckOut: strPtr("20:00"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(created.OTPay))

	// Salary doubles; a later edit must pick up the new rate, not the one
	// frozen at creation.
	w.MonthlySalary = decimal.NewFromInt(60000)
	require.NoError(t, workerRepo.Update(ctx, w))

	notes := "edited"
	updated, err := svc.UpdateEntry(ctx, attendance.UpdateEntryRequest{
		ID:    created.ID,
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(updated.OTPay), "ot pay %s", updated.OTPay)
}

func TestEntryService_UpdateEntry_LeaveToNormalNeedsTimes(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(activeWorker("w-1", 30000, 10))

	created, err := svc.SaveEntry(ctx, attendance.SaveEntryRequest{
		WorkerID:    "w-1",
		Date:        "2024-03-09",
		LeaveStatus: strPtr("approved"),
	})
	require.NoError(t, err)

	// Clearing the leave tag without supplying times must fail validation
	_, err = svc.UpdateEntry(ctx, attendance.UpdateEntryRequest{
		ID:          created.ID,
		LeaveStatus: strPtr("none"),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, attendance.ErrInvalidTimeFormat))

	// With times supplied the transition succeeds
	updated, err := svc.UpdateEntry(ctx, attendance.UpdateEntryRequest{
		ID:           created.ID,
		LeaveStatus:  strPtr("none"),
		CheckIn:      strPtr("08:00"),
		CheckOut:     strPtr("18:00"),
		BreakMinutes: intPtr(60),
	})
	require.NoError(t, err)
	assert.Equal(t, "none", updated.LeaveStatus)
	assert.Equal(t, 9.0, updated.WorkingHours)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
