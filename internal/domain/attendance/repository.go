package attendance

import (
	"context"
	"time"
)

// EntryRepository defines data access for attendance entries. The store
// enforces a unique (worker_id, date) pair; Upsert is the save path used
// by the entry form, which overwrites the existing entry for that day.
type EntryRepository interface {
	// Upsert inserts the entry, or overwrites the existing entry for the
	// same worker and date.
	Upsert(ctx context.Context, entry Entry) (Entry, error)

	GetByID(ctx context.Context, id string) (Entry, error)

	// GetByWorkerAndDate returns nil when no entry exists for that day.
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*Entry, error)

	// List retrieves entries with filters and pagination.
	List(ctx context.Context, filter EntryFilter) ([]Entry, int64, error)

	// ListByWorkerAndRange retrieves one worker's entries with dates in
	// [from, to], both boundary days included, ordered by date.
	ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]Entry, error)

	// ListByRange retrieves all workers' entries with dates in [from, to].
	ListByRange(ctx context.Context, from, to time.Time) ([]Entry, error)

	Update(ctx context.Context, entry Entry) error

	Delete(ctx context.Context, id string) error
}
