package attendance

import "context"

// EntryService defines business logic for attendance entries.
type EntryService interface {
	// SaveEntry creates or overwrites the entry for a worker on a date,
	// recomputing hours and overtime pay from the worker's current profile.
	SaveEntry(ctx context.Context, req SaveEntryRequest) (EntryResponse, error)

	// UpdateEntry edits an entry by ID and recomputes its derived fields.
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	GetEntry(ctx context.Context, id string) (EntryResponse, error)

	// GetEntryForDay looks up the entry for a worker on a date, used to
	// prefill the entry form. Returns nil when no entry exists yet.
	GetEntryForDay(ctx context.Context, workerID, date string) (*EntryResponse, error)

	ListEntries(ctx context.Context, filter EntryFilter) (ListEntriesResponse, error)

	DeleteEntry(ctx context.Context, id string) error
}
