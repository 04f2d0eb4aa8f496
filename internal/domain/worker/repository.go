package worker

import "context"

// WorkerRepository defines data access for workers.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	// List retrieves workers, optionally filtered by status, ordered by name.
	List(ctx context.Context, status *Status) ([]Worker, error)

	Update(ctx context.Context, w Worker) error

	// Delete removes the worker. Attendance entries are intentionally left
	// in place so past logs survive the worker's removal.
	Delete(ctx context.Context, id string) error
}
