package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) attendance.EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `
	e.id, e.worker_id, e.date, e.check_in, e.check_out, e.break_minutes,
	e.working_hours, e.ot_hours, e.ot_pay, e.leave_status, e.advance_payment,
	e.notes, e.created_at, e.updated_at
`

func scanEntry(row pgx.Row) (attendance.Entry, error) {
	var e attendance.Entry
	err := row.Scan(
		&e.ID, &e.WorkerID, &e.Date, &e.CheckIn, &e.CheckOut, &e.BreakMinutes,
		&e.WorkingHours, &e.OTHours, &e.OTPay, &e.LeaveStatus, &e.AdvancePayment,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Upsert implements attendance.EntryRepository. The unique index on
// (worker_id, date) turns the original app's find-and-overwrite save into
// a single atomic statement.
func (r *entryRepository) Upsert(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries (
			id, worker_id, date, check_in, check_out, break_minutes,
			working_hours, ot_hours, ot_pay, leave_status, advance_payment, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (worker_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			break_minutes = EXCLUDED.break_minutes,
			working_hours = EXCLUDED.working_hours,
			ot_hours = EXCLUDED.ot_hours,
			ot_pay = EXCLUDED.ot_pay,
			leave_status = EXCLUDED.leave_status,
			advance_payment = EXCLUDED.advance_payment,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.WorkerID,
		entry.Date,
		entry.CheckIn,
		entry.CheckOut,
		entry.BreakMinutes,
		entry.WorkingHours,
		entry.OTHours,
		entry.OTPay,
		entry.LeaveStatus,
		entry.AdvancePayment,
		entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return attendance.Entry{}, fmt.Errorf("failed to upsert attendance entry: %w", err)
	}

	return entry, nil
}

// GetByID implements attendance.EntryRepository.
func (r *entryRepository) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries e
		WHERE e.id = $1
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Entry{}, attendance.ErrEntryNotFound
		}
		return attendance.Entry{}, fmt.Errorf("failed to get attendance entry: %w", err)
	}

	return entry, nil
}

// GetByWorkerAndDate implements attendance.EntryRepository.
func (r *entryRepository) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries e
		WHERE e.worker_id = $1 AND e.date = $2
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No entry for that day
		}
		return nil, fmt.Errorf("failed to get attendance entry by worker and date: %w", err)
	}

	return &entry, nil
}

// List implements attendance.EntryRepository.
func (r *entryRepository) List(ctx context.Context, filter attendance.EntryFilter) ([]attendance.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("e.worker_id = $%d", argPos))
		args = append(args, *filter.WorkerID)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("e.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("e.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_entries e
		` + whereClause

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance entries: %w", err)
	}

	// Sort columns are restricted by the filter's Validate; never derived
	// from raw input.
	sortColumn := map[string]string{
		"date":        "e.date",
		"worker_name": "w.name",
		"updated_at":  "e.updated_at",
	}[filter.SortBy]
	if sortColumn == "" {
		sortColumn = "e.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT `+entryColumns+`, w.name
		FROM attendance_entries e
		LEFT JOIN workers w ON w.id = e.worker_id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argPos, argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		var e attendance.Entry
		if err := rows.Scan(
			&e.ID, &e.WorkerID, &e.Date, &e.CheckIn, &e.CheckOut, &e.BreakMinutes,
			&e.WorkingHours, &e.OTHours, &e.OTPay, &e.LeaveStatus, &e.AdvancePayment,
			&e.Notes, &e.CreatedAt, &e.UpdatedAt, &e.WorkerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance entries: %w", err)
	}

	return entries, totalCount, nil
}

// ListByWorkerAndRange implements attendance.EntryRepository.
func (r *entryRepository) ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries e
		WHERE e.worker_id = $1 AND e.date >= $2 AND e.date <= $3
		ORDER BY e.date ASC
	`

	return r.queryEntries(ctx, q, query, workerID, from, to)
}

// ListByRange implements attendance.EntryRepository.
func (r *entryRepository) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM attendance_entries e
		WHERE e.date >= $1 AND e.date <= $2
		ORDER BY e.date ASC, e.worker_id ASC
	`

	return r.queryEntries(ctx, q, query, from, to)
}

func (r *entryRepository) queryEntries(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Entry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance entries: %w", err)
	}

	return entries, nil
}

// Update implements attendance.EntryRepository.
func (r *entryRepository) Update(ctx context.Context, entry attendance.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_entries
		SET date = $2, check_in = $3, check_out = $4, break_minutes = $5,
			working_hours = $6, ot_hours = $7, ot_pay = $8, leave_status = $9,
			advance_payment = $10, notes = $11, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID,
		entry.Date,
		entry.CheckIn,
		entry.CheckOut,
		entry.BreakMinutes,
		entry.WorkingHours,
		entry.OTHours,
		entry.OTPay,
		entry.LeaveStatus,
		entry.AdvancePayment,
		entry.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to update attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

// Delete implements attendance.EntryRepository.
func (r *entryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	// 23505 = unique_violation
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
