package attendance

import "errors"

// Attendance domain errors
var (
	ErrEntryNotFound     = errors.New("attendance entry not found")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrDuplicateEntry    = errors.New("an entry already exists for this worker on this date")
)
