package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrInvalidStatus  = errors.New("status must be active or inactive")
)
