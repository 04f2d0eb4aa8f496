package response

import (
	"errors"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/attendance"
	"github.com/crewpay/crewpay-backend-go/internal/domain/worker"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrInvalidStatus):
		BadRequest(w, "Invalid worker status", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrInvalidTimeFormat):
		BadRequest(w, "Invalid time format", nil)
	case errors.Is(err, attendance.ErrDuplicateEntry):
		Conflict(w, "An entry for this worker and date already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
