package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/roster"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	// A geofence rejection carries its audit log as the response payload.
	var rejected *geofence.RejectedError
	if errors.As(err, &rejected) {
		JSON(w, http.StatusForbidden, rejected.Error(), rejected.Log)
		return
	}

	switch {
	case errors.Is(err, attendance.ErrNoActiveSession):
		BadRequest(w, "No active clock-in record found")
	case errors.Is(err, attendance.ErrNoRecords):
		NotFound(w, "No attendance records found")
	case errors.Is(err, roster.ErrUnavailable):
		InternalServerError(w, err.Error())
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
