package attendance

import (
	"context"
)

// Service is the clock-in/clock-out state machine. Per (employee, date) a
// record moves NONE -> OPEN -> CLOSED; CLOSED is terminal.
type Service interface {
	// ClockIn evaluates the geofence and opens a new record for today.
	ClockIn(ctx context.Context, req ClockRequest) (Record, error)

	// ClockOut evaluates the geofence and closes the employee's open record
	// for today. Fails with ErrNoActiveSession when none exists.
	ClockOut(ctx context.Context, req ClockRequest) (Record, error)
}
