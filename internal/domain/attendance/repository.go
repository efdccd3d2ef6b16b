package attendance

import (
	"context"
)

// Repository persists attendance records and the per-(employee, date) session
// row that tracks which record, if any, is currently open. CreateOpen and
// Close mutate the record and the session together in one transaction so a
// clock-out never has to re-derive the open record by scanning and sorting.
type Repository interface {
	// CreateOpen inserts a new open record and points the employee's session
	// for that date at it. A session that already points at an open record is
	// repointed: most recent open record wins.
	CreateOpen(ctx context.Context, rec Record) (Record, error)

	// GetOpen resolves the record the employee's session for date currently
	// holds open. Returns nil without error when there is none.
	GetOpen(ctx context.Context, employeeID, date string) (*Record, error)

	// Close writes the clock-out fields of rec and clears the session pointer
	// that references it.
	Close(ctx context.Context, rec Record) error

	// ListByDate returns every record whose date equals date.
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// ListByEmployee returns every record for the employee across all dates.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListByEmployeeAndDate returns the employee's records for a single date.
	ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]Record, error)
}
