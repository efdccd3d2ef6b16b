package summary

import (
	"context"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
)

// Service derives summaries, history and status views from the record store.
// All reads are eventually-consistent snapshots; nothing here writes.
type Service interface {
	// DailySummary aggregates one date. detailed adds location payloads and
	// full roster details per entry.
	DailySummary(ctx context.Context, date string, detailed bool) (DailySummary, error)

	// RangeSummary aggregates every day in [start, end] inclusive. start is
	// required and must not be after end; an empty end defaults to today.
	RangeSummary(ctx context.Context, start, end string) (RangeSummary, error)

	// EmployeeHistory returns the employee's records, optionally bounded by
	// inclusive ISO dates. Empty results fail with attendance.ErrNoRecords.
	EmployeeHistory(ctx context.Context, employeeID, start, end string) ([]attendance.Record, error)

	// RecordsByDate returns records for a date, optionally for one employee.
	// Empty results fail with attendance.ErrNoRecords.
	RecordsByDate(ctx context.Context, date, employeeID string) ([]attendance.Record, error)

	// EmployeeStatus reports whether the employee is currently clocked in,
	// clocked out, or has no record today.
	EmployeeStatus(ctx context.Context, employeeID string) (EmployeeStatus, error)
}
