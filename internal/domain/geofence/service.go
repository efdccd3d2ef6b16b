package geofence

import (
	"context"
)

// Service owns the geofence configuration and the location check.
type Service interface {
	// GetConfig returns the active configuration, creating it with defaults
	// on first access.
	GetConfig(ctx context.Context) (Config, error)

	// UpdateConfig validates and merges the supplied fields into the current
	// configuration and stamps the audit metadata. An out-of-range value
	// fails the whole update.
	UpdateConfig(ctx context.Context, req UpdateConfigRequest, actorID string) (Config, error)

	// Evaluate classifies a reported location against the office geofence.
	// Pure: no I/O, no side effects.
	Evaluate(office Point, radiusKm float64, reported Point) Evaluation

	// Logs returns rejection logs matching filter, newest first.
	Logs(ctx context.Context, filter LogFilter) ([]RejectionLog, error)
}
