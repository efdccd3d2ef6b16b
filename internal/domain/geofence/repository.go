package geofence

import (
	"context"
)

// ConfigRepository persists the singleton geofence configuration.
type ConfigRepository interface {
	// Get returns the active configuration, or nil when none has been
	// persisted yet.
	Get(ctx context.Context) (*Config, error)

	// CreateDefault persists cfg only if no configuration exists. Concurrent
	// first-access calls are safe; at most one insert wins.
	CreateDefault(ctx context.Context, cfg Config) error

	// Save overwrites the active configuration.
	Save(ctx context.Context, cfg Config) error
}

// LogRepository persists rejection logs. Logs are insert-only.
type LogRepository interface {
	Insert(ctx context.Context, log RejectionLog) error

	// List returns logs matching filter, newest first.
	List(ctx context.Context, filter LogFilter) ([]RejectionLog, error)
}
