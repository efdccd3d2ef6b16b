package dashboard

import (
	"context"
)

// Service composes the dashboard from the roster, the day's records and the
// trailing 7-day aggregation.
type Service interface {
	// GetDashboard builds the dashboard for date (YYYY-MM-DD); an empty date
	// means today (UTC).
	GetDashboard(ctx context.Context, date string) (Dashboard, error)
}
