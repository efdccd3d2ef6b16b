package postgresql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/database"
)

const defaultLogLimit = 100

type rejectionLogRepository struct {
	db *database.DB
}

func NewRejectionLogRepository(db *database.DB) geofence.LogRepository {
	return &rejectionLogRepository{db: db}
}

// Insert implements geofence.LogRepository.
func (r *rejectionLogRepository) Insert(ctx context.Context, log geofence.RejectionLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rejection_logs (id, employee_id, occurred_at, date, action, latitude, longitude, distance_km, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if _, err := q.Exec(ctx, query,
		log.ID, log.EmployeeID, log.Timestamp, log.Date, log.Action,
		log.Latitude, log.Longitude, log.DistanceKm, log.Reason,
	); err != nil {
		return fmt.Errorf("insert rejection log: %w", err)
	}

	return nil
}

// List implements geofence.LogRepository.
func (r *rejectionLogRepository) List(ctx context.Context, filter geofence.LogFilter) ([]geofence.RejectionLog, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, employee_id, occurred_at, date, action, latitude, longitude, distance_km, reason
		FROM rejection_logs
	`)

	var conditions []string
	var args []any

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conditions = append(conditions, "date = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	args = append(args, limit)
	sb.WriteString(" ORDER BY occurred_at DESC LIMIT $" + strconv.Itoa(len(args)))

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list rejection logs: %w", err)
	}
	defer rows.Close()

	var logs []geofence.RejectionLog
	for rows.Next() {
		var log geofence.RejectionLog
		if err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.Timestamp, &log.Date, &log.Action,
			&log.Latitude, &log.Longitude, &log.DistanceKm, &log.Reason,
		); err != nil {
			return nil, fmt.Errorf("scan rejection log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
