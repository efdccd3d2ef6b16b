package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Every record query aliases the table as r; the session join in GetOpen
// shares column names with the records table.
const recordColumns = `
	r.id, r.employee_id, r.date, r.clock_in, r.clock_out,
	r.clock_in_latitude, r.clock_in_longitude, r.clock_in_distance_km,
	r.clock_out_latitude, r.clock_out_longitude, r.clock_out_distance_km,
	r.status, r.clock_out_status, r.created_at, r.updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (attendance.Record, error) {
	var rec attendance.Record
	var inLat, inLon, inDist, outLat, outLon, outDist *float64

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&inLat, &inLon, &inDist,
		&outLat, &outLon, &outDist,
		&rec.Status, &rec.ClockOutStatus, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	if inLat != nil && inLon != nil && inDist != nil {
		rec.ClockInLocation = &attendance.Location{Latitude: *inLat, Longitude: *inLon, DistanceKm: *inDist}
	}
	if outLat != nil && outLon != nil && outDist != nil {
		rec.ClockOutLocation = &attendance.Location{Latitude: *outLat, Longitude: *outLon, DistanceKm: *outDist}
	}

	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CreateOpen implements attendance.Repository.
func (a *attendanceRepository) CreateOpen(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	err := WithTransaction(ctx, a.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, a.db)

		insert := `
			INSERT INTO attendance_records (
				id, employee_id, date, clock_in,
				clock_in_latitude, clock_in_longitude, clock_in_distance_km,
				status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		var lat, lon, dist *float64
		if loc := rec.ClockInLocation; loc != nil {
			lat, lon, dist = &loc.Latitude, &loc.Longitude, &loc.DistanceKm
		}
		if _, err := q.Exec(ctx, insert,
			rec.ID, rec.EmployeeID, rec.Date, rec.ClockIn,
			lat, lon, dist,
			rec.Status, rec.CreatedAt, rec.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert attendance record: %w", err)
		}

		// Most recent open record wins: an existing session row for the day is
		// repointed at the new record.
		upsert := `
			INSERT INTO attendance_sessions (employee_id, date, open_record_id, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id, date)
			DO UPDATE SET open_record_id = EXCLUDED.open_record_id,
			              updated_at = EXCLUDED.updated_at
		`
		if _, err := q.Exec(ctx, upsert, rec.EmployeeID, rec.Date, rec.ID, rec.UpdatedAt); err != nil {
			return fmt.Errorf("upsert attendance session: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.Record{}, err
	}

	return rec, nil
}

// GetOpen implements attendance.Repository.
func (a *attendanceRepository) GetOpen(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records r
		JOIN attendance_sessions s ON s.open_record_id = r.id
		WHERE s.employee_id = $1 AND s.date = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open record: %w", err)
	}

	return &rec, nil
}

// Close implements attendance.Repository.
func (a *attendanceRepository) Close(ctx context.Context, rec attendance.Record) error {
	return WithTransaction(ctx, a.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, a.db)

		update := `
			UPDATE attendance_records
			SET clock_out = $2,
			    clock_out_latitude = $3, clock_out_longitude = $4, clock_out_distance_km = $5,
			    clock_out_status = $6, updated_at = $7
			WHERE id = $1
		`
		var lat, lon, dist *float64
		if loc := rec.ClockOutLocation; loc != nil {
			lat, lon, dist = &loc.Latitude, &loc.Longitude, &loc.DistanceKm
		}
		if _, err := q.Exec(ctx, update,
			rec.ID, rec.ClockOut, lat, lon, dist, rec.ClockOutStatus, rec.UpdatedAt,
		); err != nil {
			return fmt.Errorf("close attendance record: %w", err)
		}

		clear := `
			UPDATE attendance_sessions
			SET open_record_id = NULL, updated_at = $2
			WHERE open_record_id = $1
		`
		if _, err := q.Exec(ctx, clear, rec.ID, rec.UpdatedAt); err != nil {
			return fmt.Errorf("clear attendance session: %w", err)
		}

		return nil
	})
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records r WHERE date = $1 ORDER BY clock_in`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list records by date: %w", err)
	}
	return collectRecords(rows)
}

// ListByEmployee implements attendance.Repository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records r WHERE employee_id = $1 ORDER BY date, clock_in`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list records by employee: %w", err)
	}
	return collectRecords(rows)
}

// ListByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records r WHERE employee_id = $1 AND date = $2 ORDER BY clock_in`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("list records by employee and date: %w", err)
	}
	return collectRecords(rows)
}
