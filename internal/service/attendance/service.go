package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/google/uuid"
)

type ServiceImpl struct {
	records  attendance.Repository
	logs     geofence.LogRepository
	geofence geofence.Service
}

func NewAttendanceService(
	records attendance.Repository,
	logs geofence.LogRepository,
	geofenceService geofence.Service,
) attendance.Service {
	return &ServiceImpl{
		records:  records,
		logs:     logs,
		geofence: geofenceService,
	}
}

// checkLocation evaluates the reported point against the current config and,
// when the check fails while enforcement is on, writes the rejection log and
// returns the typed rejection error. A log write failure is logged and
// swallowed: the rejection response already communicates the outcome.
func (s *ServiceImpl) checkLocation(ctx context.Context, req attendance.ClockRequest, action string, now time.Time) (geofence.Evaluation, error) {
	cfg, err := s.geofence.GetConfig(ctx)
	if err != nil {
		return geofence.Evaluation{}, err
	}

	reported := geofence.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	eval := s.geofence.Evaluate(cfg.Office(), cfg.RadiusKm, reported)

	if eval.Status == geofence.StatusInvalidLocation && cfg.Enforced {
		log := geofence.RejectionLog{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			Timestamp:  now,
			Date:       now.Format(attendance.DateFormat),
			Action:     action,
			Latitude:   reported.Latitude,
			Longitude:  reported.Longitude,
			DistanceKm: eval.DistanceKm,
			Reason:     "outside the allowed office radius",
		}
		if err := s.logs.Insert(ctx, log); err != nil {
			slog.Error("failed to write rejection log", "employee_id", req.EmployeeID, "action", action, "error", err)
		}
		return eval, &geofence.RejectedError{Log: log}
	}

	return eval, nil
}

// ClockIn implements attendance.Service.
func (s *ServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	now := time.Now().UTC()

	eval, err := s.checkLocation(ctx, req, geofence.ActionClockIn, now)
	if err != nil {
		return attendance.Record{}, err
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       now.Format(attendance.DateFormat),
		ClockIn:    &now,
		ClockInLocation: &attendance.Location{
			Latitude:   *req.Latitude,
			Longitude:  *req.Longitude,
			DistanceKm: eval.DistanceKm,
		},
		Status:    eval.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.records.CreateOpen(ctx, rec)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("create attendance record: %w", err)
	}

	return created, nil
}

// ClockOut implements attendance.Service.
func (s *ServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	now := time.Now().UTC()

	eval, err := s.checkLocation(ctx, req, geofence.ActionClockOut, now)
	if err != nil {
		return attendance.Record{}, err
	}

	open, err := s.records.GetOpen(ctx, req.EmployeeID, now.Format(attendance.DateFormat))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("resolve open record: %w", err)
	}
	if open == nil {
		return attendance.Record{}, attendance.ErrNoActiveSession
	}

	status := eval.Status
	open.ClockOut = &now
	open.ClockOutLocation = &attendance.Location{
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		DistanceKm: eval.DistanceKm,
	}
	open.ClockOutStatus = &status
	open.UpdatedAt = now

	if err := s.records.Close(ctx, *open); err != nil {
		return attendance.Record{}, fmt.Errorf("close attendance record: %w", err)
	}

	return *open, nil
}
