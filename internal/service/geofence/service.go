package geofence

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/geo"
)

// Defaults used when no configuration has been persisted yet.
const (
	defaultOfficeLatitude  = 12.956203
	defaultOfficeLongitude = 80.195962
	defaultRadiusKm        = 0.1
)

type ServiceImpl struct {
	configs geofence.ConfigRepository
	logs    geofence.LogRepository
}

func NewGeofenceService(configs geofence.ConfigRepository, logs geofence.LogRepository) geofence.Service {
	return &ServiceImpl{configs: configs, logs: logs}
}

// Evaluate implements geofence.Service.
func (s *ServiceImpl) Evaluate(office geofence.Point, radiusKm float64, reported geofence.Point) geofence.Evaluation {
	distance := geo.DistanceKm(office.Latitude, office.Longitude, reported.Latitude, reported.Longitude)

	status := geofence.StatusValid
	if distance > radiusKm {
		status = geofence.StatusInvalidLocation
	}

	return geofence.Evaluation{DistanceKm: distance, Status: status}
}

// GetConfig implements geofence.Service.
func (s *ServiceImpl) GetConfig(ctx context.Context) (geofence.Config, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return geofence.Config{}, fmt.Errorf("get geofence config: %w", err)
	}
	if cfg != nil {
		return *cfg, nil
	}

	// First access: persist defaults. A concurrent creator winning the race
	// is fine; the re-read below returns whichever row landed.
	defaults := geofence.Config{
		OfficeLatitude:  defaultOfficeLatitude,
		OfficeLongitude: defaultOfficeLongitude,
		RadiusKm:        defaultRadiusKm,
		Enforced:        true,
		UpdatedAt:       time.Now().UTC(),
		UpdatedBy:       "system",
	}
	if err := s.configs.CreateDefault(ctx, defaults); err != nil {
		return geofence.Config{}, fmt.Errorf("create default geofence config: %w", err)
	}

	cfg, err = s.configs.Get(ctx)
	if err != nil {
		return geofence.Config{}, fmt.Errorf("reread geofence config: %w", err)
	}
	if cfg == nil {
		return defaults, nil
	}
	return *cfg, nil
}

// UpdateConfig implements geofence.Service.
func (s *ServiceImpl) UpdateConfig(ctx context.Context, req geofence.UpdateConfigRequest, actorID string) (geofence.Config, error) {
	if err := req.Validate(); err != nil {
		return geofence.Config{}, err
	}

	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return geofence.Config{}, err
	}

	if req.OfficeLatitude != nil {
		cfg.OfficeLatitude = *req.OfficeLatitude
	}
	if req.OfficeLongitude != nil {
		cfg.OfficeLongitude = *req.OfficeLongitude
	}
	if req.RadiusKm != nil {
		cfg.RadiusKm = *req.RadiusKm
	}
	if req.Enforced != nil {
		cfg.Enforced = *req.Enforced
	}

	cfg.UpdatedAt = time.Now().UTC()
	cfg.UpdatedBy = actorID

	if err := s.configs.Save(ctx, cfg); err != nil {
		return geofence.Config{}, fmt.Errorf("save geofence config: %w", err)
	}

	return cfg, nil
}

// Logs implements geofence.Service.
func (s *ServiceImpl) Logs(ctx context.Context, filter geofence.LogFilter) ([]geofence.RejectionLog, error) {
	logs, err := s.logs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rejection logs: %w", err)
	}
	return logs, nil
}
