package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// The config table holds at most one row, keyed by this id.
const configID = "office"

type geofenceConfigRepository struct {
	db *database.DB
}

func NewGeofenceConfigRepository(db *database.DB) geofence.ConfigRepository {
	return &geofenceConfigRepository{db: db}
}

// Get implements geofence.ConfigRepository.
func (g *geofenceConfigRepository) Get(ctx context.Context) (*geofence.Config, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT office_latitude, office_longitude, radius_km, enforced, updated_at, updated_by
		FROM geofence_config
		WHERE id = $1
	`

	var cfg geofence.Config
	err := q.QueryRow(ctx, query, configID).Scan(
		&cfg.OfficeLatitude, &cfg.OfficeLongitude, &cfg.RadiusKm,
		&cfg.Enforced, &cfg.UpdatedAt, &cfg.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get geofence config: %w", err)
	}

	return &cfg, nil
}

// CreateDefault implements geofence.ConfigRepository. ON CONFLICT DO NOTHING
// makes concurrent first-access creation idempotent.
func (g *geofenceConfigRepository) CreateDefault(ctx context.Context, cfg geofence.Config) error {
	q := GetQuerier(ctx, g.db)

	query := `
		INSERT INTO geofence_config (id, office_latitude, office_longitude, radius_km, enforced, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, configID,
		cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusKm,
		cfg.Enforced, cfg.UpdatedAt, cfg.UpdatedBy,
	); err != nil {
		return fmt.Errorf("create default geofence config: %w", err)
	}

	return nil
}

// Save implements geofence.ConfigRepository.
func (g *geofenceConfigRepository) Save(ctx context.Context, cfg geofence.Config) error {
	q := GetQuerier(ctx, g.db)

	query := `
		UPDATE geofence_config
		SET office_latitude = $2, office_longitude = $3, radius_km = $4,
		    enforced = $5, updated_at = $6, updated_by = $7
		WHERE id = $1
	`

	if _, err := q.Exec(ctx, query, configID,
		cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusKm,
		cfg.Enforced, cfg.UpdatedAt, cfg.UpdatedBy,
	); err != nil {
		return fmt.Errorf("save geofence config: %w", err)
	}

	return nil
}
