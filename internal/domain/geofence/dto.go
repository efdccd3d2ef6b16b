package geofence

import (
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
)

// UpdateConfigRequest is the body of PUT /api/config. Only supplied fields
// are merged into the existing configuration; nil fields keep their prior
// value. UpdatedBy identifies the actor for the audit stamp.
type UpdateConfigRequest struct {
	OfficeLatitude  *float64 `json:"office_latitude" validate:"omitempty,latitude"`
	OfficeLongitude *float64 `json:"office_longitude" validate:"omitempty,longitude"`
	RadiusKm        *float64 `json:"allowed_radius_km" validate:"omitempty,gt=0"`
	Enforced        *bool    `json:"enforced"`
	UpdatedBy       string   `json:"updated_by"`
}

func (r UpdateConfigRequest) Validate() error {
	return validator.Struct(r)
}

// LogFilter narrows a rejection-log query. Zero values mean "no filter";
// Limit <= 0 falls back to the default of 100.
type LogFilter struct {
	EmployeeID string
	Date       string
	Limit      int
}
