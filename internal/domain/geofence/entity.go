package geofence

import "time"

// Evaluation statuses.
const (
	StatusValid           = "VALID"
	StatusInvalidLocation = "INVALID_LOCATION"
)

// Actions recorded in rejection logs.
const (
	ActionClockIn  = "clock_in"
	ActionClockOut = "clock_out"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Config is the single active geofence configuration. It is created lazily
// with defaults on first read and mutated only through the admin update path.
type Config struct {
	OfficeLatitude  float64   `json:"office_latitude"`
	OfficeLongitude float64   `json:"office_longitude"`
	RadiusKm        float64   `json:"allowed_radius_km"`
	Enforced        bool      `json:"enforced"`
	UpdatedAt       time.Time `json:"last_modified_date"`
	UpdatedBy       string    `json:"modified_by"`
}

// Office returns the configured reference point.
func (c Config) Office() Point {
	return Point{Latitude: c.OfficeLatitude, Longitude: c.OfficeLongitude}
}

// Evaluation is the outcome of checking a reported location against the
// office geofence.
type Evaluation struct {
	DistanceKm float64 `json:"distance_km"`
	Status     string  `json:"status"`
}

// RejectionLog is the audit record written when an enforced geofence check
// fails. It is immutable once written.
type RejectionLog struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Timestamp  time.Time `json:"timestamp"`
	Date       string    `json:"date"`
	Action     string    `json:"action"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distance_km"`
	Reason     string    `json:"reason"`
}
