package attendance

import (
	"time"
)

// Location is a reported coordinate pair together with the great-circle
// distance from the office reference point computed at evaluation time.
type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// Record is one clock-in/clock-out pairing for an employee on a calendar day.
// Date is the UTC day of the clock-in, fixed at creation. A record with a nil
// ClockOut is "open"; closing it is the only mutation a record ever sees.
type Record struct {
	ID               string     `json:"id"`
	EmployeeID       string     `json:"employee_id"`
	Date             string     `json:"date"`
	ClockIn          *time.Time `json:"clock_in"`
	ClockOut         *time.Time `json:"clock_out"`
	ClockInLocation  *Location  `json:"location"`
	ClockOutLocation *Location  `json:"clock_out_location"`
	Status           string     `json:"status"`
	ClockOutStatus   *string    `json:"clock_out_status"`
	CreatedAt        time.Time  `json:"created_date"`
	UpdatedAt        time.Time  `json:"last_modified_date"`
}

// Open reports whether the record still awaits a clock-out.
func (r Record) Open() bool {
	return r.ClockOut == nil
}

// DateFormat is the wire and storage format for attendance days. Lexicographic
// comparison of dates in this form matches chronological order, which the
// history filters rely on.
const DateFormat = "2006-01-02"
