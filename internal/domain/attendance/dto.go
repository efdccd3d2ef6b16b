package attendance

import (
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
)

// ClockRequest is the body of POST /api/attendance. ClockIn selects the
// transition: true clocks the employee in, false clocks them out. ClockIn and
// the coordinates are pointers so that a missing field is distinguishable
// from a genuine false or zero; an absent clock_in must not run a clock-out.
type ClockRequest struct {
	EmployeeID string   `json:"employee_id" validate:"required"`
	ClockIn    *bool    `json:"clock_in" validate:"required"`
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
}

func (r ClockRequest) Validate() error {
	return validator.Struct(r)
}
