package summary

import (
	"time"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/roster"
)

// PresentEmployee is one attendance record resolved against the roster. There
// is one entry per record, not per employee, so a day with several records for
// the same person lists each of them.
type PresentEmployee struct {
	EmployeeID     string     `json:"employee_id"`
	Name           string     `json:"name"`
	ClockInTime    *time.Time `json:"clock_in_time"`
	ClockOutTime   *time.Time `json:"clock_out_time"`
	Status         string     `json:"status"`
	ClockOutStatus *string    `json:"clock_out_status"`
	WithinOffice   bool       `json:"within_office"`

	// Populated only for detailed summaries.
	Location         *attendance.Location `json:"location,omitempty"`
	ClockOutLocation *attendance.Location `json:"clock_out_location,omitempty"`
	EmployeeDetails  *roster.Employee     `json:"employee_details,omitempty"`
}

// AbsentEmployee is a roster member with no record on the summary date.
type AbsentEmployee struct {
	EmployeeID      string           `json:"employee_id"`
	Name            string           `json:"name"`
	EmployeeDetails *roster.Employee `json:"employee_details,omitempty"`
}

// DailySummary aggregates one calendar day.
type DailySummary struct {
	Date                 string            `json:"date"`
	TotalEmployees       int               `json:"total_employees"`
	PresentCount         int               `json:"present_count"`
	AbsentCount          int               `json:"absent_count"`
	AttendancePercentage float64           `json:"attendance_percentage"`
	WithinOfficeCount    int               `json:"within_office_count"`
	OutsideOfficeCount   int               `json:"outside_office_count"`
	PresentEmployees     []PresentEmployee `json:"present_employees"`
	AbsentEmployees      []AbsentEmployee  `json:"absent_employees"`
}

// DayStat is the per-day subset used inside a range summary.
type DayStat struct {
	Date                 string  `json:"date"`
	TotalEmployees       int     `json:"total_employees"`
	PresentCount         int     `json:"present_count"`
	AbsentCount          int     `json:"absent_count"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	WithinOfficeCount    int     `json:"within_office_count"`
	OutsideOfficeCount   int     `json:"outside_office_count"`
}

// RangeSummary aggregates every calendar day in [StartDate, EndDate]
// inclusive. AvgAttendancePercentage is the arithmetic mean of the daily
// percentages, not a presence ratio over the whole window.
type RangeSummary struct {
	StartDate               string    `json:"start_date"`
	EndDate                 string    `json:"end_date"`
	TotalDays               int       `json:"total_days"`
	TotalEmployees          int       `json:"total_employees"`
	AvgAttendancePercentage float64   `json:"avg_attendance_percentage"`
	DailySummaries          []DayStat `json:"daily_summaries"`
}

// Employee status values for today.
const (
	StatusNotClockedIn = "NOT_CLOCKED_IN"
	StatusClockedIn    = "CLOCKED_IN"
	StatusClockedOut   = "CLOCKED_OUT"
)

// EmployeeStatus is the current open/closed view for an employee today,
// derived from their most recently modified record.
type EmployeeStatus struct {
	EmployeeID     string               `json:"employee_id"`
	Date           string               `json:"date"`
	Status         string               `json:"status"`
	LastAction     *string              `json:"last_action"`
	LastActionTime *time.Time           `json:"last_action_time"`
	Location       *attendance.Location `json:"location"`
	RecordID       string               `json:"record_id,omitempty"`
	StatusValidity *string              `json:"status_valid,omitempty"`
}
