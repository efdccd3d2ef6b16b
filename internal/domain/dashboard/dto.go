package dashboard

// AttendanceSummary is the card data for one day. PresentCount carries the
// on-time headcount; late arrivals are reported separately in LateCount, and
// the two always sum to the number of distinct present employees.
type AttendanceSummary struct {
	Date              string  `json:"date"`
	TotalEmployees    int     `json:"total_employees"`
	PresentCount      int     `json:"present_count"`
	LateCount         int     `json:"late_count"`
	AbsentCount       int     `json:"absent_count"`
	PresentPercentage float64 `json:"present_percentage"`
	LatePercentage    float64 `json:"late_percentage"`
	AbsentPercentage  float64 `json:"absent_percentage"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Action     string `json:"action"`
	Time       string `json:"time"`
	IsLate     bool   `json:"is_late"`
}

// DayOverview is one bar of the weekly chart.
type DayOverview struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	Present     int    `json:"present"`
	Total       int    `json:"total"`
}

// Dashboard is the composed payload of GET /api/dashboard.
type Dashboard struct {
	AttendanceSummary AttendanceSummary `json:"attendance_summary"`
	RecentActivity    []Activity        `json:"recent_activity"`
	WeeklyOverview    []DayOverview     `json:"weekly_overview"`
}
