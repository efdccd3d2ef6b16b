package summary

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/roster"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/summary"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	records attendance.Repository
	roster  roster.Client
}

func NewSummaryService(records attendance.Repository, rosterClient roster.Client) summary.Service {
	return &ServiceImpl{records: records, roster: rosterClient}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func today() string {
	return time.Now().UTC().Format(attendance.DateFormat)
}

// dayCounts distills one day's records against the roster headcount.
func dayCounts(date string, records []attendance.Record, totalEmployees int) summary.DayStat {
	present := make(map[string]struct{})
	withinOffice := 0
	for _, rec := range records {
		if rec.EmployeeID == "" {
			continue
		}
		present[rec.EmployeeID] = struct{}{}
		if rec.Status == geofence.StatusValid {
			withinOffice++
		}
	}

	presentCount := len(present)
	percentage := 0.0
	if totalEmployees > 0 {
		percentage = round2(float64(presentCount) / float64(totalEmployees) * 100)
	}

	return summary.DayStat{
		Date:                 date,
		TotalEmployees:       totalEmployees,
		PresentCount:         presentCount,
		AbsentCount:          totalEmployees - presentCount,
		AttendancePercentage: percentage,
		WithinOfficeCount:    withinOffice,
		OutsideOfficeCount:   presentCount - withinOffice,
	}
}

// DailySummary implements summary.Service.
func (s *ServiceImpl) DailySummary(ctx context.Context, date string, detailed bool) (summary.DailySummary, error) {
	if date == "" {
		date = today()
	} else if _, ok := validator.IsValidDate(date); !ok {
		return summary.DailySummary{}, validator.ValidationErrors{{Field: "date", Message: "must be a date in YYYY-MM-DD format"}}
	}

	records, err := s.records.ListByDate(ctx, date)
	if err != nil {
		return summary.DailySummary{}, fmt.Errorf("list records: %w", err)
	}

	employees, err := s.roster.All(ctx)
	if err != nil {
		return summary.DailySummary{}, err
	}

	byID := make(map[string]roster.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	counts := dayCounts(date, records, len(employees))

	presentIDs := make(map[string]struct{}, counts.PresentCount)
	presentEmployees := make([]summary.PresentEmployee, 0, len(records))
	for _, rec := range records {
		presentIDs[rec.EmployeeID] = struct{}{}

		name := "Unknown"
		var details *roster.Employee
		if emp, ok := byID[rec.EmployeeID]; ok {
			name = emp.Name
			details = &emp
		}

		entry := summary.PresentEmployee{
			EmployeeID:     rec.EmployeeID,
			Name:           name,
			ClockInTime:    rec.ClockIn,
			ClockOutTime:   rec.ClockOut,
			Status:         rec.Status,
			ClockOutStatus: rec.ClockOutStatus,
			WithinOffice:   rec.Status == geofence.StatusValid,
		}
		if detailed {
			entry.Location = rec.ClockInLocation
			entry.ClockOutLocation = rec.ClockOutLocation
			entry.EmployeeDetails = details
		}
		presentEmployees = append(presentEmployees, entry)
	}

	absentEmployees := make([]summary.AbsentEmployee, 0)
	for _, emp := range employees {
		if _, ok := presentIDs[emp.ID]; ok {
			continue
		}
		entry := summary.AbsentEmployee{EmployeeID: emp.ID, Name: emp.Name}
		if detailed {
			e := emp
			entry.EmployeeDetails = &e
		}
		absentEmployees = append(absentEmployees, entry)
	}

	sort.Slice(presentEmployees, func(i, j int) bool {
		return presentEmployees[i].Name < presentEmployees[j].Name
	})
	sort.Slice(absentEmployees, func(i, j int) bool {
		return absentEmployees[i].Name < absentEmployees[j].Name
	})

	return summary.DailySummary{
		Date:                 date,
		TotalEmployees:       counts.TotalEmployees,
		PresentCount:         counts.PresentCount,
		AbsentCount:          counts.AbsentCount,
		AttendancePercentage: counts.AttendancePercentage,
		WithinOfficeCount:    counts.WithinOfficeCount,
		OutsideOfficeCount:   counts.OutsideOfficeCount,
		PresentEmployees:     presentEmployees,
		AbsentEmployees:      absentEmployees,
	}, nil
}

// RangeSummary implements summary.Service.
func (s *ServiceImpl) RangeSummary(ctx context.Context, start, end string) (summary.RangeSummary, error) {
	if start == "" {
		return summary.RangeSummary{}, validator.ValidationErrors{{Field: "start_date", Message: "is required"}}
	}
	if end == "" {
		end = today()
	}

	startDate, ok := validator.IsValidDate(start)
	if !ok {
		return summary.RangeSummary{}, validator.ValidationErrors{{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"}}
	}
	endDate, ok := validator.IsValidDate(end)
	if !ok {
		return summary.RangeSummary{}, validator.ValidationErrors{{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"}}
	}
	if startDate.After(endDate) {
		return summary.RangeSummary{}, validator.ValidationErrors{{Field: "start_date", Message: "must be before or equal to end_date"}}
	}

	employees, err := s.roster.All(ctx)
	if err != nil {
		return summary.RangeSummary{}, err
	}
	totalEmployees := len(employees)

	var dailySummaries []summary.DayStat
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		date := d.Format(attendance.DateFormat)

		records, err := s.records.ListByDate(ctx, date)
		if err != nil {
			return summary.RangeSummary{}, fmt.Errorf("list records for %s: %w", date, err)
		}

		dailySummaries = append(dailySummaries, dayCounts(date, records, totalEmployees))
	}

	avg := 0.0
	if len(dailySummaries) > 0 {
		sum := 0.0
		for _, day := range dailySummaries {
			sum += day.AttendancePercentage
		}
		avg = round2(sum / float64(len(dailySummaries)))
	}

	return summary.RangeSummary{
		StartDate:               start,
		EndDate:                 end,
		TotalDays:               len(dailySummaries),
		TotalEmployees:          totalEmployees,
		AvgAttendancePercentage: avg,
		DailySummaries:          dailySummaries,
	}, nil
}

// EmployeeHistory implements summary.Service.
func (s *ServiceImpl) EmployeeHistory(ctx context.Context, employeeID, start, end string) ([]attendance.Record, error) {
	records, err := s.records.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	// Inclusive bounds; ISO date strings compare lexicographically in
	// chronological order.
	filtered := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if rec.Date == "" {
			continue
		}
		if start != "" && rec.Date < start {
			continue
		}
		if end != "" && rec.Date > end {
			continue
		}
		filtered = append(filtered, rec)
	}

	if len(filtered) == 0 {
		return nil, attendance.ErrNoRecords
	}
	return filtered, nil
}

// RecordsByDate implements summary.Service.
func (s *ServiceImpl) RecordsByDate(ctx context.Context, date, employeeID string) ([]attendance.Record, error) {
	var records []attendance.Record
	var err error

	if employeeID != "" {
		records, err = s.records.ListByEmployeeAndDate(ctx, employeeID, date)
	} else {
		records, err = s.records.ListByDate(ctx, date)
	}
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	if len(records) == 0 {
		return nil, attendance.ErrNoRecords
	}
	return records, nil
}

// EmployeeStatus implements summary.Service.
func (s *ServiceImpl) EmployeeStatus(ctx context.Context, employeeID string) (summary.EmployeeStatus, error) {
	date := today()

	records, err := s.records.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return summary.EmployeeStatus{}, fmt.Errorf("list records: %w", err)
	}

	if len(records) == 0 {
		return summary.EmployeeStatus{
			EmployeeID: employeeID,
			Date:       date,
			Status:     summary.StatusNotClockedIn,
		}, nil
	}

	latest := records[0]
	for _, rec := range records[1:] {
		if rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
		}
	}

	status := summary.EmployeeStatus{
		EmployeeID: employeeID,
		Date:       date,
		RecordID:   latest.ID,
	}

	if latest.Open() {
		action := geofence.ActionClockIn
		status.Status = summary.StatusClockedIn
		status.LastAction = &action
		status.LastActionTime = latest.ClockIn
		status.Location = latest.ClockInLocation
		v := latest.Status
		status.StatusValidity = &v
	} else {
		action := geofence.ActionClockOut
		status.Status = summary.StatusClockedOut
		status.LastAction = &action
		status.LastActionTime = latest.ClockOut
		status.Location = latest.ClockOutLocation
		status.StatusValidity = latest.ClockOutStatus
	}

	return status, nil
}
