package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/roster"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/summary"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
	summaryService "github.com/clockwise-hq/attendance-backend-go/internal/service/summary"
)

// failingSummary errors on the range aggregation the weekly overview uses.
type failingSummary struct{}

func (failingSummary) DailySummary(ctx context.Context, date string, detailed bool) (summary.DailySummary, error) {
	return summary.DailySummary{}, nil
}

func (failingSummary) RangeSummary(ctx context.Context, start, end string) (summary.RangeSummary, error) {
	return summary.RangeSummary{}, errors.New("aggregation store offline")
}

func (failingSummary) EmployeeHistory(ctx context.Context, employeeID, start, end string) ([]attendance.Record, error) {
	return nil, nil
}

func (failingSummary) RecordsByDate(ctx context.Context, date, employeeID string) ([]attendance.Record, error) {
	return nil, nil
}

func (failingSummary) EmployeeStatus(ctx context.Context, employeeID string) (summary.EmployeeStatus, error) {
	return summary.EmployeeStatus{}, nil
}

type fakeRecordRepo struct {
	records []attendance.Record
}

func (f *fakeRecordRepo) CreateOpen(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRecordRepo) GetOpen(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepo) Close(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeRecordRepo) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRoster struct {
	employees []roster.Employee
	err       error
}

func (f *fakeRoster) All(ctx context.Context) ([]roster.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

const testDate = "2025-03-14"

func at(hour, minute, second int) *time.Time {
	t := time.Date(2025, 3, 14, hour, minute, second, 0, time.UTC)
	return &t
}

func openRecord(id, employeeID string, clockIn *time.Time) attendance.Record {
	return attendance.Record{
		ID:         id,
		EmployeeID: employeeID,
		Date:       testDate,
		ClockIn:    clockIn,
		Status:     geofence.StatusValid,
		CreatedAt:  *clockIn,
		UpdatedAt:  *clockIn,
	}
}

func closedRecord(id, employeeID string, clockIn, clockOut *time.Time) attendance.Record {
	rec := openRecord(id, employeeID, clockIn)
	status := geofence.StatusValid
	rec.ClockOut = clockOut
	rec.ClockOutStatus = &status
	rec.UpdatedAt = *clockOut
	return rec
}

func rosterOf(n int) []roster.Employee {
	employees := make([]roster.Employee, 0, n)
	for i := 1; i <= n; i++ {
		employees = append(employees, roster.Employee{
			ID:   fmt.Sprintf("EMP%03d", i),
			Name: fmt.Sprintf("Employee %d", i),
		})
	}
	return employees
}

func newTestService(records *fakeRecordRepo, rc roster.Client) *ServiceImpl {
	return NewDashboardService(records, rc, summaryService.NewSummaryService(records, rc)).(*ServiceImpl)
}

func TestIsLateBoundary(t *testing.T) {
	assert.False(t, isLate(at(9, 30, 0)))
	assert.False(t, isLate(at(9, 30, 59)))
	assert.True(t, isLate(at(9, 31, 0)))
	assert.True(t, isLate(at(10, 0, 0)))
	assert.False(t, isLate(at(8, 0, 0)))
	assert.False(t, isLate(nil))
}

func TestGetDashboardSummary(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		openRecord("r1", "EMP001", at(9, 0, 0)),
		openRecord("r2", "EMP002", at(9, 45, 0)),
	}}
	svc := newTestService(records, &fakeRoster{employees: rosterOf(4)})

	got, err := svc.GetDashboard(context.Background(), testDate)
	require.NoError(t, err)

	s := got.AttendanceSummary
	assert.Equal(t, testDate, s.Date)
	assert.Equal(t, 4, s.TotalEmployees)
	assert.Equal(t, 1, s.PresentCount)
	assert.Equal(t, 1, s.LateCount)
	assert.Equal(t, 2, s.AbsentCount)
	assert.InDelta(t, 50.0, s.PresentPercentage, 1e-9)
	assert.InDelta(t, 25.0, s.LatePercentage, 1e-9)
	assert.InDelta(t, 50.0, s.AbsentPercentage, 1e-9)
}

func TestGetDashboardReconcilesMultipleRecords(t *testing.T) {
	// One employee with two records on the day must not count twice.
	records := &fakeRecordRepo{records: []attendance.Record{
		closedRecord("r1", "EMP001", at(8, 0, 0), at(12, 0, 0)),
		openRecord("r2", "EMP001", at(13, 0, 0)),
	}}
	svc := newTestService(records, &fakeRoster{employees: rosterOf(2)})

	got, err := svc.GetDashboard(context.Background(), testDate)
	require.NoError(t, err)

	s := got.AttendanceSummary
	assert.Equal(t, 1, s.PresentCount+s.LateCount)
	assert.Equal(t, 1, s.AbsentCount)
}

func TestGetDashboardEmptyRoster(t *testing.T) {
	svc := newTestService(&fakeRecordRepo{}, &fakeRoster{})

	got, err := svc.GetDashboard(context.Background(), testDate)
	require.NoError(t, err)

	assert.Zero(t, got.AttendanceSummary.TotalEmployees)
	assert.NotNil(t, got.RecentActivity)
	assert.Empty(t, got.RecentActivity)
	assert.NotNil(t, got.WeeklyOverview)
	assert.Empty(t, got.WeeklyOverview)
}

func TestGetDashboardInvalidDate(t *testing.T) {
	svc := newTestService(&fakeRecordRepo{}, &fakeRoster{})

	_, err := svc.GetDashboard(context.Background(), "2025/03/14")
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
}

func TestGetDashboardRosterUnavailable(t *testing.T) {
	svc := newTestService(&fakeRecordRepo{}, &fakeRoster{err: roster.ErrUnavailable})

	_, err := svc.GetDashboard(context.Background(), testDate)
	assert.ErrorIs(t, err, roster.ErrUnavailable)
}

func TestRecentActivityFormatting(t *testing.T) {
	records := []attendance.Record{
		openRecord("r1", "EMP001", at(9, 5, 0)),
		closedRecord("r2", "EMP002", at(8, 30, 0), at(17, 10, 0)),
		openRecord("r3", "EMP003", at(9, 45, 0)),
		openRecord("r4", "EMP999", at(9, 0, 0)),
	}
	byID := map[string]roster.Employee{
		"EMP001": {ID: "EMP001", Name: "Asha"},
		"EMP002": {ID: "EMP002", Name: "Bilal"},
		"EMP003": {ID: "EMP003", Name: "Chitra"},
	}
	svc := newTestService(&fakeRecordRepo{}, &fakeRoster{})

	activity := svc.recentActivity(records, byID)
	require.Len(t, activity, 4)

	// Newest modification first: r2 closed at 17:10.
	assert.Equal(t, "Bilal", activity[0].Name)
	assert.Equal(t, "clocked out", activity[0].Action)
	assert.Equal(t, "17:10", activity[0].Time)
	assert.False(t, activity[0].IsLate)

	// r3 clocked in after the cutoff.
	assert.Equal(t, "Chitra", activity[1].Name)
	assert.Equal(t, "arrived late", activity[1].Action)
	assert.True(t, activity[1].IsLate)

	assert.Equal(t, "Asha", activity[2].Name)
	assert.Equal(t, "clocked in", activity[2].Action)
	assert.Equal(t, "09:05", activity[2].Time)

	assert.Equal(t, "Unknown Employee", activity[3].Name)
}

func TestRecentActivityCap(t *testing.T) {
	var records []attendance.Record
	for i := 0; i < 8; i++ {
		records = append(records, openRecord(fmt.Sprintf("r%d", i), fmt.Sprintf("EMP%03d", i), at(9, i, 0)))
	}
	svc := newTestService(&fakeRecordRepo{}, &fakeRoster{})

	activity := svc.recentActivity(records, nil)
	assert.Len(t, activity, 5)
	// The five most recent clock-ins, newest first.
	assert.Equal(t, "09:07", activity[0].Time)
	assert.Equal(t, "09:03", activity[4].Time)
}

func TestWeeklyOverviewFailureDegrades(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		openRecord("r1", "EMP001", at(9, 0, 0)),
	}}
	svc := NewDashboardService(records, &fakeRoster{employees: rosterOf(2)}, failingSummary{})

	got, err := svc.GetDashboard(context.Background(), testDate)
	require.NoError(t, err)

	// The card data is intact; only the weekly chart is empty.
	assert.Equal(t, 2, got.AttendanceSummary.TotalEmployees)
	assert.NotNil(t, got.WeeklyOverview)
	assert.Empty(t, got.WeeklyOverview)
}

func TestWeeklyOverview(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		openRecord("r1", "EMP001", at(9, 0, 0)),
	}}
	svc := newTestService(records, &fakeRoster{employees: rosterOf(2)})

	got, err := svc.GetDashboard(context.Background(), testDate)
	require.NoError(t, err)

	weekly := got.WeeklyOverview
	require.Len(t, weekly, 7)
	assert.Equal(t, "2025-03-08", weekly[0].Date)
	assert.Equal(t, "Sat", weekly[0].DisplayDate)
	assert.Equal(t, testDate, weekly[6].Date)
	assert.Equal(t, "Fri", weekly[6].DisplayDate)
	assert.Equal(t, 1, weekly[6].Present)
	assert.Equal(t, 2, weekly[6].Total)
	assert.Equal(t, 0, weekly[0].Present)
}
