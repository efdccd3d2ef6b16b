package dashboard

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/dashboard"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/roster"
	"github.com/clockwise-hq/attendance-backend-go/internal/domain/summary"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// An arrival after 09:30 counts as late; 09:30 sharp, at any second, is
// on time.
const (
	lateHour   = 9
	lateMinute = 30
)

const recentActivityLimit = 5

type ServiceImpl struct {
	records attendance.Repository
	roster  roster.Client
	summary summary.Service
}

func NewDashboardService(
	records attendance.Repository,
	rosterClient roster.Client,
	summaryService summary.Service,
) dashboard.Service {
	return &ServiceImpl{
		records: records,
		roster:  rosterClient,
		summary: summaryService,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func isLate(t *time.Time) bool {
	if t == nil {
		return false
	}
	return t.Hour() > lateHour || (t.Hour() == lateHour && t.Minute() > lateMinute)
}

// GetDashboard implements dashboard.Service.
func (s *ServiceImpl) GetDashboard(ctx context.Context, date string) (dashboard.Dashboard, error) {
	if date == "" {
		date = time.Now().UTC().Format(attendance.DateFormat)
	}
	targetDate, ok := validator.IsValidDate(date)
	if !ok {
		return dashboard.Dashboard{}, validator.ValidationErrors{{Field: "date", Message: "must be a date in YYYY-MM-DD format"}}
	}

	var (
		employees []roster.Employee
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.roster.All(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.records.ListByDate(gCtx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.Dashboard{}, err
	}

	totalEmployees := len(employees)
	if totalEmployees == 0 {
		return dashboard.Dashboard{
			AttendanceSummary: dashboard.AttendanceSummary{Date: date},
			RecentActivity:    []dashboard.Activity{},
			WeeklyOverview:    []dashboard.DayOverview{},
		}, nil
	}

	byID := make(map[string]roster.Employee, totalEmployees)
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	onTime, late := 0, 0
	present := make(map[string]struct{})
	for _, rec := range records {
		if rec.EmployeeID == "" {
			continue
		}
		present[rec.EmployeeID] = struct{}{}

		if isLate(rec.ClockIn) {
			late++
		} else {
			onTime++
		}
	}

	// The presence set is authoritative: with multiple records per employee
	// the per-record classification can overcount, so reconcile.
	presentCount := len(present)
	if onTime+late != presentCount {
		onTime = presentCount - late
	}
	absentCount := totalEmployees - presentCount

	activity := s.recentActivity(records, byID)

	// The weekly chart is auxiliary; its failure degrades to an empty
	// overview rather than failing the whole dashboard.
	weekly, err := s.weeklyOverview(ctx, targetDate)
	if err != nil {
		slog.Error("failed to build weekly overview", "date", date, "error", err)
		weekly = []dashboard.DayOverview{}
	}

	return dashboard.Dashboard{
		AttendanceSummary: dashboard.AttendanceSummary{
			Date:              date,
			TotalEmployees:    totalEmployees,
			PresentCount:      onTime,
			LateCount:         late,
			AbsentCount:       absentCount,
			PresentPercentage: round1(float64(presentCount) / float64(totalEmployees) * 100),
			LatePercentage:    round1(float64(late) / float64(totalEmployees) * 100),
			AbsentPercentage:  round1(float64(absentCount) / float64(totalEmployees) * 100),
		},
		RecentActivity: activity,
		WeeklyOverview: weekly,
	}, nil
}

// recentActivity resolves the most recently modified records to their latest
// event and formats the feed entries.
func (s *ServiceImpl) recentActivity(records []attendance.Record, byID map[string]roster.Employee) []dashboard.Activity {
	sorted := make([]attendance.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})

	activity := make([]dashboard.Activity, 0, recentActivityLimit)
	for _, rec := range sorted {
		if len(activity) == recentActivityLimit {
			break
		}

		eventTime := rec.ClockIn
		action := "clocked in"
		if rec.ClockOut != nil {
			eventTime = rec.ClockOut
			action = "clocked out"
		}
		if eventTime == nil {
			continue
		}

		name := "Unknown Employee"
		if emp, ok := byID[rec.EmployeeID]; ok {
			name = emp.Name
		}

		entry := dashboard.Activity{
			EmployeeID: rec.EmployeeID,
			Name:       name,
			Action:     action,
			Time:       eventTime.Format("15:04"),
		}
		if rec.ClockOut == nil && isLate(eventTime) {
			entry.IsLate = true
			entry.Action = "arrived late"
		}

		activity = append(activity, entry)
	}

	return activity
}

// weeklyOverview covers the 7 calendar days ending at target inclusive.
func (s *ServiceImpl) weeklyOverview(ctx context.Context, target time.Time) ([]dashboard.DayOverview, error) {
	start := target.AddDate(0, 0, -6)

	rangeSummary, err := s.summary.RangeSummary(ctx,
		start.Format(attendance.DateFormat),
		target.Format(attendance.DateFormat),
	)
	if err != nil {
		return nil, err
	}

	weekly := make([]dashboard.DayOverview, 0, len(rangeSummary.DailySummaries))
	for _, day := range rangeSummary.DailySummaries {
		d, ok := validator.IsValidDate(day.Date)
		if !ok {
			continue
		}
		weekly = append(weekly, dashboard.DayOverview{
			Date:        day.Date,
			DisplayDate: d.Format("Mon"),
			Present:     day.PresentCount,
			Total:       day.TotalEmployees,
		})
	}

	return weekly, nil
}
