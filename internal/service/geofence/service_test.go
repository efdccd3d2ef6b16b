package geofence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockwise-hq/attendance-backend-go/internal/domain/geofence"
	"github.com/clockwise-hq/attendance-backend-go/internal/pkg/validator"
)

type fakeConfigRepo struct {
	cfg         *geofence.Config
	createCalls int
	saveCalls   int
}

func (f *fakeConfigRepo) Get(ctx context.Context) (*geofence.Config, error) {
	if f.cfg == nil {
		return nil, nil
	}
	c := *f.cfg
	return &c, nil
}

func (f *fakeConfigRepo) CreateDefault(ctx context.Context, cfg geofence.Config) error {
	f.createCalls++
	if f.cfg == nil {
		c := cfg
		f.cfg = &c
	}
	return nil
}

func (f *fakeConfigRepo) Save(ctx context.Context, cfg geofence.Config) error {
	f.saveCalls++
	c := cfg
	f.cfg = &c
	return nil
}

type fakeLogRepo struct {
	logs []geofence.RejectionLog
}

func (f *fakeLogRepo) Insert(ctx context.Context, log geofence.RejectionLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeLogRepo) List(ctx context.Context, filter geofence.LogFilter) ([]geofence.RejectionLog, error) {
	var out []geofence.RejectionLog
	for _, l := range f.logs {
		if filter.EmployeeID != "" && l.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != "" && l.Date != filter.Date {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func ptrF(v float64) *float64 { return &v }
func ptrB(v bool) *bool       { return &v }

func newTestService() (geofence.Service, *fakeConfigRepo, *fakeLogRepo) {
	configs := &fakeConfigRepo{}
	logs := &fakeLogRepo{}
	return NewGeofenceService(configs, logs), configs, logs
}

func TestGetConfigCreatesDefaultsOnFirstAccess(t *testing.T) {
	svc, configs, _ := newTestService()

	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, configs.createCalls)
	assert.InDelta(t, 12.956203, cfg.OfficeLatitude, 1e-9)
	assert.InDelta(t, 80.195962, cfg.OfficeLongitude, 1e-9)
	assert.InDelta(t, 0.1, cfg.RadiusKm, 1e-9)
	assert.True(t, cfg.Enforced)
	assert.Equal(t, "system", cfg.UpdatedBy)
}

func TestGetConfigReusesExisting(t *testing.T) {
	svc, configs, _ := newTestService()

	_, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	_, err = svc.GetConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, configs.createCalls)
}

func TestEvaluateWithinRadius(t *testing.T) {
	svc, _, _ := newTestService()
	office := geofence.Point{Latitude: 12.956203, Longitude: 80.195962}

	eval := svc.Evaluate(office, 0.1, geofence.Point{Latitude: 12.9562, Longitude: 80.1959})
	assert.Equal(t, geofence.StatusValid, eval.Status)
	assert.Less(t, eval.DistanceKm, 0.1)
}

func TestEvaluateOutsideRadius(t *testing.T) {
	svc, _, _ := newTestService()
	office := geofence.Point{Latitude: 12.956203, Longitude: 80.195962}

	eval := svc.Evaluate(office, 0.1, geofence.Point{Latitude: 12.96, Longitude: 80.20})
	assert.Equal(t, geofence.StatusInvalidLocation, eval.Status)
	assert.Greater(t, eval.DistanceKm, 0.1)
}

func TestEvaluateExactBoundaryIsValid(t *testing.T) {
	svc, _, _ := newTestService()
	office := geofence.Point{Latitude: 12.956203, Longitude: 80.195962}

	// Distance equal to the radius is within the fence.
	eval := svc.Evaluate(office, 0.0, office)
	assert.Equal(t, geofence.StatusValid, eval.Status)
}

func TestUpdateConfigPartialMerge(t *testing.T) {
	svc, _, _ := newTestService()

	updated, err := svc.UpdateConfig(context.Background(), geofence.UpdateConfigRequest{
		RadiusKm: ptrF(0.25),
	}, "admin-1")
	require.NoError(t, err)

	assert.InDelta(t, 0.25, updated.RadiusKm, 1e-9)
	// Untouched fields keep the defaults.
	assert.InDelta(t, 12.956203, updated.OfficeLatitude, 1e-9)
	assert.True(t, updated.Enforced)
	assert.Equal(t, "admin-1", updated.UpdatedBy)
}

func TestUpdateConfigDisableEnforcement(t *testing.T) {
	svc, configs, _ := newTestService()

	updated, err := svc.UpdateConfig(context.Background(), geofence.UpdateConfigRequest{
		Enforced: ptrB(false),
	}, "admin-1")
	require.NoError(t, err)

	assert.False(t, updated.Enforced)
	assert.Equal(t, 1, configs.saveCalls)
}

func TestUpdateConfigRejectsOutOfRangeValues(t *testing.T) {
	svc, configs, _ := newTestService()

	cases := []geofence.UpdateConfigRequest{
		{OfficeLatitude: ptrF(91)},
		{OfficeLatitude: ptrF(-91)},
		{OfficeLongitude: ptrF(181)},
		{OfficeLongitude: ptrF(-181)},
		{RadiusKm: ptrF(0)},
		{RadiusKm: ptrF(-1)},
	}
	for _, req := range cases {
		_, err := svc.UpdateConfig(context.Background(), req, "admin-1")
		require.Error(t, err)
		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
	}

	assert.Equal(t, 0, configs.saveCalls)
}

func TestLogsFiltering(t *testing.T) {
	svc, _, logs := newTestService()
	logs.logs = []geofence.RejectionLog{
		{ID: "1", EmployeeID: "EMP001", Date: "2025-03-14"},
		{ID: "2", EmployeeID: "EMP002", Date: "2025-03-14"},
		{ID: "3", EmployeeID: "EMP001", Date: "2025-03-15"},
	}

	got, err := svc.Logs(context.Background(), geofence.LogFilter{EmployeeID: "EMP001"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Logs(context.Background(), geofence.LogFilter{Date: "2025-03-14"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
