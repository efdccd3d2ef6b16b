package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clockPayload struct {
	EmployeeID string   `json:"employee_id" validate:"required"`
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
}

type configPayload struct {
	RadiusKm *float64 `json:"allowed_radius_km" validate:"omitempty,gt=0"`
}

type flagPayload struct {
	ClockIn *bool `json:"clock_in" validate:"required"`
}

func ptr(v float64) *float64 { return &v }

func TestStructValid(t *testing.T) {
	err := Struct(clockPayload{
		EmployeeID: "EMP001",
		Latitude:   ptr(12.956203),
		Longitude:  ptr(80.195962),
	})
	assert.NoError(t, err)
}

func TestStructMissingFields(t *testing.T) {
	err := Struct(clockPayload{})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	m := verrs.ToMap()
	assert.Equal(t, "is required", m["employee_id"])
	assert.Equal(t, "is required", m["latitude"])
	assert.Equal(t, "is required", m["longitude"])
}

func TestStructZeroCoordinateIsPresent(t *testing.T) {
	// A pointer to 0 is a supplied coordinate, not a missing one.
	err := Struct(clockPayload{
		EmployeeID: "EMP001",
		Latitude:   ptr(0),
		Longitude:  ptr(0),
	})
	assert.NoError(t, err)
}

func TestStructOutOfRangeCoordinates(t *testing.T) {
	err := Struct(clockPayload{
		EmployeeID: "EMP001",
		Latitude:   ptr(91),
		Longitude:  ptr(-181),
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	m := verrs.ToMap()
	assert.Equal(t, "must be between -90 and 90", m["latitude"])
	assert.Equal(t, "must be between -180 and 180", m["longitude"])
}

func TestStructFalseFlagIsPresent(t *testing.T) {
	// A pointer to false is a supplied flag; only a nil pointer is missing.
	f := false
	assert.NoError(t, Struct(flagPayload{ClockIn: &f}))

	err := Struct(flagPayload{})
	require.Error(t, err)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "is required", verrs.ToMap()["clock_in"])
}

func TestStructRadiusMustBePositive(t *testing.T) {
	assert.NoError(t, Struct(configPayload{}))
	assert.NoError(t, Struct(configPayload{RadiusKm: ptr(0.1)}))

	err := Struct(configPayload{RadiusKm: ptr(0)})
	require.Error(t, err)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "must be greater than 0", verrs.ToMap()["allowed_radius_km"])
}

func TestValidationErrorsError(t *testing.T) {
	verrs := ValidationErrors{
		{Field: "latitude", Message: "is required"},
		{Field: "longitude", Message: "is required"},
	}
	assert.Equal(t, "latitude is required; longitude is required", verrs.Error())
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-14")
	require.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	for _, bad := range []string{"14-03-2025", "2025-13-01", "2025-02-30", "yesterday", ""} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
