package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceUnit_ToMeters(t *testing.T) {
	tests := []struct {
		name     string
		unit     DistanceUnit
		distance float64
		expected float64
	}{
		{name: "meters identity", unit: UnitMeters, distance: 250, expected: 250},
		{name: "empty defaults to meters", unit: "", distance: 250, expected: 250},
		{name: "kilometers", unit: UnitKilometers, distance: 10, expected: 10000},
		{name: "miles", unit: UnitMiles, distance: 1, expected: 1609.34},
		{name: "fractional miles", unit: UnitMiles, distance: 2.5, expected: 2.5 * 1609.34},
		{name: "zero distance", unit: UnitKilometers, distance: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meters, err := tt.unit.ToMeters(tt.distance)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, meters, 1e-9)
		})
	}
}

func TestDistanceUnit_ToMeters_Unsupported(t *testing.T) {
	for _, unit := range []DistanceUnit{"furlongs", "Meters", "km", "mi"} {
		t.Run(unit.String(), func(t *testing.T) {
			meters, err := unit.ToMeters(1)
			assert.ErrorIs(t, err, ErrUnsupportedUnit)
			assert.Zero(t, meters)
		})
	}
}

func TestDistanceUnit_IsValid(t *testing.T) {
	assert.True(t, UnitMeters.IsValid())
	assert.True(t, UnitKilometers.IsValid())
	assert.True(t, UnitMiles.IsValid())
	assert.True(t, DistanceUnit("").IsValid())
	assert.False(t, DistanceUnit("leagues").IsValid())
}
