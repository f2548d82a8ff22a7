package entity

import "errors"

// ErrUnsupportedUnit is returned when a distance unit outside the supported
// set is supplied.
var ErrUnsupportedUnit = errors.New("unsupported distance unit")

// DistanceUnit represents a supported unit for distance queries.
type DistanceUnit string

const (
	// UnitMeters is the canonical unit; all distances are normalized to it.
	UnitMeters DistanceUnit = "meters"
	// UnitKilometers converts at 1000 meters per kilometer.
	UnitKilometers DistanceUnit = "kilometers"
	// UnitMiles converts at 1609.34 meters per mile.
	UnitMiles DistanceUnit = "miles"
)

const metersPerMile = 1609.34

// String returns the string representation of the DistanceUnit.
func (u DistanceUnit) String() string {
	return string(u)
}

// IsValid checks if the DistanceUnit is a valid value. The empty unit is
// valid and treated as meters.
func (u DistanceUnit) IsValid() bool {
	switch u {
	case UnitMeters, UnitKilometers, UnitMiles, "":
		return true
	default:
		return false
	}
}

// ToMeters converts a distance expressed in this unit to meters. An omitted
// (empty) unit is treated as meters, not as an error.
func (u DistanceUnit) ToMeters(distance float64) (float64, error) {
	switch u {
	case UnitMeters, "":
		return distance, nil
	case UnitKilometers:
		return distance * 1000, nil
	case UnitMiles:
		return distance * metersPerMile, nil
	default:
		return 0, ErrUnsupportedUnit
	}
}
