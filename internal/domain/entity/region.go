// Package entity contains the core business objects of the project.
package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Geometry validation errors. The validator only checks well-formedness of the
// outer ring; coordinate ranges, winding order and self-intersection are left
// to the boundary layer and the store.
var (
	// ErrTooFewCoordinates is returned when the ring has fewer than four coordinate pairs.
	ErrTooFewCoordinates = errors.New("polygon ring must contain at least 4 coordinate pairs")
	// ErrRingNotClosed is returned when the first and last coordinate pairs differ.
	ErrRingNotClosed = errors.New("polygon ring must be closed")
)

// MinRingLength is the minimum number of coordinate pairs in a closed ring
// (triangle plus the closing pair).
const MinRingLength = 4

// Region is a named polygon on the Earth's surface. The geometry holds the
// polygon's outer ring only; holes are not modeled.
type Region struct {
	ID        uuid.UUID `json:"id"`        // Assigned by the store on creation, immutable thereafter.
	Name      string    `json:"name"`      // Non-empty, 3-100 characters after trimming.
	Geometry  orb.Ring  `json:"geometry"`  // Ordered (longitude, latitude) pairs, longitude first.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateRing checks that a polygon outer ring is well-formed: at least four
// coordinate pairs and an exactly closed loop (first pair equals last pair,
// no epsilon tolerance). It is pure and deterministic.
func ValidateRing(ring orb.Ring) error {
	if len(ring) < MinRingLength {
		return ErrTooFewCoordinates
	}

	first := ring[0]
	last := ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		return ErrRingNotClosed
	}

	return nil
}

// ValidateGeometry validates the region's own ring.
func (r *Region) ValidateGeometry() error {
	return ValidateRing(r.Geometry)
}
