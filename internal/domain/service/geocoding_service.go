// Package service defines domain-level contracts for external collaborators.
package service

import (
	"context"

	"atlas/internal/domain/entity"
)

// GeocodingService abstracts a geocoding provider.
//
// Provider failure and "no match" are collapsed at this boundary: both yield a
// nil result (or an empty slice) with a nil error, and adapters log the
// underlying provider error themselves. The only errors that cross this
// boundary are context cancellation and deadline expiry, which must be
// propagated transparently.
type GeocodingService interface {
	// GeocodeAddress resolves a free-text address to the provider's top match.
	// countryCode optionally biases the lookup (e.g., "BR", "US").
	GeocodeAddress(ctx context.Context, address, countryCode string) (*entity.GeocodeResult, error)

	// GeocodeAddressMultiple resolves a free-text address to all candidate
	// matches, preserving provider ranking order.
	GeocodeAddressMultiple(ctx context.Context, address, countryCode string) ([]entity.GeocodeResult, error)

	// ReverseGeocode resolves a coordinate to its formatted address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error)
}
