package geocoding

import (
	"context"
	"strings"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"
)

// StaticGeocoder is an in-memory geocoding adapter backed by a fixed address
// table. It is used in tests and local development where no provider is
// reachable; unknown addresses resolve to nothing, matching the boundary's
// failure-collapsing contract.
type StaticGeocoder struct {
	entries map[string][]entity.GeocodeResult
}

// NewStaticGeocoder creates a geocoder over a fixed address table. Lookup is
// case-insensitive on the trimmed address text.
func NewStaticGeocoder(entries map[string][]entity.GeocodeResult) service.GeocodingService {
	normalized := make(map[string][]entity.GeocodeResult, len(entries))
	for address, results := range entries {
		normalized[normalizeAddress(address)] = results
	}

	return &StaticGeocoder{entries: normalized}
}

// GeocodeAddress returns the first candidate for a known address, nil otherwise.
func (g *StaticGeocoder) GeocodeAddress(ctx context.Context, address, _ string) (*entity.GeocodeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := g.entries[normalizeAddress(address)]
	if len(results) == 0 {
		return nil, nil
	}

	return &results[0], nil
}

// GeocodeAddressMultiple returns all candidates for a known address in table order.
func (g *StaticGeocoder) GeocodeAddressMultiple(ctx context.Context, address, _ string) ([]entity.GeocodeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := g.entries[normalizeAddress(address)]
	if results == nil {
		return []entity.GeocodeResult{}, nil
	}

	return results, nil
}

// ReverseGeocode returns the first entry whose coordinate matches exactly, nil otherwise.
func (g *StaticGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, results := range g.entries {
		for _, result := range results {
			if result.Latitude == lat && result.Longitude == lng {
				matched := result

				return &matched, nil
			}
		}
	}

	return nil, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
