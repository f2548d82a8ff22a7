// Package impl contains the concrete implementations of the usecase layer.
package impl

import (
	"context"
	"fmt"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// regionService orchestrates the region store and the geocoding provider.
// It holds no mutable state of its own; every call is an independent pipeline
// over the two ports, safe to run concurrently. It never retries a failed
// boundary call and never re-orders store results.
type regionService struct {
	regionRepo repository.RegionRepository
	geocoder   service.GeocodingService
}

// NewRegionService creates a new region service instance
func NewRegionService(regionRepo repository.RegionRepository, geocoder service.GeocodingService) usecase.RegionUsecase {
	return &regionService{
		regionRepo: regionRepo,
		geocoder:   geocoder,
	}
}

// ListRegions retrieves all regions, newest-created-first.
func (s *regionService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := s.regionRepo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	return regions, nil
}

// GetRegion retrieves a single region by id.
func (s *regionService) GetRegion(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	region, err := s.regionRepo.FindRegionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return region, nil
}

// CreateRegion validates the polygon ring and persists the region.
func (s *regionService) CreateRegion(ctx context.Context, input *usecase.CreateRegionInput) (*entity.Region, error) {
	if err := entity.ValidateRing(input.Geometry); err != nil {
		return nil, err
	}

	region := &entity.Region{
		Name:     input.Name,
		Geometry: input.Geometry,
	}

	if err := s.regionRepo.CreateRegion(ctx, region); err != nil {
		return nil, fmt.Errorf("failed to create region: %w", err)
	}

	return region, nil
}

// UpdateRegion applies a partial update. Geometry is re-validated only when
// supplied; an update that omits geometry never relaxes the closed-ring
// invariant of the stored polygon.
func (s *regionService) UpdateRegion(ctx context.Context, id uuid.UUID, input *usecase.UpdateRegionInput) (*entity.Region, error) {
	if input.Geometry != nil {
		if err := entity.ValidateRing(*input.Geometry); err != nil {
			return nil, err
		}
	}

	region, err := s.regionRepo.UpdateRegion(ctx, id, &repository.UpdateRegionPatch{
		Name:     input.Name,
		Geometry: input.Geometry,
	})
	if err != nil {
		return nil, err
	}

	return region, nil
}

// DeleteRegion removes a region by id. A non-existent id is reported as
// repository.ErrRegionNotFound, not silently ignored.
func (s *regionService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	return s.regionRepo.DeleteRegion(ctx, id)
}

// FindRegionsByPoint retrieves all regions whose polygon contains the point.
func (s *regionService) FindRegionsByPoint(ctx context.Context, point orb.Point) ([]*entity.Region, error) {
	regions, err := s.regionRepo.FindRegionsContainingPoint(ctx, point)
	if err != nil {
		return nil, fmt.Errorf("failed to find regions containing point: %w", err)
	}

	return regions, nil
}

// FindRegionsByDistance normalizes the query distance to meters and asks the
// store for regions within the radius. An unknown unit is propagated
// unchanged as entity.ErrUnsupportedUnit.
func (s *regionService) FindRegionsByDistance(ctx context.Context, query *usecase.DistanceQuery) ([]*entity.Region, error) {
	radiusMeters, err := query.Unit.ToMeters(query.Distance)
	if err != nil {
		return nil, err
	}

	regions, err := s.regionRepo.FindRegionsWithinDistance(ctx, query.Point, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find regions within distance: %w", err)
	}

	return regions, nil
}

// FindRegionsByPointFromAddress resolves the address to its top geocoding
// match and delegates to FindRegionsByPoint. An unresolvable address (no
// match or provider failure) degrades to an empty result set.
func (s *regionService) FindRegionsByPointFromAddress(ctx context.Context, address, countryCode string) ([]*entity.Region, error) {
	geo, err := s.geocoder.GeocodeAddress(ctx, address, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if geo == nil {
		return []*entity.Region{}, nil
	}

	return s.FindRegionsByPoint(ctx, orb.Point{geo.Longitude, geo.Latitude})
}

// FindRegionsByDistanceFromAddress resolves the address and delegates to
// FindRegionsByDistance with the same degrade-to-empty policy. Unit
// normalization errors still propagate.
func (s *regionService) FindRegionsByDistanceFromAddress(ctx context.Context, address string, distance float64, unit entity.DistanceUnit, countryCode string) ([]*entity.Region, error) {
	geo, err := s.geocoder.GeocodeAddress(ctx, address, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if geo == nil {
		return []*entity.Region{}, nil
	}

	return s.FindRegionsByDistance(ctx, &usecase.DistanceQuery{
		Point:    orb.Point{geo.Longitude, geo.Latitude},
		Distance: distance,
		Unit:     unit,
	})
}

// ResolveAddress returns the provider's candidate list verbatim, possibly
// empty. This answers "what does this address resolve to", not "which
// regions contain it".
func (s *regionService) ResolveAddress(ctx context.Context, address, countryCode string) ([]entity.GeocodeResult, error) {
	results, err := s.geocoder.GeocodeAddressMultiple(ctx, address, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address candidates: %w", err)
	}
	if results == nil {
		return []entity.GeocodeResult{}, nil
	}

	return results, nil
}

// ResolveCoordinate reverse-geocodes a coordinate to its formatted address.
// A nil result means the provider had no answer for the coordinate.
func (s *regionService) ResolveCoordinate(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	result, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode coordinate: %w", err)
	}

	return result, nil
}
