// Package usecase defines the application-level interfaces and their inputs.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateRegionInput represents the input for creating a region
type CreateRegionInput struct {
	Name     string   `json:"name"`
	Geometry orb.Ring `json:"geometry"`
}

// UpdateRegionInput represents the input for updating an existing region.
// Nil fields are left untouched; geometry is re-validated only when supplied.
type UpdateRegionInput struct {
	Name     *string   `json:"name,omitempty"`
	Geometry *orb.Ring `json:"geometry,omitempty"`
}

// DistanceQuery represents a proximity query around a point. The unit
// defaults to meters when empty and is normalized before reaching the store.
type DistanceQuery struct {
	Point    orb.Point
	Distance float64
	Unit     entity.DistanceUnit
}

// RegionUsecase defines the interface for region management and geospatial queries
type RegionUsecase interface {
	// CRUD
	ListRegions(ctx context.Context) ([]*entity.Region, error)
	GetRegion(ctx context.Context, id uuid.UUID) (*entity.Region, error)
	CreateRegion(ctx context.Context, input *CreateRegionInput) (*entity.Region, error)
	UpdateRegion(ctx context.Context, id uuid.UUID, input *UpdateRegionInput) (*entity.Region, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) error

	// Geospatial queries by coordinates
	FindRegionsByPoint(ctx context.Context, point orb.Point) ([]*entity.Region, error)
	FindRegionsByDistance(ctx context.Context, query *DistanceQuery) ([]*entity.Region, error)

	// Geospatial queries by free-text address. An unresolvable address
	// degrades to an empty result set, never an error.
	FindRegionsByPointFromAddress(ctx context.Context, address, countryCode string) ([]*entity.Region, error)
	FindRegionsByDistanceFromAddress(ctx context.Context, address string, distance float64, unit entity.DistanceUnit, countryCode string) ([]*entity.Region, error)

	// Address resolution
	ResolveAddress(ctx context.Context, address, countryCode string) ([]entity.GeocodeResult, error)
	ResolveCoordinate(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error)
}
