// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for region persistence.
var (
	// ErrRegionNotFound is returned when a region is not found.
	ErrRegionNotFound = errors.New("region not found")
	// ErrStoreUnavailable is returned on transport or connectivity failure of
	// the persistence boundary. It is surfaced to the caller and never retried
	// inside the domain layer.
	ErrStoreUnavailable = errors.New("region store unavailable")
)

// UpdateRegionPatch carries a partial update. Nil fields are left untouched.
// Geometry, when present, must already be validated by the caller.
type UpdateRegionPatch struct {
	Name     *string
	Geometry *orb.Ring
}

// RegionRepository defines the interface for region-related store operations.
// The store owns ids, timestamps and the geospatial query semantics; callers
// are responsible for validating geometry before it reaches this boundary.
type RegionRepository interface {
	// CreateRegion persists a new region. The store assigns the id and
	// timestamps and writes them back into the entity.
	CreateRegion(ctx context.Context, region *entity.Region) error

	// FindRegionByID retrieves a region by its unique ID.
	// Returns ErrRegionNotFound if no such region exists.
	FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.Region, error)

	// UpdateRegion applies a partial update and returns the updated region.
	// Returns ErrRegionNotFound if no such region exists.
	UpdateRegion(ctx context.Context, id uuid.UUID, patch *UpdateRegionPatch) (*entity.Region, error)

	// DeleteRegion removes a region by its ID. Deleting a non-existent id is
	// reported as ErrRegionNotFound, not silently ignored.
	DeleteRegion(ctx context.Context, id uuid.UUID) error

	// ListRegions retrieves all regions, newest-created-first.
	ListRegions(ctx context.Context) ([]*entity.Region, error)

	// FindRegionsContainingPoint retrieves all regions whose polygon contains
	// the point. Boundary points are treated as contained.
	FindRegionsContainingPoint(ctx context.Context, point orb.Point) ([]*entity.Region, error)

	// FindRegionsWithinDistance retrieves all regions whose polygon intersects
	// or lies within radiusMeters of the point, ordered by increasing distance.
	FindRegionsWithinDistance(ctx context.Context, point orb.Point, radiusMeters float64) ([]*entity.Region, error)
}
