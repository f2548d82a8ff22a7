// Package memory provides an in-memory reference implementation of the
// region store for deterministic tests and local development without
// PostGIS. Containment and proximity use planar ring containment and
// haversine distances from paulmach/orb.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

type storedRegion struct {
	region *entity.Region
	seq    uint64
}

// regionRepository is a mutex-guarded map of regions keyed by id.
type regionRepository struct {
	mu      sync.RWMutex
	regions map[uuid.UUID]*storedRegion
	nextSeq uint64
}

// NewRegionRepository creates an empty in-memory region store.
func NewRegionRepository() repository.RegionRepository {
	return &regionRepository{
		regions: make(map[uuid.UUID]*storedRegion),
	}
}

// CreateRegion persists a new region, assigning id and timestamps.
func (repo *regionRepository) CreateRegion(ctx context.Context, region *entity.Region) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now()
	region.ID = uuid.New()
	region.CreatedAt = now
	region.UpdatedAt = now

	repo.nextSeq++
	repo.regions[region.ID] = &storedRegion{
		region: cloneRegion(region),
		seq:    repo.nextSeq,
	}

	return nil
}

// FindRegionByID retrieves a region by its unique ID.
func (repo *regionRepository) FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.regions[id]
	if !ok {
		return nil, repository.ErrRegionNotFound
	}

	return cloneRegion(stored.region), nil
}

// UpdateRegion applies a partial update and returns the updated region.
func (repo *regionRepository) UpdateRegion(ctx context.Context, id uuid.UUID, patch *repository.UpdateRegionPatch) (*entity.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.regions[id]
	if !ok {
		return nil, repository.ErrRegionNotFound
	}

	if patch.Name != nil {
		stored.region.Name = *patch.Name
	}
	if patch.Geometry != nil {
		stored.region.Geometry = cloneRing(*patch.Geometry)
	}
	stored.region.UpdatedAt = time.Now()

	return cloneRegion(stored.region), nil
}

// DeleteRegion removes a region by its ID; a missing id is reported, not
// silently ignored.
func (repo *regionRepository) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.regions[id]; !ok {
		return repository.ErrRegionNotFound
	}
	delete(repo.regions, id)

	return nil
}

// ListRegions retrieves all regions, newest-created-first.
func (repo *regionRepository) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored := make([]*storedRegion, 0, len(repo.regions))
	for _, s := range repo.regions {
		stored = append(stored, s)
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].seq > stored[j].seq
	})

	regions := make([]*entity.Region, 0, len(stored))
	for _, s := range stored {
		regions = append(regions, cloneRegion(s.region))
	}

	return regions, nil
}

// FindRegionsContainingPoint retrieves all regions whose polygon contains the
// point, boundary inclusive, newest-created-first.
func (repo *regionRepository) FindRegionsContainingPoint(ctx context.Context, point orb.Point) ([]*entity.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored := make([]*storedRegion, 0)
	for _, s := range repo.regions {
		if planar.RingContains(s.region.Geometry, point) {
			stored = append(stored, s)
		}
	}
	sort.Slice(stored, func(i, j int) bool {
		return stored[i].seq > stored[j].seq
	})

	regions := make([]*entity.Region, 0, len(stored))
	for _, s := range stored {
		regions = append(regions, cloneRegion(s.region))
	}

	return regions, nil
}

// FindRegionsWithinDistance retrieves all regions within radiusMeters of the
// point, ordered by increasing distance.
func (repo *regionRepository) FindRegionsWithinDistance(ctx context.Context, point orb.Point, radiusMeters float64) ([]*entity.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	type match struct {
		region   *entity.Region
		distance float64
	}

	matches := make([]match, 0)
	for _, s := range repo.regions {
		d := distanceToRing(point, s.region.Geometry)
		if d <= radiusMeters {
			matches = append(matches, match{region: cloneRegion(s.region), distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	regions := make([]*entity.Region, 0, len(matches))
	for _, m := range matches {
		regions = append(regions, m.region)
	}

	return regions, nil
}

// distanceToRing returns the approximate distance in meters from a point to
// a polygon ring: zero when the point is inside, otherwise the haversine
// distance to the closest point on the ring's segments (closest point found
// by planar projection, which is adequate at neighborhood scale).
func distanceToRing(point orb.Point, ring orb.Ring) float64 {
	if planar.RingContains(ring, point) {
		return 0
	}

	minDistance := -1.0
	for i := 0; i+1 < len(ring); i++ {
		closest := closestPointOnSegment(point, ring[i], ring[i+1])
		d := geo.DistanceHaversine(point, closest)
		if minDistance < 0 || d < minDistance {
			minDistance = d
		}
	}
	if minDistance < 0 {
		return 0
	}

	return minDistance
}

func closestPointOnSegment(p, a, b orb.Point) orb.Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	if dx == 0 && dy == 0 {
		return a
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / (dx*dx + dy*dy)
	if t < 0 {
		return a
	}
	if t > 1 {
		return b
	}

	return orb.Point{a[0] + t*dx, a[1] + t*dy}
}

func cloneRegion(region *entity.Region) *entity.Region {
	cloned := *region
	cloned.Geometry = cloneRing(region.Geometry)

	return &cloned
}

func cloneRing(ring orb.Ring) orb.Ring {
	cloned := make(orb.Ring, len(ring))
	copy(cloned, ring)

	return cloned
}
