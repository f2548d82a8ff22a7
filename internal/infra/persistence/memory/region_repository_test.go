package memory

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareRing(minLng, minLat, maxLng, maxLat float64) orb.Ring {
	return orb.Ring{
		{minLng, minLat},
		{maxLng, minLat},
		{maxLng, maxLat},
		{minLng, maxLat},
		{minLng, minLat},
	}
}

func mustCreate(t *testing.T, repo repository.RegionRepository, name string, ring orb.Ring) *entity.Region {
	t.Helper()

	region := &entity.Region{Name: name, Geometry: ring}
	require.NoError(t, repo.CreateRegion(context.Background(), region))

	return region
}

func TestRegionRepository_CreateAssignsIdentity(t *testing.T) {
	repo := NewRegionRepository()

	region := mustCreate(t, repo, "Vila Mariana", squareRing(-46.69, -23.57, -46.64, -23.52))
	assert.NotEqual(t, uuid.Nil, region.ID)
	assert.False(t, region.CreatedAt.IsZero())
	assert.False(t, region.UpdatedAt.IsZero())

	found, err := repo.FindRegionByID(context.Background(), region.ID)
	require.NoError(t, err)
	assert.Equal(t, region.Name, found.Name)
	assert.Equal(t, region.Geometry, found.Geometry)
}

func TestRegionRepository_FindByID_NotFound(t *testing.T) {
	repo := NewRegionRepository()

	region, err := repo.FindRegionByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
	assert.Nil(t, region)
}

func TestRegionRepository_UpdateRegion(t *testing.T) {
	repo := NewRegionRepository()
	region := mustCreate(t, repo, "Old Name", squareRing(0, 0, 1, 1))

	newName := "New Name"
	newRing := squareRing(2, 2, 3, 3)

	updated, err := repo.UpdateRegion(context.Background(), region.ID, &repository.UpdateRegionPatch{
		Name:     &newName,
		Geometry: &newRing,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newRing, updated.Geometry)
	assert.Equal(t, region.ID, updated.ID)
}

func TestRegionRepository_UpdateRegion_PartialLeavesRest(t *testing.T) {
	repo := NewRegionRepository()
	region := mustCreate(t, repo, "Keep Geometry", squareRing(0, 0, 1, 1))

	newName := "Renamed"
	updated, err := repo.UpdateRegion(context.Background(), region.ID, &repository.UpdateRegionPatch{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, region.Geometry, updated.Geometry)
}

func TestRegionRepository_UpdateRegion_NotFound(t *testing.T) {
	repo := NewRegionRepository()

	newName := "Ghost"
	updated, err := repo.UpdateRegion(context.Background(), uuid.New(), &repository.UpdateRegionPatch{
		Name: &newName,
	})
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
	assert.Nil(t, updated)
}

func TestRegionRepository_DeleteRegion(t *testing.T) {
	repo := NewRegionRepository()
	region := mustCreate(t, repo, "Doomed", squareRing(0, 0, 1, 1))

	require.NoError(t, repo.DeleteRegion(context.Background(), region.ID))

	_, err := repo.FindRegionByID(context.Background(), region.ID)
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
}

func TestRegionRepository_DeleteRegion_NotFound(t *testing.T) {
	repo := NewRegionRepository()

	err := repo.DeleteRegion(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
}

func TestRegionRepository_ListRegions_NewestFirst(t *testing.T) {
	repo := NewRegionRepository()
	first := mustCreate(t, repo, "First", squareRing(0, 0, 1, 1))
	second := mustCreate(t, repo, "Second", squareRing(2, 2, 3, 3))
	third := mustCreate(t, repo, "Third", squareRing(4, 4, 5, 5))

	regions, err := repo.ListRegions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 3)
	assert.Equal(t, third.ID, regions[0].ID)
	assert.Equal(t, second.ID, regions[1].ID)
	assert.Equal(t, first.ID, regions[2].ID)
}

func TestRegionRepository_FindRegionsContainingPoint(t *testing.T) {
	repo := NewRegionRepository()
	inner := mustCreate(t, repo, "Inner", squareRing(-1, -1, 1, 1))
	outer := mustCreate(t, repo, "Outer", squareRing(-10, -10, 10, 10))
	mustCreate(t, repo, "Elsewhere", squareRing(20, 20, 30, 30))

	regions, err := repo.FindRegionsContainingPoint(context.Background(), orb.Point{0, 0})
	require.NoError(t, err)
	require.Len(t, regions, 2)

	ids := []uuid.UUID{regions[0].ID, regions[1].ID}
	assert.Contains(t, ids, inner.ID)
	assert.Contains(t, ids, outer.ID)
}

func TestRegionRepository_FindRegionsContainingPoint_BoundaryIncluded(t *testing.T) {
	repo := NewRegionRepository()
	region := mustCreate(t, repo, "Square", squareRing(0, 0, 2, 2))

	regions, err := repo.FindRegionsContainingPoint(context.Background(), orb.Point{0, 1})
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, region.ID, regions[0].ID)
}

func TestRegionRepository_FindRegionsContainingPoint_NoMatch(t *testing.T) {
	repo := NewRegionRepository()
	mustCreate(t, repo, "Square", squareRing(0, 0, 2, 2))

	regions, err := repo.FindRegionsContainingPoint(context.Background(), orb.Point{50, 50})
	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestRegionRepository_FindRegionsWithinDistance(t *testing.T) {
	repo := NewRegionRepository()
	// Two small squares near São Paulo, roughly 5.1 km apart edge to edge.
	near := mustCreate(t, repo, "Near", squareRing(-46.660, -23.560, -46.650, -23.550))
	far := mustCreate(t, repo, "Far", squareRing(-46.610, -23.560, -46.600, -23.550))

	center := orb.Point{-46.655, -23.555}

	// Point is inside "Near", so distance zero qualifies at any radius.
	regions, err := repo.FindRegionsWithinDistance(context.Background(), center, 100)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, near.ID, regions[0].ID)

	// A 10 km radius reaches both, ordered by increasing distance.
	regions, err = repo.FindRegionsWithinDistance(context.Background(), center, 10000)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, near.ID, regions[0].ID)
	assert.Equal(t, far.ID, regions[1].ID)
}

func TestRegionRepository_FindRegionsWithinDistance_NoMatch(t *testing.T) {
	repo := NewRegionRepository()
	mustCreate(t, repo, "Square", squareRing(-46.660, -23.560, -46.650, -23.550))

	// Manaus is roughly 2700 km from São Paulo.
	regions, err := repo.FindRegionsWithinDistance(context.Background(), orb.Point{-60.02, -3.12}, 10000)
	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestRegionRepository_ContextCancellation(t *testing.T) {
	repo := NewRegionRepository()
	region := mustCreate(t, repo, "Square", squareRing(0, 0, 2, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListRegions(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindRegionByID(ctx, region.ID)
	assert.ErrorIs(t, err, context.Canceled)

	err = repo.DeleteRegion(ctx, region.ID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegionRepository_CloneIsolation(t *testing.T) {
	repo := NewRegionRepository()
	region := mustCreate(t, repo, "Immutable", squareRing(0, 0, 2, 2))

	found, err := repo.FindRegionByID(context.Background(), region.ID)
	require.NoError(t, err)

	// Mutating the returned entity must not affect the stored copy.
	found.Name = "Mutated"
	found.Geometry[0] = orb.Point{99, 99}

	fresh, err := repo.FindRegionByID(context.Background(), region.ID)
	require.NoError(t, err)
	assert.Equal(t, "Immutable", fresh.Name)
	assert.Equal(t, orb.Point{0, 0}, fresh.Geometry[0])
}
