package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	mockRepo "atlas/internal/mocks/repository"
	mockSvc "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegionService_GetRegion_NotFound(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	id := uuid.New()

	mockRegionRepo.EXPECT().
		FindRegionByID(ctx, id).
		Return(nil, repository.ErrRegionNotFound)

	region, err := service.GetRegion(ctx, id)
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
	assert.Nil(t, region)
}

func TestRegionService_DeleteRegion_NotFound(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	id := uuid.New()

	// Deleting a non-existent region reports not-found, never a silent no-op.
	mockRegionRepo.EXPECT().
		DeleteRegion(ctx, id).
		Return(repository.ErrRegionNotFound)

	err := service.DeleteRegion(ctx, id)
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
}

func TestRegionService_UpdateRegion_NotFound(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	id := uuid.New()
	newName := "Renamed"

	mockRegionRepo.EXPECT().
		UpdateRegion(ctx, id, mock.AnythingOfType("*repository.UpdateRegionPatch")).
		Return(nil, repository.ErrRegionNotFound)

	region, err := service.UpdateRegion(ctx, id, &usecase.UpdateRegionInput{Name: &newName})
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
	assert.Nil(t, region)
}

func TestRegionService_ListRegions_StoreUnavailable(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()

	mockRegionRepo.EXPECT().
		ListRegions(ctx).
		Return(nil, repository.ErrStoreUnavailable)

	regions, err := service.ListRegions(ctx)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Nil(t, regions)
}

func TestRegionService_FindRegionsByDistance_UnsupportedUnit(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	regions, err := service.FindRegionsByDistance(context.Background(), &usecase.DistanceQuery{
		Point:    orb.Point{-46.66, -23.55},
		Distance: 5,
		Unit:     "furlongs",
	})
	assert.ErrorIs(t, err, entity.ErrUnsupportedUnit)
	assert.Nil(t, regions)
	mockRegionRepo.AssertNotCalled(t, "FindRegionsWithinDistance")
}

func TestRegionService_FindRegionsByDistanceFromAddress_UnsupportedUnit(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()

	// The address resolves, but the bad unit still fails the query.
	mockGeocoder.EXPECT().
		GeocodeAddress(ctx, "Moema, São Paulo", "BR").
		Return(&entity.GeocodeResult{Latitude: -23.60, Longitude: -46.66}, nil)

	regions, err := service.FindRegionsByDistanceFromAddress(ctx, "Moema, São Paulo", 5, "furlongs", "BR")
	assert.ErrorIs(t, err, entity.ErrUnsupportedUnit)
	assert.Nil(t, regions)
	mockRegionRepo.AssertNotCalled(t, "FindRegionsWithinDistance")
}

func TestRegionService_FindRegionsByPointFromAddress_ContextCanceled(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Cancellation crosses the geocoding boundary as an error, unlike
	// provider failures which collapse to no result.
	mockGeocoder.EXPECT().
		GeocodeAddress(ctx, "Vila Mariana", "").
		Return(nil, context.Canceled)

	regions, err := service.FindRegionsByPointFromAddress(ctx, "Vila Mariana", "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, regions)
	mockRegionRepo.AssertNotCalled(t, "FindRegionsContainingPoint")
}

func TestRegionService_FindRegionsByDistance_StoreUnavailable(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	point := orb.Point{-46.66, -23.55}

	mockRegionRepo.EXPECT().
		FindRegionsWithinDistance(ctx, point, float64(100)).
		Return(nil, repository.ErrStoreUnavailable)

	regions, err := service.FindRegionsByDistance(ctx, &usecase.DistanceQuery{
		Point:    point,
		Distance: 100,
		Unit:     entity.UnitMeters,
	})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Nil(t, regions)
}
