package impl

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"
	mockRepo "atlas/internal/mocks/repository"
	mockSvc "atlas/internal/mocks/service"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func closedRing() orb.Ring {
	return orb.Ring{
		{-46.693419, -23.568704},
		{-46.641146, -23.568704},
		{-46.641146, -23.525024},
		{-46.693419, -23.525024},
		{-46.693419, -23.568704},
	}
}

func TestRegionService_CreateRegion_Success(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	assignedID := uuid.New()

	mockRegionRepo.EXPECT().
		CreateRegion(ctx, mock.AnythingOfType("*entity.Region")).
		Run(func(ctx context.Context, region *entity.Region) {
			region.ID = assignedID
		}).
		Return(nil)

	region, err := service.CreateRegion(ctx, &usecase.CreateRegionInput{
		Name:     "Vila Mariana",
		Geometry: closedRing(),
	})
	require.NoError(t, err)
	require.NotNil(t, region)
	assert.Equal(t, assignedID, region.ID)
	assert.Equal(t, "Vila Mariana", region.Name)
	assert.Equal(t, closedRing(), region.Geometry)
}

func TestRegionService_CreateRegion_TooFewCoordinates(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	region, err := service.CreateRegion(context.Background(), &usecase.CreateRegionInput{
		Name:     "Tiny",
		Geometry: orb.Ring{{0, 0}, {1, 1}, {0, 0}},
	})
	assert.ErrorIs(t, err, entity.ErrTooFewCoordinates)
	assert.Nil(t, region)
	mockRegionRepo.AssertNotCalled(t, "CreateRegion")
}

func TestRegionService_CreateRegion_NotClosed(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	open := closedRing()
	open[len(open)-1] = orb.Point{-46.0, -23.0}

	region, err := service.CreateRegion(context.Background(), &usecase.CreateRegionInput{
		Name:     "Open",
		Geometry: open,
	})
	assert.ErrorIs(t, err, entity.ErrRingNotClosed)
	assert.Nil(t, region)
	mockRegionRepo.AssertNotCalled(t, "CreateRegion")
}

func TestRegionService_GetRegion(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	id := uuid.New()
	expected := &entity.Region{ID: id, Name: "Moema", Geometry: closedRing()}

	mockRegionRepo.EXPECT().
		FindRegionByID(ctx, id).
		Return(expected, nil)

	region, err := service.GetRegion(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, region)
}

func TestRegionService_ListRegions(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	expected := []*entity.Region{
		{ID: uuid.New(), Name: "Pinheiros"},
		{ID: uuid.New(), Name: "Butantã"},
	}

	mockRegionRepo.EXPECT().
		ListRegions(ctx).
		Return(expected, nil)

	regions, err := service.ListRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, regions)
}

func TestRegionService_UpdateRegion_NameOnly(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	id := uuid.New()
	newName := "Vila Mariana Norte"
	updated := &entity.Region{ID: id, Name: newName, Geometry: closedRing()}

	mockRegionRepo.EXPECT().
		UpdateRegion(ctx, id, mock.AnythingOfType("*repository.UpdateRegionPatch")).
		Return(updated, nil)

	region, err := service.UpdateRegion(ctx, id, &usecase.UpdateRegionInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, updated, region)
}

func TestRegionService_UpdateRegion_InvalidGeometryRejected(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	open := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	region, err := service.UpdateRegion(context.Background(), uuid.New(), &usecase.UpdateRegionInput{
		Geometry: &open,
	})
	assert.ErrorIs(t, err, entity.ErrRingNotClosed)
	assert.Nil(t, region)
	mockRegionRepo.AssertNotCalled(t, "UpdateRegion")
}

func TestRegionService_DeleteRegion(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	id := uuid.New()

	mockRegionRepo.EXPECT().
		DeleteRegion(ctx, id).
		Return(nil)

	require.NoError(t, service.DeleteRegion(ctx, id))
}

func TestRegionService_FindRegionsByPoint(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	point := orb.Point{-46.66, -23.55}
	expected := []*entity.Region{{ID: uuid.New(), Name: "Vila Mariana"}}

	mockRegionRepo.EXPECT().
		FindRegionsContainingPoint(ctx, point).
		Return(expected, nil)

	regions, err := service.FindRegionsByPoint(ctx, point)
	require.NoError(t, err)
	assert.Equal(t, expected, regions)
}

func TestRegionService_FindRegionsByDistance_NormalizesKilometers(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	point := orb.Point{-46.66, -23.55}
	expected := []*entity.Region{{ID: uuid.New(), Name: "Moema"}}

	// 10 km must reach the store as exactly 10000 meters.
	mockRegionRepo.EXPECT().
		FindRegionsWithinDistance(ctx, point, float64(10000)).
		Return(expected, nil)

	regions, err := service.FindRegionsByDistance(ctx, &usecase.DistanceQuery{
		Point:    point,
		Distance: 10,
		Unit:     entity.UnitKilometers,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, regions)
}

func TestRegionService_FindRegionsByDistance_NormalizesMiles(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	point := orb.Point{-46.66, -23.55}

	mockRegionRepo.EXPECT().
		FindRegionsWithinDistance(ctx, point, float64(2*1609.34)).
		Return([]*entity.Region{}, nil)

	regions, err := service.FindRegionsByDistance(ctx, &usecase.DistanceQuery{
		Point:    point,
		Distance: 2,
		Unit:     entity.UnitMiles,
	})
	require.NoError(t, err)
	assert.Empty(t, regions)
}

func TestRegionService_FindRegionsByDistance_EmptyUnitDefaultsToMeters(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	point := orb.Point{-46.66, -23.55}

	mockRegionRepo.EXPECT().
		FindRegionsWithinDistance(ctx, point, float64(500)).
		Return([]*entity.Region{}, nil)

	_, err := service.FindRegionsByDistance(ctx, &usecase.DistanceQuery{
		Point:    point,
		Distance: 500,
	})
	require.NoError(t, err)
}

func TestRegionService_FindRegionsByPointFromAddress_Resolved(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	expected := []*entity.Region{{ID: uuid.New(), Name: "Vila Mariana"}}

	mockGeocoder.EXPECT().
		GeocodeAddress(ctx, "Rua Domingos de Morais, São Paulo", "BR").
		Return(&entity.GeocodeResult{Latitude: -23.55, Longitude: -46.66}, nil)

	// Geocode result order is (lat, lng); the store point is (lng, lat).
	mockRegionRepo.EXPECT().
		FindRegionsContainingPoint(ctx, orb.Point{-46.66, -23.55}).
		Return(expected, nil)

	regions, err := service.FindRegionsByPointFromAddress(ctx, "Rua Domingos de Morais, São Paulo", "BR")
	require.NoError(t, err)
	assert.Equal(t, expected, regions)
}

func TestRegionService_FindRegionsByPointFromAddress_Unresolvable(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()

	mockGeocoder.EXPECT().
		GeocodeAddress(ctx, "nowhere at all", "").
		Return(nil, nil)

	regions, err := service.FindRegionsByPointFromAddress(ctx, "nowhere at all", "")
	require.NoError(t, err)
	assert.NotNil(t, regions)
	assert.Empty(t, regions)
	mockRegionRepo.AssertNotCalled(t, "FindRegionsContainingPoint")
}

func TestRegionService_FindRegionsByDistanceFromAddress_Resolved(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	expected := []*entity.Region{{ID: uuid.New(), Name: "Pinheiros"}}

	mockGeocoder.EXPECT().
		GeocodeAddress(ctx, "Pinheiros, São Paulo", "BR").
		Return(&entity.GeocodeResult{Latitude: -23.56, Longitude: -46.69}, nil)

	mockRegionRepo.EXPECT().
		FindRegionsWithinDistance(ctx, orb.Point{-46.69, -23.56}, float64(3000)).
		Return(expected, nil)

	regions, err := service.FindRegionsByDistanceFromAddress(ctx, "Pinheiros, São Paulo", 3, entity.UnitKilometers, "BR")
	require.NoError(t, err)
	assert.Equal(t, expected, regions)
}

func TestRegionService_FindRegionsByDistanceFromAddress_Unresolvable(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()

	mockGeocoder.EXPECT().
		GeocodeAddress(ctx, "nowhere at all", "").
		Return(nil, nil)

	regions, err := service.FindRegionsByDistanceFromAddress(ctx, "nowhere at all", 5, entity.UnitKilometers, "")
	require.NoError(t, err)
	assert.NotNil(t, regions)
	assert.Empty(t, regions)
	mockRegionRepo.AssertNotCalled(t, "FindRegionsWithinDistance")
}

func TestRegionService_ResolveAddress(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	candidates := []entity.GeocodeResult{
		{Latitude: -23.55, Longitude: -46.66, FormattedAddress: "Rua Domingos de Morais, Vila Mariana"},
		{Latitude: -23.54, Longitude: -46.65, FormattedAddress: "Rua Domingos de Morais, Centro"},
	}

	mockGeocoder.EXPECT().
		GeocodeAddressMultiple(ctx, "Rua Domingos de Morais", "BR").
		Return(candidates, nil)

	results, err := service.ResolveAddress(ctx, "Rua Domingos de Morais", "BR")
	require.NoError(t, err)
	assert.Equal(t, candidates, results)
}

func TestRegionService_ResolveAddress_NilBecomesEmpty(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()

	mockGeocoder.EXPECT().
		GeocodeAddressMultiple(ctx, "nowhere", "").
		Return(nil, nil)

	results, err := service.ResolveAddress(ctx, "nowhere", "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRegionService_ResolveCoordinate(t *testing.T) {
	mockRegionRepo := mockRepo.NewMockRegionRepository(t)
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewRegionService(mockRegionRepo, mockGeocoder)

	ctx := context.Background()
	expected := &entity.GeocodeResult{
		Latitude:         -23.55,
		Longitude:        -46.66,
		FormattedAddress: "Vila Mariana, São Paulo",
	}

	mockGeocoder.EXPECT().
		ReverseGeocode(ctx, -23.55, -46.66).
		Return(expected, nil)

	result, err := service.ResolveCoordinate(ctx, -23.55, -46.66)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
