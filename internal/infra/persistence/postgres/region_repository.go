package postgres

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// regionRepository implements the repository.RegionRepository interface on
// top of PostGIS. Containment uses ST_Intersects so boundary points count as
// contained; radius queries run on the geography type so the radius is in
// meters on the spheroid.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

// CreateRegion persists a new region. The store assigns the id and
// timestamps and writes them back into the entity.
func (repo *regionRepository) CreateRegion(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)
	regionM.ID = uuid.New()

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		return repo.wrapStoreError(err, "failed to create region")
	}

	region.ID = regionM.ID
	region.CreatedAt = regionM.CreatedAt
	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// FindRegionByID retrieves a region by its unique ID.
func (repo *regionRepository) FindRegionByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var regionM model.RegionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, repo.wrapStoreError(err, "failed to find region by ID")
	}

	return toRegionDomain(&regionM), nil
}

// UpdateRegion applies a partial update and returns the updated region.
func (repo *regionRepository) UpdateRegion(ctx context.Context, id uuid.UUID, patch *repository.UpdateRegionPatch) (*entity.Region, error) {
	var regionM model.RegionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, repo.wrapStoreError(err, "failed to find region for update")
	}

	if patch.Name != nil {
		regionM.Name = *patch.Name
	}
	if patch.Geometry != nil {
		regionM.Geometry = model.Polygon{Polygon: orb.Polygon{*patch.Geometry}}
	}
	regionM.UpdatedAt = time.Now()

	if err := repo.db.WithContext(ctx).Save(&regionM).Error; err != nil {
		return nil, repo.wrapStoreError(err, "failed to update region")
	}

	return toRegionDomain(&regionM), nil
}

// DeleteRegion removes a region by its ID.
func (repo *regionRepository) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RegionModel{})

	if result.Error != nil {
		return repo.wrapStoreError(result.Error, "failed to delete region")
	}

	// If no rows were affected, it means the region was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// ListRegions retrieves all regions, newest-created-first.
func (repo *regionRepository) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&regionModels).Error; err != nil {
		return nil, repo.wrapStoreError(err, "failed to list regions")
	}

	return toRegionDomainSlice(regionModels), nil
}

// FindRegionsContainingPoint retrieves all regions whose polygon contains the point.
func (repo *regionRepository) FindRegionsContainingPoint(ctx context.Context, point orb.Point) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel

	query := `
		SELECT *
		FROM regions
		WHERE ST_Intersects(
		  geometry,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)
		)
		ORDER BY created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, point.Lon(), point.Lat()).
		Scan(&regionModels).Error; err != nil {
		return nil, repo.wrapStoreError(err, "failed to find regions containing point")
	}

	return toRegionDomainSlice(regionModels), nil
}

// FindRegionsWithinDistance retrieves all regions whose polygon intersects or
// lies within radiusMeters of the point, ordered by increasing distance.
func (repo *regionRepository) FindRegionsWithinDistance(ctx context.Context, point orb.Point, radiusMeters float64) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel

	query := `
		SELECT *
		FROM regions
		WHERE ST_DWithin(
		  geometry::geography,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		  ?
		)
		ORDER BY ST_Distance(
		  geometry::geography,
		  ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		) ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, point.Lon(), point.Lat(), radiusMeters, point.Lon(), point.Lat()).
		Scan(&regionModels).Error; err != nil {
		return nil, repo.wrapStoreError(err, "failed to find regions within distance")
	}

	return toRegionDomainSlice(regionModels), nil
}

// wrapStoreError converts connectivity failures to the domain sentinel.
// Context errors pass through unchanged; everything else becomes a store
// execute error carrying the original cause.
func (repo *regionRepository) wrapStoreError(err error, message string) error {
	if isConnectivityError(err) {
		return errors.Wrap(repository.ErrStoreUnavailable, err.Error())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return domainerrors.NewStoreExecuteError(err, message)
}

// --- Mapper Functions ---

// toRegionDomain converts a GORM RegionModel to a domain Region entity.
func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	var ring orb.Ring
	if len(data.Geometry.Polygon) > 0 {
		ring = data.Geometry.Polygon[0]
	}

	return &entity.Region{
		ID:        data.ID,
		Name:      data.Name,
		Geometry:  ring,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toRegionDomainSlice(data []*model.RegionModel) []*entity.Region {
	regions := make([]*entity.Region, 0, len(data))
	for _, regionM := range data {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions
}

// fromRegionDomain converts a domain Region entity to a GORM RegionModel.
func fromRegionDomain(data *entity.Region) *model.RegionModel {
	if data == nil {
		return nil
	}

	return &model.RegionModel{
		ID:        data.ID,
		Name:      data.Name,
		Geometry:  model.Polygon{Polygon: orb.Polygon{data.Geometry}},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
