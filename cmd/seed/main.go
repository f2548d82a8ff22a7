// Command seed provisions the regions table and loads a set of São Paulo
// neighborhood polygons for local development.
package main

import (
	"context"
	"log/slog"

	"atlas/config"
	"atlas/internal/domain/service"
	"atlas/internal/infra/geocoding"
	logs "atlas/internal/infra/log"
	"atlas/internal/infra/persistence/model"
	"atlas/internal/infra/persistence/postgres"
	"atlas/internal/usecase"
	"atlas/internal/usecase/impl"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	DB       *gorm.DB
	RegionUC usecase.RegionUsecase
	Logger   *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewRegionRepository,
			newNoopGeocoder,
			impl.NewRegionService,
		),
		fx.Invoke(seed),
	).Run()
}

// newNoopGeocoder satisfies the usecase wiring; seeding never geocodes.
func newNoopGeocoder() service.GeocodingService {
	return geocoding.NewStaticGeocoder(nil)
}

func seed(params seedParams) {
	go func() {
		err := run(context.Background(), params)
		if err != nil {
			params.Logger.Error("Seeding failed", slog.Any("error", err))
		}
		_ = params.Shutdown(fx.ExitCode(exitCode(err)))
	}()
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}

func run(ctx context.Context, params seedParams) error {
	if err := migrate(params.DB); err != nil {
		return err
	}

	for _, region := range seedRegions() {
		created, err := params.RegionUC.CreateRegion(ctx, &region)
		if err != nil {
			return errors.Wrapf(err, "failed to seed region %q", region.Name)
		}
		params.Logger.Info("Seeded region",
			slog.String("id", created.ID.String()),
			slog.String("name", created.Name),
		)
	}

	return nil
}

func migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "failed to enable postgis")
	}
	if err := db.AutoMigrate(&model.RegionModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate regions table")
	}

	return nil
}

// seedRegions returns rough bounding polygons for a few São Paulo
// neighborhoods, closed and wound counterclockwise.
func seedRegions() []usecase.CreateRegionInput {
	return []usecase.CreateRegionInput{
		{
			Name: "Vila Mariana",
			Geometry: ring(
				point(-46.6500, -23.5990),
				point(-46.6250, -23.5990),
				point(-46.6250, -23.5780),
				point(-46.6500, -23.5780),
			),
		},
		{
			Name: "Pinheiros",
			Geometry: ring(
				point(-46.7050, -23.5750),
				point(-46.6700, -23.5750),
				point(-46.6700, -23.5500),
				point(-46.7050, -23.5500),
			),
		},
		{
			Name: "Moema",
			Geometry: ring(
				point(-46.6750, -23.6200),
				point(-46.6450, -23.6200),
				point(-46.6450, -23.5900),
				point(-46.6750, -23.5900),
			),
		},
		{
			Name: "Butantã",
			Geometry: ring(
				point(-46.7500, -23.5900),
				point(-46.7100, -23.5900),
				point(-46.7100, -23.5550),
				point(-46.7500, -23.5550),
			),
		},
	}
}

func ring(points ...orb.Point) orb.Ring {
	closed := make(orb.Ring, 0, len(points)+1)
	closed = append(closed, points...)
	closed = append(closed, points[0])

	return closed
}

func point(lng, lat float64) orb.Point {
	return orb.Point{lng, lat}
}
