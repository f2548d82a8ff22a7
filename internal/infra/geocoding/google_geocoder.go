// Package geocoding contains adapters for the geocoding boundary.
package geocoding

import (
	"context"
	"log/slog"
	"net/http"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// googleGeocoder implements service.GeocodingService against the Google Maps
// Geocoding API. Provider failures are collapsed to "no result" and logged;
// only context cancellation and deadline errors cross the boundary.
type googleGeocoder struct {
	client        *maps.Client
	logger        *slog.Logger
	defaultRegion string
}

// NewGoogleGeocoder creates the production geocoding adapter.
func NewGoogleGeocoder(cfg *config.Config, logger *slog.Logger) (service.GeocodingService, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.APIKey == "" {
		return nil, errors.New("geocoding API key is not configured")
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.Geocoding.APIKey)}
	if cfg.Geocoding.Timeout > 0 {
		opts = append(opts, maps.WithHTTPClient(&http.Client{Timeout: cfg.Geocoding.Timeout}))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	return &googleGeocoder{
		client:        client,
		logger:        logger,
		defaultRegion: cfg.Geocoding.Region,
	}, nil
}

// GeocodeAddress resolves a free-text address to the provider's top match.
func (g *googleGeocoder) GeocodeAddress(ctx context.Context, address, countryCode string) (*entity.GeocodeResult, error) {
	results, err := g.geocode(ctx, address, countryCode)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &results[0], nil
}

// GeocodeAddressMultiple resolves a free-text address to all candidate
// matches, preserving provider ranking order.
func (g *googleGeocoder) GeocodeAddressMultiple(ctx context.Context, address, countryCode string) ([]entity.GeocodeResult, error) {
	return g.geocode(ctx, address, countryCode)
}

// ReverseGeocode resolves a coordinate to its formatted address. The supplied
// coordinate is echoed back in the result, matching forward-geocode shape.
func (g *googleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		if ctxErr := contextError(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}
		g.logger.Warn("Reverse geocoding failed",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Any("error", err),
		)

		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &entity.GeocodeResult{
		Latitude:         lat,
		Longitude:        lng,
		FormattedAddress: results[0].FormattedAddress,
	}, nil
}

func (g *googleGeocoder) geocode(ctx context.Context, address, countryCode string) ([]entity.GeocodeResult, error) {
	req := &maps.GeocodingRequest{Address: address}
	if countryCode == "" {
		countryCode = g.defaultRegion
	}
	if countryCode != "" {
		req.Region = countryCode
	}

	results, err := g.client.Geocode(ctx, req)
	if err != nil {
		if ctxErr := contextError(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}
		g.logger.Warn("Geocoding failed",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return []entity.GeocodeResult{}, nil
	}

	geocoded := make([]entity.GeocodeResult, 0, len(results))
	for _, result := range results {
		geocoded = append(geocoded, entity.GeocodeResult{
			Latitude:         result.Geometry.Location.Lat,
			Longitude:        result.Geometry.Location.Lng,
			FormattedAddress: result.FormattedAddress,
		})
	}

	return geocoded, nil
}

// contextError returns the context's error when the provider call failed
// because of cancellation or deadline expiry, nil otherwise.
func contextError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return nil
}
