package geocoding

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() map[string][]entity.GeocodeResult {
	return map[string][]entity.GeocodeResult{
		"Rua Domingos de Morais, São Paulo": {
			{Latitude: -23.55, Longitude: -46.66, FormattedAddress: "Rua Domingos de Morais, Vila Mariana"},
			{Latitude: -23.54, Longitude: -46.65, FormattedAddress: "Rua Domingos de Morais, Centro"},
		},
	}
}

func TestStaticGeocoder_GeocodeAddress(t *testing.T) {
	geocoder := NewStaticGeocoder(testEntries())

	result, err := geocoder.GeocodeAddress(context.Background(), "Rua Domingos de Morais, São Paulo", "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Rua Domingos de Morais, Vila Mariana", result.FormattedAddress)
}

func TestStaticGeocoder_GeocodeAddress_CaseInsensitiveAndTrimmed(t *testing.T) {
	geocoder := NewStaticGeocoder(testEntries())

	result, err := geocoder.GeocodeAddress(context.Background(), "  RUA DOMINGOS DE MORAIS, SÃO PAULO ", "")
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestStaticGeocoder_GeocodeAddress_UnknownCollapsesToNil(t *testing.T) {
	geocoder := NewStaticGeocoder(testEntries())

	result, err := geocoder.GeocodeAddress(context.Background(), "nowhere at all", "")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestStaticGeocoder_GeocodeAddressMultiple(t *testing.T) {
	geocoder := NewStaticGeocoder(testEntries())

	results, err := geocoder.GeocodeAddressMultiple(context.Background(), "Rua Domingos de Morais, São Paulo", "")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Rua Domingos de Morais, Vila Mariana", results[0].FormattedAddress)

	results, err = geocoder.GeocodeAddressMultiple(context.Background(), "nowhere at all", "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestStaticGeocoder_ReverseGeocode(t *testing.T) {
	geocoder := NewStaticGeocoder(testEntries())

	result, err := geocoder.ReverseGeocode(context.Background(), -23.55, -46.66)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Rua Domingos de Morais, Vila Mariana", result.FormattedAddress)

	result, err = geocoder.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestStaticGeocoder_ContextCancellation(t *testing.T) {
	geocoder := NewStaticGeocoder(testEntries())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := geocoder.GeocodeAddress(ctx, "Rua Domingos de Morais, São Paulo", "")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = geocoder.ReverseGeocode(ctx, -23.55, -46.66)
	assert.ErrorIs(t, err, context.Canceled)
}
