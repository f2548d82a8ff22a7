package entity

// GeocodeResult is a single candidate returned by a geocoding provider.
// The formatted address is opaque, display-only text; no structure is assumed.
type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}
