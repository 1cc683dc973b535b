package contract

import "context"

// Place is a reverse-geocoded location.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type IGeoService interface {
	// ReverseGeocode resolves coordinates to a city and country.
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*Place, error)
}
