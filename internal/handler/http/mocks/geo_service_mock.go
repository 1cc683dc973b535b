package mocks

import (
	"context"

	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// MockGeoService is a mock implementation of the IGeoService interface
type MockGeoService struct {
	// Control mock behavior
	FailReverseGeocode error

	// Return values
	MockPlace usecasecontract.Place

	// Side-effect probes
	ReverseGeocodeCalls int
}

var _ usecasecontract.IGeoService = (*MockGeoService)(nil)

func NewMockGeoService() *MockGeoService {
	return &MockGeoService{
		MockPlace: usecasecontract.Place{
			City:    "Addis Ababa",
			Country: "Ethiopia",
		},
	}
}

func (m *MockGeoService) ReverseGeocode(ctx context.Context, lat, lng float64) (*usecasecontract.Place, error) {
	m.ReverseGeocodeCalls++
	if m.FailReverseGeocode != nil {
		return nil, m.FailReverseGeocode
	}
	place := m.MockPlace
	return &place, nil
}
