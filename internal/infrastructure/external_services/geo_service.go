package externalservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

const nominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeoService resolves coordinates via the OpenStreetMap
// Nominatim API.
type NominatimGeoService struct {
	baseURL string
	client  *http.Client
}

var _ usecasecontract.IGeoService = (*NominatimGeoService)(nil)

func NewNominatimGeoService() *NominatimGeoService {
	return &NominatimGeoService{
		baseURL: nominatimBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewNominatimGeoServiceWithBaseURL is used by tests to point the service
// at a local server.
func NewNominatimGeoServiceWithBaseURL(baseURL string) *NominatimGeoService {
	s := NewNominatimGeoService()
	s.baseURL = baseURL
	return s
}

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode resolves coordinates to a city and country. Nominatim
// reports the locality as city, town or village depending on size.
func (s *NominatimGeoService) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*usecasecontract.Place, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		s.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", latitude)),
		url.QueryEscape(fmt.Sprintf("%f", longitude)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "curalink-backend")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	city := body.Address.City
	if city == "" {
		city = body.Address.Town
	}
	if city == "" {
		city = body.Address.Village
	}
	if city == "" {
		city = "Unknown City"
	}
	country := body.Address.Country
	if country == "" {
		country = "Unknown Country"
	}
	return &usecasecontract.Place{City: city, Country: country}, nil
}
