package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/domain/entity"
	handler "github.com/natembeza/curalink/internal/handler/http"
	"github.com/natembeza/curalink/internal/handler/http/dto"
	"github.com/natembeza/curalink/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64p(v float64) *float64 { return &v }

// setupUserRouter mounts the user routes behind a stub that injects the
// authenticated identity, standing in for the auth middleware.
func setupUserRouter(h handler.UserHandlerInterface, userID string) *gin.Engine {
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set("userID", userID)
		})
	}
	r.PUT("/user/patient/onboard", h.OnboardPatient)
	r.PUT("/user/researcher/onboard", h.OnboardResearcher)
	r.POST("/user/location/detect", h.DetectLocation)
	r.GET("/me", h.GetCurrentUser)
	r.POST("/user/favorites", h.AddFavorite)
	r.DELETE("/user/favorites", h.RemoveFavorite)
	r.GET("/user/favorites", h.ListFavorites)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestOnboardPatient(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	mockGeo := mocks.NewMockGeoService()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mockGeo), "mock-user-id")

	w := doJSON(t, r, "PUT", "/user/patient/onboard", dto.OnboardPatientRequest{
		ConditionText: "I was diagnosed with type 2 diabetes last year",
		Location:      &dto.LocationDTO{Longitude: f64p(38.74), Latitude: f64p(9.03)},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockUser.OnboardPatientCalls)

	var resp dto.OnboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User.PatientProfile)
	assert.Equal(t, "diabetes", resp.User.PatientProfile.Condition)
	require.NotNil(t, resp.User.Location)
	assert.Equal(t, []float64{38.74, 9.03}, resp.User.Location.Coordinates)
}

// A point on the prime meridian has longitude 0; that is a real
// coordinate, not a missing field.
func TestOnboardPatient_ZeroLongitude(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "PUT", "/user/patient/onboard", dto.OnboardPatientRequest{
		ConditionText: "chronic migraine",
		Location:      &dto.LocationDTO{Longitude: f64p(0), Latitude: f64p(51.477)},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockUser.OnboardPatientCalls)
}

func TestOnboardPatient_MissingCondition(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "PUT", "/user/patient/onboard", map[string]interface{}{
		"location": map[string]float64{"longitude": 38.74, "latitude": 9.03},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, mockUser.OnboardPatientCalls)
}

func TestOnboardPatient_WrongRole(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	mockUser.FailOnboardPatient = entity.ErrForbidden
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "PUT", "/user/patient/onboard", dto.OnboardPatientRequest{
		ConditionText: "migraine",
		Location:      &dto.LocationDTO{Longitude: f64p(1), Latitude: f64p(1)},
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOnboardResearcher(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "PUT", "/user/researcher/onboard", dto.OnboardResearcherRequest{
		OrcidID:           "0000-0002-1825-0097",
		Specialties:       []string{"oncology"},
		ResearchInterests: []string{"immunotherapy"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockUser.OnboardResearcherCalls)

	var resp dto.OnboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User.ResearcherProfile)
	assert.Equal(t, "0000-0002-1825-0097", resp.User.ResearcherProfile.OrcidID)
	assert.Nil(t, resp.User.Location)
}

// Researcher onboarding takes an empty body without complaint.
func TestOnboardResearcher_EmptyBody(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "PUT", "/user/researcher/onboard", map[string]interface{}{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockUser.OnboardResearcherCalls)
}

func TestDetectLocation(t *testing.T) {
	mockGeo := mocks.NewMockGeoService()
	r := setupUserRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), mockGeo), "")

	w := doJSON(t, r, "POST", "/user/location/detect", dto.DetectLocationRequest{
		Latitude:  f64p(9.03),
		Longitude: f64p(38.74),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockGeo.ReverseGeocodeCalls)
	assert.Contains(t, w.Body.String(), "Addis Ababa")
	assert.Contains(t, w.Body.String(), "Ethiopia")
}

// Latitude 0 (the equator) is a real coordinate, not a missing field.
func TestDetectLocation_ZeroLatitude(t *testing.T) {
	mockGeo := mocks.NewMockGeoService()
	r := setupUserRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), mockGeo), "")

	w := doJSON(t, r, "POST", "/user/location/detect", dto.DetectLocationRequest{
		Latitude:  f64p(0),
		Longitude: f64p(38.74),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockGeo.ReverseGeocodeCalls)
}

// A geocoder outage degrades to bare coordinates rather than an error.
func TestDetectLocation_GeocoderDown(t *testing.T) {
	mockGeo := mocks.NewMockGeoService()
	mockGeo.FailReverseGeocode = errors.New("nominatim: status 503")
	r := setupUserRouter(handler.NewUserHandler(mocks.NewMockUserUsecase(), mockGeo), "")

	w := doJSON(t, r, "POST", "/user/location/detect", dto.DetectLocationRequest{
		Latitude:  f64p(9.03),
		Longitude: f64p(38.74),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9.03")
	assert.NotContains(t, w.Body.String(), "city")
}

func TestGetCurrentUser(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "GET", "/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	mockUser.FailGetByID = entity.ErrUserNotFound
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "GET", "/me", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddFavorite(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "POST", "/user/favorites", dto.FavoriteRequest{
		Kind:  "Trial",
		RefID: "trial-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "trial-1")
}

func TestAddFavorite_InvalidKind(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "POST", "/user/favorites", dto.FavoriteRequest{
		Kind:  "Publication",
		RefID: "doi-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFavorite(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "DELETE", "/user/favorites", dto.FavoriteRequest{
		Kind:  "Expert",
		RefID: "expert-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Favorite removed")
}

func TestListFavorites(t *testing.T) {
	mockUser := mocks.NewMockUserUsecase()
	mockUser.MockFavorites.Trials = []entity.ClinicalTrial{{ID: "trial-1", TrialID: "NCT01234567", Title: "Phase 2 trial"}}
	r := setupUserRouter(handler.NewUserHandler(mockUser, mocks.NewMockGeoService()), "mock-user-id")

	w := doJSON(t, r, "GET", "/user/favorites", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "NCT01234567")
}
