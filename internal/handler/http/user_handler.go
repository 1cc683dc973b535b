package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/handler/http/dto"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// UserHandlerInterface allows interface-based dependency injection for tests.
type UserHandlerInterface interface {
	OnboardPatient(*gin.Context)
	OnboardResearcher(*gin.Context)
	DetectLocation(*gin.Context)
	GetCurrentUser(*gin.Context)
	AddFavorite(*gin.Context)
	RemoveFavorite(*gin.Context)
	ListFavorites(*gin.Context)
}

var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	geoService  usecasecontract.IGeoService
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, geoService usecasecontract.IGeoService) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		geoService:  geoService,
	}
}

// OnboardPatient handles PUT /user/patient/onboard.
func (h *UserHandler) OnboardPatient(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.OnboardPatientRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.OnboardPatient(c.Request.Context(), userID.(string), req.ConditionText, req.Location.ToGeoPoint())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.OnboardResponse{
		Message: "Patient profile onboarded",
		User:    dto.ToOnboardedUser(*user),
	})
}

// OnboardResearcher handles PUT /user/researcher/onboard. All fields are
// optional on this path.
func (h *UserHandler) OnboardResearcher(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.OnboardResearcherRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	var location *entity.GeoPoint
	if req.Location != nil {
		location = req.Location.ToGeoPoint()
	}

	user, err := h.userUsecase.OnboardResearcher(c.Request.Context(), userID.(string), req.OrcidID, location, req.Specialties, req.ResearchInterests)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.OnboardResponse{
		Message: "Researcher profile onboarded",
		User:    dto.ToOnboardedUser(*user),
	})
}

// DetectLocation handles POST /user/location/detect. The reverse geocode
// is best-effort: a collaborator failure degrades to the bare coordinates
// instead of failing the request.
func (h *UserHandler) DetectLocation(c *gin.Context) {
	var req dto.DetectLocationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	location := gin.H{
		"latitude":  *req.Latitude,
		"longitude": *req.Longitude,
	}
	if place, err := h.geoService.ReverseGeocode(c.Request.Context(), *req.Latitude, *req.Longitude); err == nil {
		location["city"] = place.City
		location["country"] = place.Country
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"message":  "Location detected successfully",
		"location": location,
	})
}

// GetCurrentUser handles GET /me.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToOnboardedUser(*user))
}

// AddFavorite handles POST /user/favorites.
func (h *UserHandler) AddFavorite(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.FavoriteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.AddFavorite(c.Request.Context(), userID.(string), entity.FavoriteKind(req.Kind), req.RefID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"message": "Favorite added", "favorites": user.Favorites})
}

// RemoveFavorite handles DELETE /user/favorites.
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dto.FavoriteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.RemoveFavorite(c.Request.Context(), userID.(string), entity.FavoriteKind(req.Kind), req.RefID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"message": "Favorite removed", "favorites": user.Favorites})
}

// ListFavorites handles GET /user/favorites, resolving weak references.
func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	resolved, err := h.userUsecase.ListFavorites(c.Request.Context(), userID.(string))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, resolved)
}
