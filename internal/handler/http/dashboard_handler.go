package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

type DashboardHandler struct {
	dashboardUsecase usecasecontract.IDashboardUseCase
	searchUsecase    usecasecontract.ISearchUseCase
}

func NewDashboardHandler(dashboardUsecase usecasecontract.IDashboardUseCase, searchUsecase usecasecontract.ISearchUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		searchUsecase:    searchUsecase,
	}
}

// GetDashboard handles GET /dashboard with a role-dependent payload.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := c.Get("userID")
	roleVal, roleExists := c.Get("userRole")
	if !exists || !roleExists {
		ErrorHandler(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := h.dashboardUsecase.GetDashboard(c.Request.Context(), userID.(string), entity.UserRole(roleVal.(string)))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, payload)
}

// Search handles GET /dashboard/search?keywords=...
func (h *DashboardHandler) Search(c *gin.Context) {
	keywords := c.Query("keywords")

	result, err := h.searchUsecase.Search(c.Request.Context(), keywords)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}
