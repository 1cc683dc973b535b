package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/handler/http/middleware"
	"github.com/natembeza/curalink/internal/usecase"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	authHandler      *AuthHandler
	userHandler      *UserHandler
	dashboardHandler *DashboardHandler
	trialHandler     *TrialHandler
	authUsecase      usecasecontract.IAuthUseCase
	corsOrigin       string
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	userUsecase usecasecontract.IUserUseCase,
	dashboardUsecase usecasecontract.IDashboardUseCase,
	searchUsecase usecasecontract.ISearchUseCase,
	trialUsecase *usecase.TrialUsecase,
	geoService usecasecontract.IGeoService,
	corsOrigin string,
) *Router {
	return &Router{
		authHandler:      NewAuthHandler(authUsecase),
		userHandler:      NewUserHandler(userUsecase, geoService),
		dashboardHandler: NewDashboardHandler(dashboardUsecase, searchUsecase),
		trialHandler:     NewTrialHandler(trialUsecase),
		authUsecase:      authUsecase,
		corsOrigin:       corsOrigin,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{r.corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/register/patient", r.authHandler.RegisterPatient)
		auth.POST("/register/researcher", r.authHandler.RegisterResearcher)
	}

	// Location detection stays public: it runs before onboarding completes.
	v1.POST("/user/location/detect", r.userHandler.DetectLocation)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(r.authUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		// Onboarding is role-checked: each route only accepts its own role.
		protected.PUT("/user/patient/onboard",
			middleware.RequireRole(string(entity.UserRolePatient)),
			r.userHandler.OnboardPatient)
		protected.PUT("/user/researcher/onboard",
			middleware.RequireRole(string(entity.UserRoleResearcher)),
			r.userHandler.OnboardResearcher)

		// Favorites
		protected.POST("/user/favorites", r.userHandler.AddFavorite)
		protected.DELETE("/user/favorites", r.userHandler.RemoveFavorite)
		protected.GET("/user/favorites", r.userHandler.ListFavorites)

		// Dashboard
		protected.GET("/dashboard", r.dashboardHandler.GetDashboard)
		protected.GET("/dashboard/search", r.dashboardHandler.Search)

		// External trial refresh
		protected.POST("/trials/refresh",
			middleware.RequireRole(string(entity.UserRoleResearcher)),
			r.trialHandler.RefreshTrials)
	}
}
