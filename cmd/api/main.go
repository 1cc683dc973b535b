package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/natembeza/curalink/internal/handler/http"
	redisclient "github.com/natembeza/curalink/internal/infrastructure/cache"
	"github.com/natembeza/curalink/internal/infrastructure/config"
	"github.com/natembeza/curalink/internal/infrastructure/database"
	externalservices "github.com/natembeza/curalink/internal/infrastructure/external_services"
	"github.com/natembeza/curalink/internal/infrastructure/jwt"
	"github.com/natembeza/curalink/internal/infrastructure/logger"
	passwordservice "github.com/natembeza/curalink/internal/infrastructure/password_service"
	"github.com/natembeza/curalink/internal/infrastructure/repository/mongodb"
	"github.com/natembeza/curalink/internal/infrastructure/store"
	"github.com/natembeza/curalink/internal/infrastructure/uuidgen"
	"github.com/natembeza/curalink/internal/infrastructure/validator"
	"github.com/natembeza/curalink/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	trialRepo := mongodb.NewMongoTrialRepository(db.Collection("clinical_trials"))
	pubRepo := mongodb.NewMongoPublicationRepository(db.Collection("publications"))
	expertRepo := mongodb.NewMongoExpertRepository(db.Collection("experts"))

	indexCtx := context.Background()
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := trialRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create trial indexes: %v", err)
	}
	if err := pubRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create publication indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenTTL())
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	aiService, err := externalservices.NewGeminiAIService(context.Background(), appConfig.GetAIServiceAPIKey())
	if err != nil {
		log.Fatalf("Failed to create AI service: %v", err)
	}
	geoService := externalservices.NewNominatimGeoService()
	trialFetcher := externalservices.NewTrialRegistryService()

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtManager, appValidator, uuidGenerator, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, trialRepo, expertRepo, aiService, appConfig, appLogger)
	dashboardUsecase := usecase.NewDashboardUsecase(userRepo, trialRepo, pubRepo, expertRepo, appLogger)
	searchUsecase := usecase.NewSearchUsecase(trialRepo, pubRepo, expertRepo)
	trialUsecase := usecase.NewTrialUsecase(trialFetcher, trialRepo, aiService, appConfig, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		if rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL); rdb != nil {
			defer redisclient.Close(rdb)
			dashboardCache := store.NewDashboardCacheStore(rdb)
			dashboardUsecase.SetDashboardCache(dashboardCache)
			userUsecase.SetDashboardCache(dashboardCache)
		}
	}

	// Initialize Gin router
	router := gin.Default()

	appRouter := handlerHttp.NewRouter(
		authUsecase, userUsecase, dashboardUsecase, searchUsecase,
		trialUsecase, geoService, appConfig.CORSOrigin,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
