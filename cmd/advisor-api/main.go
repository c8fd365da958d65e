package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/smartcourse/advisor-api/api/swagger"
	"github.com/smartcourse/advisor-api/internal/handler"
	"github.com/smartcourse/advisor-api/internal/middleware"
	"github.com/smartcourse/advisor-api/internal/repository"
	"github.com/smartcourse/advisor-api/internal/scraper"
	"github.com/smartcourse/advisor-api/internal/service"
	"github.com/smartcourse/advisor-api/pkg/cache"
	"github.com/smartcourse/advisor-api/pkg/config"
	"github.com/smartcourse/advisor-api/pkg/logger"
	corsmiddleware "github.com/smartcourse/advisor-api/pkg/middleware/cors"
	reqidmiddleware "github.com/smartcourse/advisor-api/pkg/middleware/requestid"
)

// @title SmartCourse Advisor API
// @version 1.0.0
// @description Course recommendation and graduation progress API
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer client.Close() //nolint:errcheck
		cacheRepo = repository.NewRedisCacheRepository(client, logr)
	} else {
		cacheRepo = repository.NewMemoryCacheRepository(cfg.Ratings.CacheMaxSize)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Ratings.CacheTTL, logr, true)

	var users repository.UserRepository
	if cfg.Users.StorageFile != "" {
		fileRepo, err := repository.NewFileUserRepository(cfg.Users.StorageFile)
		if err != nil {
			logr.Fatal("failed to open user storage", zap.Error(err),
				zap.String("path", cfg.Users.StorageFile))
		}
		users = fileRepo
	} else {
		users = repository.NewMemoryUserRepository()
	}

	catalogRepo := repository.NewCatalogRepository(nil)

	ratingSvc := service.NewRatingService(service.RatingServiceParams{
		Source:   scraper.NewRateMyProfSource(cfg.Ratings.SearchBaseURL, cfg.Ratings.FetchTimeout, logr),
		Cache:    cacheSvc,
		Metrics:  metricsSvc,
		Logger:   logr,
		CacheTTL: cfg.Ratings.CacheTTL,
		Enabled:  cfg.Ratings.Enabled,
	})

	recommendationSvc := service.NewRecommendationService(service.RecommendationServiceParams{
		Catalog: catalogRepo,
		Ratings: ratingSvc,
		Cache:   cacheSvc,
		Metrics: metricsSvc,
		Logger:  logr,
		Config: service.RecommendationServiceConfig{
			MaxResults:       cfg.Recommendations.MaxResults,
			CategoryTarget:   cfg.Recommendations.CategoryTarget,
			ResponseCacheTTL: cfg.Recommendations.ResponseCacheTTL,
		},
	})

	catalogSvc := service.NewCatalogService(catalogRepo, logr)
	progressSvc := service.NewProgressService(catalogRepo, logr)
	exportSvc := service.NewExportService()
	authSvc := service.NewAuthService(users, catalogRepo, validator.New(), logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	authHandler := handler.NewAuthHandler(authSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	recommendationHandler := handler.NewRecommendationHandler(recommendationSvc, authSvc, catalogSvc, exportSvc)
	progressHandler := handler.NewProgressHandler(progressSvc, authSvc, exportSvc)
	ratingHandler := handler.NewRatingHandler(ratingSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
			auth.PUT("/me/completed-courses", middleware.JWT(authSvc), authHandler.UpdateCompletedCourses)
		}

		universities := api.Group("/universities")
		{
			universities.GET("", catalogHandler.List)
			universities.GET("/:id", catalogHandler.Get)
			universities.GET("/:id/requirements", catalogHandler.Requirements)
			universities.GET("/:id/courses", catalogHandler.Courses)
		}

		protected := api.Group("", middleware.JWT(authSvc))
		{
			protected.POST("/recommendations", recommendationHandler.Recommend)
			protected.POST("/recommendations/export", recommendationHandler.Export)
			protected.GET("/progress", progressHandler.Get)
			protected.GET("/progress/export", progressHandler.Export)
		}

		api.GET("/professor-rating", ratingHandler.Get)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
