// @title Culture Match API
// @version 1.0
// @description Cultural compatibility scoring for the Portuguese diaspora.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "culture-match/cmd/api/docs"
	"culture-match/internal/adapter"
	"culture-match/internal/cache"
	"culture-match/internal/config"
	"culture-match/internal/database"
	"culture-match/internal/domain"
	"culture-match/internal/handler"
	"culture-match/internal/logger"
	"culture-match/internal/middleware"
	"culture-match/internal/questionnaire"
	"culture-match/internal/repository"
	"culture-match/internal/service"
	"culture-match/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		appLogger.Fatal("auth.jwt_secret is not configured")
	}

	schema, err := questionnaire.Load(cfg.Questionnaire.Path)
	if err != nil {
		appLogger.Fatal("Failed to load questionnaire", zap.Error(err), zap.String("path", cfg.Questionnaire.Path))
	}
	appLogger.Info("Questionnaire loaded",
		zap.String("version", schema.Version),
		zap.Int("questions", len(schema.Questions)))

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	profileRepository := repository.NewProfileDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("redis.address is empty, profile cache disabled")
	}

	profileCache := service.NewProfileCacheService(cacheAdapter, cfg.Matching.ProfileCacheTTL)
	profileService := service.NewProfileService(schema, profileRepository, txManager, profileCache)
	matchService := service.NewMatchService(profileService, profileRepository, cfg.Matching)
	authService := service.NewAuthService(cfg.Auth.JWTSecret)
	validator := validation.NewValidator(cfg.Matching.MaxLimit)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app, handler.Handlers{
		Questionnaire: handler.NewQuestionnaireHandler(profileService),
		Profile:       handler.NewProfileHandler(profileService, validator),
		Match:         handler.NewMatchHandler(matchService, validator),
		Health:        handler.NewHealthHandler(cacheAdapter),
		Auth:          authService,
		Validator:     validator,
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
