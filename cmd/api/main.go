package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/docs"
	"github.com/kingrain94/dealer-api/internal/api"
	"github.com/kingrain94/dealer-api/internal/auth"
	"github.com/kingrain94/dealer-api/internal/config"
	"github.com/kingrain94/dealer-api/internal/metrics"
	"github.com/kingrain94/dealer-api/internal/middleware"
	"github.com/kingrain94/dealer-api/internal/repository/postgres"
	"github.com/kingrain94/dealer-api/internal/service"
	"github.com/kingrain94/dealer-api/internal/service/filestore"
	"github.com/kingrain94/dealer-api/internal/service/pubsub"
	"github.com/kingrain94/dealer-api/internal/service/queue"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

// @title           Dealer API
// @version         1.0
// @description     Multi-tenant inventory, client and document management for vehicle resellers.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"), "dealer-api")
	defer appLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := postgres.AutoMigrate(dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}
	appLogger.Info("Database connections established - writer and reader connected")

	redisClient, err := config.DefaultRedisConfig().GetClient(startupCtx)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(startupCtx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(startupCtx)
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	fileStore := filestore.NewS3Store(s3Client, s3Config)

	repo := postgres.NewPostgresRepository(dbConnections)

	tokenCodec, err := auth.NewTokenCodec(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create token codec", err)
	}
	hasher := auth.NewPasswordHasher(cfg.Password)
	resolver := auth.NewResolver(tokenCodec, repo.Account(), appLogger)

	carService := service.NewCarService(repo, sqsService, appLogger)
	services := api.Services{
		Auth:     service.NewAuthService(repo, hasher, tokenCodec, appLogger),
		Tenant:   service.NewTenantService(repo),
		Car:      carService,
		Client:   service.NewClientService(repo),
		Document: service.NewDocumentService(repo, fileStore, sqsService, cfg.MaxUploadSize, appLogger),
	}

	server := api.NewServer(
		services,
		redisPubSub,
		middleware.NewAuthMiddleware(resolver, appLogger),
		middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger),
		middleware.NewValidationMiddleware(appLogger),
		cfg,
		appLogger,
	)

	carService.SetInventoryBroadcaster(server.InventoryStream())
	server.StartInventoryStream()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Metrics(), gin.Recovery())

	docs.SwaggerInfo.Title = "Dealer API"
	docs.SwaggerInfo.Description = "Multi-tenant inventory, client and document management for vehicle resellers"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := dbConnections.Ping(ctx); err != nil {
			appLogger.Warn("Health check failed", zap.String("dependency", "postgres"), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "postgres": "down"})
			return
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Warn("Health check failed", zap.String("dependency", "redis"), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "redis": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.SetupRoutes(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	server.StopInventoryStream()

	appLogger.Info("Server exiting")
}
