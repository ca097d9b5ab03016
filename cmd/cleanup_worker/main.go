package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/config"
	"github.com/kingrain94/dealer-api/internal/service/filestore"
	"github.com/kingrain94/dealer-api/internal/service/queue"
	"github.com/kingrain94/dealer-api/internal/worker"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"), "dealer-cleanup-worker")
	defer appLogger.Sync()

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

	workerConfig := config.DefaultCleanupWorkerConfig()
	cleanupWorker := worker.NewCleanupWorker(
		sqsService,
		filestore.NewS3Store(s3Client, s3Config),
		sqsService.FileCleanupQueueURL(),
		appLogger,
		workerConfig.Workers,
		workerConfig.PollInterval,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	appLogger.Info("Starting cleanup worker",
		zap.String("queue_url", sqsService.FileCleanupQueueURL()),
		zap.Int("workers", workerConfig.Workers),
		zap.Duration("poll_interval", workerConfig.PollInterval),
	)
	cleanupWorker.Start()

	<-sigChan
	appLogger.Info("Shutting down cleanup worker...")

	cleanupWorker.Stop()
	appLogger.Info("Cleanup worker stopped")
}
