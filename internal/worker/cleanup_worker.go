package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/service/queue"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

//go:generate mockery --name MessageQueue --output ../mocks
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

//go:generate mockery --name ObjectDeleter --output ../mocks
type ObjectDeleter interface {
	Delete(ctx context.Context, key string) error
}

// CleanupWorker deletes document files that were replaced or whose document or car was removed
type CleanupWorker struct {
	queue        MessageQueue
	files        ObjectDeleter
	queueURL     string
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewCleanupWorker(
	queue MessageQueue,
	files ObjectDeleter,
	queueURL string,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *CleanupWorker {
	return &CleanupWorker{
		queue:        queue,
		files:        files,
		queueURL:     queueURL,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20, // long polling
		shutdownChan: make(chan struct{}),
	}
}

func (w *CleanupWorker) Start() {
	w.logger.Info("Starting file cleanup workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *CleanupWorker) Stop() {
	w.logger.Info("Stopping file cleanup workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All file cleanup workers stopped")
}

func (w *CleanupWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("File cleanup worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("File cleanup worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("File cleanup worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *CleanupWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		// other message types are acknowledged so they are not redelivered forever
		if msg.Message.Type != queue.MessageTypeFileCleanup {
			w.logger.Warn("Discarding message of unexpected type", zap.String("type", string(msg.Message.Type)))
		} else if err := w.processCleanupMessage(ctx, msg.Message); err != nil {
			w.logger.Error("Failed to process file cleanup message", err, zap.Uint("tenant_id", msg.Message.TenantID))
			continue
		}

		// failed cleanups never get here and are redelivered by SQS
		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Error("Failed to delete message", err)
		}
	}

	return nil
}

func (w *CleanupWorker) processCleanupMessage(ctx context.Context, msg queue.Message) error {
	var errs []error
	for _, key := range msg.ObjectKeys {
		if !ownedBy(key, msg.TenantID) {
			w.logger.Warn("Refusing to delete object outside tenant prefix",
				zap.String("key", key), zap.Uint("tenant_id", msg.TenantID))
			continue
		}
		if err := w.files.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	w.logger.Info("Deleted document files",
		zap.Uint("tenant_id", msg.TenantID), zap.Int("count", len(msg.ObjectKeys)))
	return nil
}

func ownedBy(key string, tenantID uint) bool {
	prefix := fmt.Sprintf("tenants/%d/", tenantID)
	return strings.HasPrefix(key, prefix) && len(key) > len(prefix)
}
