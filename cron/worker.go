package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stayfront/config"
	"stayfront/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReceiptSend = "receipt:send"

// ReceiptEnqueuer schedules receipt delivery tasks on the queue.
type ReceiptEnqueuer struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewReceiptEnqueuer(logger *zap.Logger) *ReceiptEnqueuer {
	return &ReceiptEnqueuer{
		client: asynq.NewClient(queueRedisOpts()),
		logger: logger,
	}
}

// EnqueueReceipt schedules one delivery attempt for a confirmed booking.
func (e *ReceiptEnqueuer) EnqueueReceipt(ctx context.Context, payload models.ReceiptPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReceiptSend, data)
	info, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	if err != nil {
		return err
	}
	e.logger.Info("receipt delivery enqueued",
		zap.String("taskId", info.ID),
		zap.String("bookingId", payload.BookingID))
	return nil
}

func (e *ReceiptEnqueuer) Close() error {
	return e.client.Close()
}

// InitReceiptWorker runs the async worker in background.
func InitReceiptWorker(logger *zap.Logger) {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReceiptSend, handleReceiptTask(logger))

	go func() {
		log.Println("[ReceiptWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReceiptWorker] failed to start worker: %v", err)
		}
	}()
}

func handleReceiptTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReceiptPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid receipt payload", zap.Error(err))
			return err
		}

		// Delivery target is the guest's email; without one there is
		// nothing to send.
		if p.GuestEmail == "" {
			logger.Warn("receipt task without guest email, skipping",
				zap.String("bookingId", p.BookingID))
			return nil
		}

		logger.Info("delivering booking receipt",
			zap.String("bookingId", p.BookingID),
			zap.String("tenantDomain", p.TenantDomain),
			zap.String("guestEmail", p.GuestEmail))
		return nil
	}
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
