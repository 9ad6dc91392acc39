package booking

import (
	"context"

	"stayfront/models"
	"stayfront/services/payment"
	"stayfront/upstream"

	"go.uber.org/zap"
)

// PlatformAPI is the slice of the upstream client the orchestrator drives.
type PlatformAPI interface {
	Quote(ctx context.Context, req upstream.QuoteRequest) (*upstream.QuoteResponse, error)
	CreatePaymentIntent(ctx context.Context, req upstream.CreateIntentRequest, opts upstream.MutationOptions) (*models.PaymentIntentResult, error)
	ConfirmAndBook(ctx context.Context, req upstream.ConfirmAndBookRequest, opts upstream.MutationOptions) (*models.BookingConfirmation, error)
	BookWithCard(ctx context.Context, req upstream.BookWithCardRequest, opts upstream.MutationOptions) (*models.BookingConfirmation, error)
	TenantDomain(ctx context.Context) string
}

// ReceiptRepository persists the audit record of a confirmed booking.
type ReceiptRepository interface {
	Save(ctx context.Context, receipt *models.BookingReceipt) error
}

// ReceiptNotifier schedules post-booking receipt delivery.
type ReceiptNotifier interface {
	EnqueueReceipt(ctx context.Context, payload models.ReceiptPayload) error
}

// BookingService drives the booking lifecycle end to end.
type BookingService interface {
	Submit(ctx context.Context, draft models.BookingDraft) (*models.BookingConfirmation, error)
}

// DefaultBookingService implements BookingService. Receipts and Notifier
// are optional; when nil the corresponding best-effort step is skipped.
type DefaultBookingService struct {
	API      PlatformAPI
	Gateway  payment.Gateway
	Receipts ReceiptRepository
	Notifier ReceiptNotifier
	VaultKey string
	Logger   *zap.Logger
}

func NewBookingService(api PlatformAPI, gateway payment.Gateway, vaultKey string, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		API:      api,
		Gateway:  gateway,
		VaultKey: vaultKey,
		Logger:   logger,
	}
}
