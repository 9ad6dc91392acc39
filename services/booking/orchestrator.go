package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayfront/models"
	"stayfront/services/payment"
	"stayfront/upstream"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PaymentModeGateway = "stripe"
	PaymentModeDirect  = "direct"
)

// defaultCardType matches the card type the booking form preselects.
const defaultCardType = "VI"

// terminal-success intent statuses after card confirmation
var successStatuses = map[string]bool{
	"succeeded":        true,
	"requires_capture": true,
}

// Submit drives one booking attempt through the full lifecycle:
// validation, optional quote, then either the two-phase gateway path
// (create intent, confirm card, confirm-and-book) or the one-call direct
// card path. Any failure halts the attempt; nothing is retried.
func (s *DefaultBookingService) Submit(ctx context.Context, draft models.BookingDraft) (*models.BookingConfirmation, error) {
	normalizeDraft(&draft)

	// Pre-network validation with whatever capacity the caller already
	// knows. A mismatch must fail before any request goes out.
	if err := validateDraft(draft, draft.NumberOfPax); err != nil {
		return nil, failAt(StageValidating, err)
	}

	// Resolve the capacity via quote when the caller did not supply it.
	// Quote failures never block submission, but a capacity the quote
	// does report is binding.
	capacity := draft.NumberOfPax
	if capacity == nil {
		capacity = s.quotePax(ctx, draft)
		if err := validatePax(draft, capacity); err != nil {
			return nil, failAt(StageValidating, err)
		}
	}

	// One idempotency key per submission attempt, shared by every
	// mutation of the attempt.
	opts := upstream.MutationOptions{
		IdempotencyKey: uuid.New().String(),
		VaultExtra:     s.vaultExtra(draft),
	}

	switch draft.PaymentMode {
	case PaymentModeDirect:
		return s.submitDirect(ctx, draft, opts)
	default:
		return s.submitGateway(ctx, draft, opts)
	}
}

// submitGateway runs the widget-mediated path: create intent, confirm the
// card through the gateway, then confirm-and-book iff the intent reached a
// terminal-success status.
func (s *DefaultBookingService) submitGateway(ctx context.Context, draft models.BookingDraft, opts upstream.MutationOptions) (*models.BookingConfirmation, error) {
	if err := s.Gateway.Acquire(ctx); err != nil {
		return nil, failAt(StageConfirmingCard, err)
	}
	defer s.Gateway.Release()

	intent, err := s.API.CreatePaymentIntent(ctx, upstream.CreateIntentRequest{
		Currency:          draft.Currency,
		GuestInfo:         draft.Guest,
		BookingData:       buildBookingData(draft),
		SearchOptionRefID: draft.OptionRefID,
	}, opts)
	if err != nil {
		return nil, failAt(StageCreatingIntent, err)
	}

	// Once the intent exists the remaining steps must not be abandoned by
	// a dropped client; a confirmed charge without a booking would be
	// unrecoverable from this side.
	dctx := context.WithoutCancel(ctx)

	confirmation, err := s.Gateway.ConfirmCardPayment(dctx, payment.ConfirmParams{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.PaymentIntentID,
		PaymentMethodID: draft.PaymentMethodID,
		BillingName:     draft.Guest.FullName,
		BillingEmail:    draft.Guest.Email,
	})
	if err != nil {
		return nil, failAt(StageConfirmingCard, err)
	}
	if !successStatuses[confirmation.Status] {
		return nil, failAt(StageConfirmingCard, fmt.Errorf("unexpected payment status: %s", confirmation.Status))
	}

	out, err := s.API.ConfirmAndBook(dctx, upstream.ConfirmAndBookRequest{
		PaymentIntentID: intent.PaymentIntentID,
		BookingRef:      intent.BookingRef,
	}, opts)
	if err != nil {
		return nil, failAt(StageConfirmingBooking, err)
	}

	s.recordReceipt(dctx, draft, out)
	s.Logger.Info("booking confirmed",
		zap.String("bookingId", out.BookingID),
		zap.String("paymentIntentId", intent.PaymentIntentID))
	return out, nil
}

// submitDirect runs the legacy one-call path with raw card fields.
func (s *DefaultBookingService) submitDirect(ctx context.Context, draft models.BookingDraft, opts upstream.MutationOptions) (*models.BookingConfirmation, error) {
	data := buildBookingData(draft)
	data.PaymentType = "CARD_BOOKING"

	out, err := s.API.BookWithCard(ctx, upstream.BookWithCardRequest{
		OptionRefID: draft.OptionRefID,
		GuestInfo:   draft.Guest,
		BookingData: data,
		PaymentCard: models.PaymentCard{
			Type:   draft.CardType,
			Number: draft.CardNumber,
			CVC:    draft.CardCVC,
			Expire: models.CardExpiry{Month: draft.CardExpMonth, Year: draft.CardExpYear},
			Holder: splitHolderName(draft.Guest.FullName),
		},
		Currency: draft.Currency,
	}, opts)
	if err != nil {
		return nil, failAt(StageConfirmingBooking, err)
	}

	s.recordReceipt(ctx, draft, out)
	s.Logger.Info("direct card booking confirmed", zap.String("bookingId", out.BookingID))
	return out, nil
}

// quotePax asks the platform for the option's pax capacity. Best effort:
// failures are logged and swallowed so they never block a submission.
func (s *DefaultBookingService) quotePax(ctx context.Context, draft models.BookingDraft) *int {
	res, err := s.API.Quote(ctx, upstream.QuoteRequest{
		SearchOptionRefID: draft.OptionRefID,
		BookingData: models.BookingData{
			CheckIn:      draft.CheckIn,
			CheckOut:     draft.CheckOut,
			TgxHotelCode: draft.TgxHotelCode,
		},
	})
	if err != nil {
		s.Logger.Warn("failed to fetch option details", zap.Error(err))
		return nil
	}
	return res.Pax()
}

// recordReceipt persists the audit record and schedules receipt delivery.
// Both are best effort; the booking already happened.
func (s *DefaultBookingService) recordReceipt(ctx context.Context, draft models.BookingDraft, out *models.BookingConfirmation) {
	domain := s.API.TenantDomain(ctx)

	if s.Receipts != nil {
		receipt := &models.BookingReceipt{
			ReceiptID:    uuid.New().String(),
			BookingID:    out.BookingID,
			TenantDomain: domain,
			GuestEmail:   draft.Guest.Email,
			Confirmation: *out,
			CreatedAt:    time.Now(),
		}
		if err := s.Receipts.Save(ctx, receipt); err != nil {
			s.Logger.Warn("failed to persist booking receipt", zap.Error(err))
		}
	}

	if s.Notifier != nil {
		payload := models.ReceiptPayload{
			BookingID:    out.BookingID,
			TenantDomain: domain,
			GuestEmail:   draft.Guest.Email,
			GuestName:    draft.Guest.FullName,
		}
		if err := s.Notifier.EnqueueReceipt(ctx, payload); err != nil {
			s.Logger.Warn("failed to enqueue receipt delivery", zap.Error(err))
		}
	}
}

func (s *DefaultBookingService) vaultExtra(draft models.BookingDraft) map[string]interface{} {
	extra := map[string]interface{}{}
	if s.VaultKey != "" {
		extra["vaultKey"] = s.VaultKey
	}
	if draft.PageURL != "" {
		extra["pageUrl"] = draft.PageURL
	}
	for k, v := range draft.VaultExtra {
		extra[k] = v
	}
	return extra
}

func normalizeDraft(draft *models.BookingDraft) {
	draft.OptionRefID = strings.TrimSpace(draft.OptionRefID)
	draft.TgxHotelCode = strings.TrimSpace(draft.TgxHotelCode)
	draft.Guest.FullName = strings.TrimSpace(draft.Guest.FullName)
	draft.Guest.Email = strings.TrimSpace(draft.Guest.Email)
	draft.Guest.Phone = strings.TrimSpace(draft.Guest.Phone)
	if draft.Currency == "" {
		draft.Currency = upstream.DefaultCurrency
	}
	if draft.PaymentMode == "" {
		draft.PaymentMode = PaymentModeGateway
	}
	if draft.CardType == "" {
		draft.CardType = defaultCardType
	}
}

func buildBookingData(draft models.BookingDraft) models.BookingData {
	adults := draft.Adults
	if adults == 0 {
		adults = 1
	}
	return models.BookingData{
		CheckIn:      draft.CheckIn,
		CheckOut:     draft.CheckOut,
		TgxHotelCode: draft.TgxHotelCode,
		Adults:       adults,
		Children:     draft.Children,
		RoomID:       nil,
	}
}
