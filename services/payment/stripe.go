package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// ErrGatewayDisabled is returned when no publishable key is configured; the
// direct card path remains available in that case.
var ErrGatewayDisabled = errors.New("payment gateway disabled: STRIPE_PK is not configured")

// StripeGateway confirms payment intents through Stripe. The API client is
// created once on first Acquire and reused across submissions.
type StripeGateway struct {
	publishableKey string
	secretKey      string
	logger         *zap.Logger

	mu     sync.Mutex
	state  State
	refs   int
	client *stripeclient.API

	// newAPI is swapped in tests to count initializations.
	newAPI func(key string) *stripeclient.API
}

func NewStripeGateway(publishableKey, secretKey string, logger *zap.Logger) *StripeGateway {
	return &StripeGateway{
		publishableKey: publishableKey,
		secretKey:      secretKey,
		logger:         logger,
		newAPI: func(key string) *stripeclient.API {
			return stripeclient.New(key, nil)
		},
	}
}

func (g *StripeGateway) Acquire(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.publishableKey == "" || g.secretKey == "" {
		g.state = StateError
		g.logger.Warn("payment gateway not configured, gateway path unavailable")
		return ErrGatewayDisabled
	}

	if g.client == nil {
		g.state = StateLoading
		g.client = g.newAPI(g.secretKey)
		g.logger.Info("payment gateway initialized")
	}
	g.state = StateReady
	g.refs++
	return nil
}

func (g *StripeGateway) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refs > 0 {
		g.refs--
	}
}

func (g *StripeGateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *StripeGateway) ConfirmCardPayment(ctx context.Context, params ConfirmParams) (*Confirmation, error) {
	g.mu.Lock()
	api := g.client
	g.mu.Unlock()
	if api == nil {
		return nil, errors.New("payment gateway not initialized")
	}
	if params.PaymentIntentID == "" {
		return nil, errors.New("paymentIntentId is required")
	}

	confirmParams := &stripe.PaymentIntentConfirmParams{}
	confirmParams.Context = ctx
	if params.PaymentMethodID != "" {
		confirmParams.PaymentMethod = stripe.String(params.PaymentMethodID)
	}

	intent, err := api.PaymentIntents.Confirm(params.PaymentIntentID, confirmParams)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return nil, fmt.Errorf("%s", stripeErr.Msg)
		}
		return nil, err
	}

	g.logger.Info("card confirmation completed",
		zap.String("paymentIntentId", params.PaymentIntentID),
		zap.String("status", string(intent.Status)))
	return &Confirmation{Status: string(intent.Status)}, nil
}
