package payment

import (
	"context"
	"testing"

	stripeclient "github.com/stripe/stripe-go/v76/client"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAcquireInitializesClientExactlyOnce(t *testing.T) {
	g := NewStripeGateway("pk_test_123", "sk_test_123", zap.NewNop())

	inits := 0
	g.newAPI = func(key string) *stripeclient.API {
		inits++
		api := &stripeclient.API{}
		api.Init(key, nil)
		return api
	}

	assert.NoError(t, g.Acquire(context.Background()))
	assert.NoError(t, g.Acquire(context.Background()))
	assert.Equal(t, 1, inits)
	assert.Equal(t, StateReady, g.State())

	g.Release()
	g.Release()

	// Re-acquiring after release reuses the same client.
	assert.NoError(t, g.Acquire(context.Background()))
	assert.Equal(t, 1, inits)
}

func TestAcquireWithoutKeysIsDisabled(t *testing.T) {
	g := NewStripeGateway("", "", zap.NewNop())

	err := g.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrGatewayDisabled)
	assert.Equal(t, StateError, g.State())
}

func TestConfirmBeforeAcquireFails(t *testing.T) {
	g := NewStripeGateway("pk_test_123", "sk_test_123", zap.NewNop())

	_, err := g.ConfirmCardPayment(context.Background(), ConfirmParams{PaymentIntentID: "pi_1"})
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unloaded", StateUnloaded.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "error", StateError.String())
}
