package payment

import "context"

// State is the gateway acquisition lifecycle. The hosted card widget of the
// old site was lazily bootstrapped behind presence checks; here the
// lifecycle is explicit with a single owner.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ConfirmParams identify the intent to confirm and the tokenized card plus
// billing details to confirm it with.
type ConfirmParams struct {
	ClientSecret    string
	PaymentIntentID string
	PaymentMethodID string
	BillingName     string
	BillingEmail    string
}

// Confirmation reports the processor's intent status verbatim. The
// orchestrator treats only "succeeded" and "requires_capture" as terminal
// success.
type Confirmation struct {
	Status string
}

// Gateway is the card-confirmation step of the booking flow. It is the only
// step not owned by this system and is treated as an opaque black box.
type Gateway interface {
	// Acquire makes the gateway ready, initializing the underlying
	// processor client on first use. Idempotent; concurrent acquirers
	// share one client.
	Acquire(ctx context.Context) error
	// Release drops one acquisition. The client is kept for reuse.
	Release()
	// ConfirmCardPayment confirms the intent and reports its status.
	ConfirmCardPayment(ctx context.Context, params ConfirmParams) (*Confirmation, error)
	// State reports the current lifecycle state.
	State() State
}
