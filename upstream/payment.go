package upstream

import (
	"context"
	"net/http"

	"stayfront/models"
)

// Source tag attached to every booking mutation.
const sourceTGX = "TGX"

// MutationOptions apply to the booking mutation endpoints. The idempotency
// key is generated once per submission attempt and shared by every mutation
// of that attempt; VaultExtra entries override the default vault metadata.
type MutationOptions struct {
	IdempotencyKey string
	VaultExtra     map[string]interface{}
}

// QuoteRequest asks the platform for the authoritative details of a rate
// option, notably its passenger capacity.
type QuoteRequest struct {
	SearchOptionRefID string             `json:"searchOptionRefId"`
	BookingData       models.BookingData `json:"bookingData"`
}

// QuoteResponse carries numberOfPax either at the top level or nested under
// option, depending on the platform version.
type QuoteResponse struct {
	NumberOfPax *int `json:"numberOfPax,omitempty"`
	Option      *struct {
		NumberOfPax *int `json:"numberOfPax,omitempty"`
	} `json:"option,omitempty"`
}

// Pax returns the capacity from whichever field is populated.
func (q *QuoteResponse) Pax() *int {
	if q == nil {
		return nil
	}
	if q.NumberOfPax != nil {
		return q.NumberOfPax
	}
	if q.Option != nil {
		return q.Option.NumberOfPax
	}
	return nil
}

// CreateIntentRequest starts the two-phase payment flow.
type CreateIntentRequest struct {
	Currency          string             `json:"currency"`
	GuestInfo         models.GuestInfo   `json:"guestInfo"`
	BookingData       models.BookingData `json:"bookingData"`
	SearchOptionRefID string             `json:"searchOptionRefId"`
	Source            string             `json:"source"`
}

// ConfirmAndBookRequest completes the two-phase flow after a successful
// card confirmation.
type ConfirmAndBookRequest struct {
	PaymentIntentID string             `json:"paymentIntentId"`
	BookingRef      string             `json:"bookingRef"`
	BookingData     models.BookingData `json:"bookingData"`
}

// BookWithCardRequest is the single-call legacy path carrying raw card
// fields.
type BookWithCardRequest struct {
	OptionRefID string             `json:"optionRefId"`
	GuestInfo   models.GuestInfo   `json:"guestInfo"`
	BookingData models.BookingData `json:"bookingData"`
	PaymentCard models.PaymentCard `json:"paymentCard"`
	Currency    string             `json:"currency"`
	Source      string             `json:"source"`
}

// withVaultMeta shapes the metadata envelope attached to every booking
// mutation: channel defaults to "vaults", vaultMeta.publicDomain is the
// resolved tenant domain, previously present vaultMeta entries are kept and
// caller extras are merged last so they win.
func (c *Client) withVaultMeta(ctx context.Context, meta map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta)+2)
	for k, v := range meta {
		out[k] = v
	}
	if ch, ok := out["channel"].(string); !ok || ch == "" {
		out["channel"] = "vaults"
	}

	vm := map[string]interface{}{"publicDomain": tenantDomainFrom(ctx, c.tenantDomain)}
	if prev, ok := meta["vaultMeta"].(map[string]interface{}); ok {
		for k, v := range prev {
			vm[k] = v
		}
	}
	for k, v := range extra {
		vm[k] = v
	}
	out["vaultMeta"] = vm
	return out
}

// Quote fetches the option's authoritative pax capacity.
func (c *Client) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	var res QuoteResponse
	if err := c.do(ctx, http.MethodPost, "/tgx/quote", req, requestOptions{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreatePaymentIntent submits the booking intent and returns the opaque
// client secret plus correlation ids for the confirmation steps.
func (c *Client) CreatePaymentIntent(ctx context.Context, req CreateIntentRequest, opts MutationOptions) (*models.PaymentIntentResult, error) {
	if req.Source == "" {
		req.Source = sourceTGX
	}
	req.BookingData.Meta = c.withVaultMeta(ctx, req.BookingData.Meta, opts.VaultExtra)

	var res models.PaymentIntentResult
	if err := c.do(ctx, http.MethodPost, "/tgx-payment/create-payment-intent", req, requestOptions{idempotencyKey: opts.IdempotencyKey}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ConfirmAndBook finalizes the booking after the card confirmation reported
// a terminal-success status.
func (c *Client) ConfirmAndBook(ctx context.Context, req ConfirmAndBookRequest, opts MutationOptions) (*models.BookingConfirmation, error) {
	req.BookingData.Meta = c.withVaultMeta(ctx, req.BookingData.Meta, opts.VaultExtra)

	var res models.BookingConfirmation
	if err := c.do(ctx, http.MethodPost, "/tgx-payment/confirm-and-book", req, requestOptions{idempotencyKey: opts.IdempotencyKey}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BookWithCard performs the legacy one-call booking with raw card details.
func (c *Client) BookWithCard(ctx context.Context, req BookWithCardRequest, opts MutationOptions) (*models.BookingConfirmation, error) {
	if req.Source == "" {
		req.Source = sourceTGX
	}
	req.BookingData.Meta = c.withVaultMeta(ctx, req.BookingData.Meta, opts.VaultExtra)

	var res models.BookingConfirmation
	if err := c.do(ctx, http.MethodPost, "/tgx-payment/book-with-card", req, requestOptions{idempotencyKey: opts.IdempotencyKey}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
