package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayfront/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "tenant.test", zap.NewNop())
}

func TestErrorMessageFromJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Card declined"}`))
	})

	_, err := c.GetPublicConfig(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "Card declined", err.Error())

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, ErrValidation, apiErr.Kind)
}

func TestErrorMessageFromTextBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.GetHotel(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "upstream exploded", err.Error())

	apiErr := err.(*APIError)
	assert.Equal(t, ErrTransport, apiErr.Kind)
}

func TestErrorMessageFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.GetPublicConfig(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "HTTP 503", err.Error())
}

func TestTenantHeaderSent(t *testing.T) {
	var gotHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Tenant-Domain")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.GetPublicConfig(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "tenant.test", gotHeader)
}

func TestTenantHeaderContextOverride(t *testing.T) {
	var gotHeader string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Tenant-Domain")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	ctx := WithTenantDomain(context.Background(), "other.example")
	_, err := c.GetPublicConfig(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "other.example", gotHeader)
}

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func vaultMetaOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["bookingData"].(map[string]interface{})
	assert.True(t, ok, "bookingData missing")
	meta, ok := data["meta"].(map[string]interface{})
	assert.True(t, ok, "meta missing")
	vm, ok := meta["vaultMeta"].(map[string]interface{})
	assert.True(t, ok, "vaultMeta missing")
	return vm
}

func TestCreateIntentVaultMetaEnvelope(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"clientSecret":"cs_1","paymentIntentId":"pi_1","bookingRef":"ref_1"}`))
	})

	out, err := c.CreatePaymentIntent(context.Background(), CreateIntentRequest{
		Currency:          "EUR",
		SearchOptionRefID: "opt-123",
		BookingData:       models.BookingData{CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
	}, MutationOptions{VaultExtra: map[string]interface{}{"vaultKey": "demo"}})

	assert.NoError(t, err)
	assert.Equal(t, "pi_1", out.PaymentIntentID)
	assert.Equal(t, "opt-123", body["searchOptionRefId"])
	assert.Equal(t, "TGX", body["source"])

	meta := body["bookingData"].(map[string]interface{})["meta"].(map[string]interface{})
	assert.Equal(t, "vaults", meta["channel"])

	vm := vaultMetaOf(t, body)
	assert.Equal(t, "tenant.test", vm["publicDomain"])
	assert.Equal(t, "demo", vm["vaultKey"])
}

func TestVaultExtraOverridesDefaults(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookingId":"bk_1"}`))
	})

	_, err := c.BookWithCard(context.Background(), BookWithCardRequest{
		OptionRefID: "opt-1",
	}, MutationOptions{VaultExtra: map[string]interface{}{"publicDomain": "override.example"}})

	assert.NoError(t, err)
	vm := vaultMetaOf(t, body)
	assert.Equal(t, "override.example", vm["publicDomain"])
}

func TestConfirmAndBookCarriesEnvelopeAndIdempotencyKey(t *testing.T) {
	var body map[string]interface{}
	var idemKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		idemKey = r.Header.Get("Idempotency-Key")
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookingId":"bk_2"}`))
	})

	out, err := c.ConfirmAndBook(context.Background(), ConfirmAndBookRequest{
		PaymentIntentID: "pi_9",
		BookingRef:      "ref_9",
	}, MutationOptions{IdempotencyKey: "key-123"})

	assert.NoError(t, err)
	assert.Equal(t, "bk_2", out.BookingID)
	assert.Equal(t, "key-123", idemKey)
	assert.Equal(t, "pi_9", body["paymentIntentId"])
	assert.Equal(t, "ref_9", body["bookingRef"])

	vm := vaultMetaOf(t, body)
	assert.Equal(t, "tenant.test", vm["publicDomain"])
}

func TestSearchAvailabilityDefaults(t *testing.T) {
	var query map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"options":[{"rateKey":"rk-1","priceUser":120.5,"currency":"EUR"}]}`))
	})

	res, err := c.SearchAvailability(context.Background(), models.SearchParams{
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	})

	assert.NoError(t, err)
	assert.Len(t, res.Options, 1)
	assert.Equal(t, "rk-1", res.Options[0].RateKey)
	assert.Equal(t, 120.5, res.Options[0].DisplayPrice())

	assert.Equal(t, "2", query["adults"])
	assert.Equal(t, "0", query["children"])
	assert.Equal(t, "EUR", query["currency"])
	assert.Equal(t, "en", query["language"])
}

func TestQuotePaxFromEitherShape(t *testing.T) {
	top := 2
	nested := 3

	q := &QuoteResponse{NumberOfPax: &top}
	assert.Equal(t, &top, q.Pax())

	q = &QuoteResponse{}
	q.Option = &struct {
		NumberOfPax *int `json:"numberOfPax,omitempty"`
	}{NumberOfPax: &nested}
	assert.Equal(t, &nested, q.Pax())

	assert.Nil(t, (&QuoteResponse{}).Pax())
}
