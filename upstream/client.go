package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const tenantHeader = "X-Tenant-Domain"

type tenantDomainKey struct{}

// WithTenantDomain returns a context carrying a per-request tenant domain,
// overriding the client's configured default. The tenant middleware sets
// this from the request host when no domain is configured.
func WithTenantDomain(ctx context.Context, domain string) context.Context {
	return context.WithValue(ctx, tenantDomainKey{}, domain)
}

func tenantDomainFrom(ctx context.Context, fallback string) string {
	if d, ok := ctx.Value(tenantDomainKey{}).(string); ok && d != "" {
		return d
	}
	return fallback
}

// Client is the typed HTTP client for the tenant platform API. All requests
// carry the resolved tenant domain header; all non-2xx responses pass
// through the same error normalization.
type Client struct {
	baseURL      string
	tenantDomain string
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewClient builds a platform client. tenantDomain may be empty when the
// domain is resolved per request.
func NewClient(baseURL, tenantDomain string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		tenantDomain: tenantDomain,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}

// TenantDomain reports the domain resolved for the given context.
func (c *Client) TenantDomain(ctx context.Context) string {
	return tenantDomainFrom(ctx, c.tenantDomain)
}

type requestOptions struct {
	query          url.Values
	idempotencyKey string
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, opts requestOptions, out interface{}) error {
	u := c.baseURL + path
	if len(opts.query) > 0 {
		u += "?" + opts.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(tenantHeader, tenantDomainFrom(ctx, c.tenantDomain))
	if opts.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", opts.idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: ErrTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrTransport, Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := normalizeError(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
		c.logger.Warn("upstream request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response for %s: %w", path, err)
		}
	}
	return nil
}
