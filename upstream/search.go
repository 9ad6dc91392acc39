package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"stayfront/models"
)

// Search defaults applied when the caller leaves fields empty.
const (
	DefaultAdults   = 2
	DefaultChildren = 0
	DefaultCurrency = "EUR"
	DefaultLanguage = "en"
)

// ApplySearchDefaults fills unset stay parameters.
func ApplySearchDefaults(p *models.SearchParams) {
	if p.Adults == 0 {
		p.Adults = DefaultAdults
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
}

// SearchAvailability queries the platform search endpoint. All parameters
// travel as query parameters.
func (c *Client) SearchAvailability(ctx context.Context, params models.SearchParams) (*models.AvailabilityResult, error) {
	ApplySearchDefaults(&params)

	q := url.Values{}
	q.Set("checkIn", params.CheckIn)
	q.Set("checkOut", params.CheckOut)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("children", strconv.Itoa(params.Children))
	q.Set("currency", params.Currency)
	q.Set("language", params.Language)

	var res models.AvailabilityResult
	if err := c.do(ctx, http.MethodGet, "/tenants/webconstructor/search", nil, requestOptions{query: q}, &res); err != nil {
		return nil, err
	}
	if res.Options == nil {
		res.Options = []models.AvailabilityOption{}
	}
	return &res, nil
}
