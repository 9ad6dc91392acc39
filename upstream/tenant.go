package upstream

import (
	"context"
	"net/http"

	"stayfront/models"
)

// GetPublicConfig fetches the tenant's public site configuration.
func (c *Client) GetPublicConfig(ctx context.Context) (*models.TenantConfig, error) {
	var cfg models.TenantConfig
	if err := c.do(ctx, http.MethodGet, "/tenants/webconstructor/site/config", nil, requestOptions{}, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetHotel fetches the tenant's hotel record.
func (c *Client) GetHotel(ctx context.Context) (*models.HotelRecord, error) {
	var hotel models.HotelRecord
	if err := c.do(ctx, http.MethodGet, "/tenants/webconstructor/hotel", nil, requestOptions{}, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}
