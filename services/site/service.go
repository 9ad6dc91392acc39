package site

import (
	"context"
	"encoding/json"
	"time"

	"stayfront/models"

	"go.uber.org/zap"
)

// Cache keys are fixed so a redeploy reuses the previous entries.
const (
	SiteConfigCacheKey = "wc.siteConfig"
	HotelCacheKey      = "wc.hotelData"
)

// ConfigAPI is the slice of the platform client the site service needs.
type ConfigAPI interface {
	GetPublicConfig(ctx context.Context) (*models.TenantConfig, error)
	GetHotel(ctx context.Context) (*models.HotelRecord, error)
}

// SiteService serves tenant configuration and hotel data through a
// best-effort read-through cache, with an explicit load/clear lifecycle
// instead of ambient shared state.
type SiteService interface {
	SiteConfig(ctx context.Context) (*models.TenantConfig, error)
	Hotel(ctx context.Context) (*models.HotelRecord, error)
	Load(ctx context.Context) error
	Clear(ctx context.Context) error
}

// DefaultSiteService implements SiteService.
type DefaultSiteService struct {
	API    ConfigAPI
	Cache  Cache
	TTL    time.Duration
	Logger *zap.Logger
}

func NewSiteService(api ConfigAPI, cache Cache, ttl time.Duration, logger *zap.Logger) *DefaultSiteService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &DefaultSiteService{API: api, Cache: cache, TTL: ttl, Logger: logger}
}

// readCached fills out from the cached entry under key. A missing entry and
// a corrupted one are both reported as a miss; corruption is only logged.
func (s *DefaultSiteService) readCached(ctx context.Context, key string, out interface{}) bool {
	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		if err != ErrCacheMiss {
			s.Logger.Warn("site cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.Logger.Warn("discarding corrupted site cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// writeCached stores the value best-effort; a cache failure never fails the
// request.
func (s *DefaultSiteService) writeCached(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Logger.Warn("failed to encode site cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, key, string(data), s.TTL); err != nil {
		s.Logger.Warn("failed to persist site cache entry", zap.String("key", key), zap.Error(err))
	}
}

// SiteConfig returns the tenant configuration, serving the cached copy when
// present and refreshing it from the platform otherwise.
func (s *DefaultSiteService) SiteConfig(ctx context.Context) (*models.TenantConfig, error) {
	var cached models.TenantConfig
	if s.readCached(ctx, SiteConfigCacheKey, &cached) {
		return &cached, nil
	}

	cfg, err := s.API.GetPublicConfig(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCached(ctx, SiteConfigCacheKey, cfg)
	return cfg, nil
}

// Hotel returns the tenant's hotel record with the same cache behavior as
// SiteConfig.
func (s *DefaultSiteService) Hotel(ctx context.Context) (*models.HotelRecord, error) {
	var cached models.HotelRecord
	if s.readCached(ctx, HotelCacheKey, &cached) {
		return &cached, nil
	}

	hotel, err := s.API.GetHotel(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCached(ctx, HotelCacheKey, hotel)
	return hotel, nil
}

// Load refreshes both entries from the platform, overwriting the cache.
func (s *DefaultSiteService) Load(ctx context.Context) error {
	cfg, err := s.API.GetPublicConfig(ctx)
	if err != nil {
		return err
	}
	s.writeCached(ctx, SiteConfigCacheKey, cfg)

	hotel, err := s.API.GetHotel(ctx)
	if err != nil {
		return err
	}
	s.writeCached(ctx, HotelCacheKey, hotel)
	return nil
}

// Clear drops both cached entries.
func (s *DefaultSiteService) Clear(ctx context.Context) error {
	return s.Cache.Del(ctx, SiteConfigCacheKey, HotelCacheKey)
}
