// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"stayfront/config"

	"github.com/go-redis/redis/v8"
)

// SiteCacheClient backs the tenant config / hotel read-through cache.
var SiteCacheClient *redis.Client

// InitSiteCache initializes the Redis client for the site cache.
func InitSiteCache() {
	SiteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SiteCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Site Cache): %v", err)
	}
}

// GetSiteCacheClient returns the site cache client.
func GetSiteCacheClient() *redis.Client {
	if SiteCacheClient == nil {
		InitSiteCache()
	}
	return SiteCacheClient
}
