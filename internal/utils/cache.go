package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Integer key parts
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// CacheTTL is the shared lifetime for cached catalog and dashboard reads
const CacheTTL = 60 * time.Second

// Cache keys for the read-heavy endpoints
const (
	ActiveCafesKey    = "catalog:cafes:active" // Active cafe list shown on the menu page
	AllCafesKey       = "catalog:cafes:all"    // Unfiltered cafe list for admin views
	AdminDashboardKey = "admin:dashboard"      // Aggregate admin counters
)

// MenuItemsKey builds the cache key for one cafe's available items
func MenuItemsKey(cafeID uint) string {
	return "catalog:cafe:" + strconv.Itoa(int(cafeID)) + ":items"
}

// RecommendKey builds the per-user recommendations cache key
func RecommendKey(userID uint) string {
	return "recommend:user:" + strconv.Itoa(int(userID))
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes keys from Redis, ignoring missing ones
func DeleteCache(ctx context.Context, rdb *redis.Client, keys ...string) error {
	return rdb.Del(ctx, keys...).Err()
}

// InvalidateCatalog drops the cached cafe lists after a cafe write
func InvalidateCatalog(ctx context.Context, rdb *redis.Client) {
	_ = DeleteCache(ctx, rdb, ActiveCafesKey, AllCafesKey, AdminDashboardKey)
}

// InvalidateOrderViews drops the caches an order write goes stale against
func InvalidateOrderViews(ctx context.Context, rdb *redis.Client, userID uint) {
	_ = DeleteCache(ctx, rdb, AdminDashboardKey, RecommendKey(userID))
}
