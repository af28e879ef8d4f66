package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const (
	availabilityCacheTTL = time.Minute
	statsCacheTTL        = time.Minute

	statsCacheKey         = "booking:stats"
	bookingUpdatesChannel = "booking:updates"
)

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

func availabilityKey(trainerID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", trainerID, date)
}

// CacheAvailability stores a trainer's slot listing for a date. Listings
// tolerate brief staleness; the claim path never reads this cache.
func CacheAvailability(ctx context.Context, trainerID uint, date string, slots interface{}) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, availabilityKey(trainerID, date), data, availabilityCacheTTL).Err()
}

// GetCachedAvailability loads a cached slot listing into dest. Returns false
// on a cache miss.
func GetCachedAvailability(ctx context.Context, trainerID uint, date string, dest interface{}) (bool, error) {
	data, err := RedisClient.Get(ctx, availabilityKey(trainerID, date)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

// InvalidateAvailability drops a cached listing after a claim or release
// changed it.
func InvalidateAvailability(ctx context.Context, trainerID uint, date string) error {
	return RedisClient.Del(ctx, availabilityKey(trainerID, date)).Err()
}

// CacheStats stores the dashboard aggregates.
func CacheStats(ctx context.Context, stats interface{}) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, statsCacheKey, data, statsCacheTTL).Err()
}

// GetCachedStats loads the cached aggregates into dest. Returns false on a
// cache miss.
func GetCachedStats(ctx context.Context, dest interface{}) (bool, error) {
	data, err := RedisClient.Get(ctx, statsCacheKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

// InvalidateStats drops the cached aggregates after a ledger mutation.
func InvalidateStats(ctx context.Context) error {
	return RedisClient.Del(ctx, statsCacheKey).Err()
}

// PublishBookingUpdate publishes a booking status change to Redis pub/sub
// for the notification subsystem. Delivery is best effort; the state change
// has already committed.
func PublishBookingUpdate(ctx context.Context, bookingID uint, bookingNumber, status string, data map[string]interface{}) error {
	updateData := map[string]interface{}{
		"bookingId":     bookingID,
		"bookingNumber": bookingNumber,
		"status":        status,
		"data":          data,
		"timestamp":     time.Now().Unix(),
	}

	jsonData, err := json.Marshal(updateData)
	if err != nil {
		return err
	}

	return RedisClient.Publish(ctx, bookingUpdatesChannel, jsonData).Err()
}
