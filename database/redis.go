package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"capi/forwarder/config"
	"capi/forwarder/domain"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ErrRedisNotInitialized is returned by health checks when the Redis sink
// was never initialized (disabled or failed startup).
var ErrRedisNotInitialized = fmt.Errorf("Redis connection is not initialized")

// StatsRedis keeps the running delivery counters.
type StatsRedis struct {
	*redis.Client
}

const (
	statsKeyDelivered = "capi_stats:delivered"
	statsKeyFailed    = "capi_stats:failed"
)

// IncrDelivery increments the counter matching the delivery outcome.
func (r *StatsRedis) IncrDelivery(ctx context.Context, delivered bool) error {
	key := statsKeyFailed
	if delivered {
		key = statsKeyDelivered
	}
	return r.Incr(ctx, key).Err()
}

// GetDeliveryStats reads both counters. A missing key counts as zero.
func (r *StatsRedis) GetDeliveryStats(ctx context.Context) (*domain.DeliveryStats, error) {
	delivered, err := r.getCounter(ctx, statsKeyDelivered)
	if err != nil {
		return nil, err
	}
	failed, err := r.getCounter(ctx, statsKeyFailed)
	if err != nil {
		return nil, err
	}
	return &domain.DeliveryStats{Delivered: delivered, Failed: failed}, nil
}

func (r *StatsRedis) getCounter(ctx context.Context, key string) (uint64, error) {
	result, err := r.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(result, 10, 64)
}

// InitRedis initializes the Redis client connection
func InitRedis(cfg *config.RedisConfig) error {
	addr := cfg.GetRedisAddr()

	opts := &redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0, // default DB
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisClient = client
	log.Println("Redis connection established successfully")
	return nil
}

// CloseRedis closes the Redis client connection
func CloseRedis() error {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		log.Println("Redis connection closed")
	}
	return nil
}

// RedisHealthCheck verifies that the Redis connection is alive
func RedisHealthCheck(ctx context.Context) error {
	if redisClient == nil {
		return ErrRedisNotInitialized
	}
	return redisClient.Ping(ctx).Err()
}

// GetStatsRedis returns the delivery stats client
func GetStatsRedis() *StatsRedis {
	return &StatsRedis{redisClient}
}
