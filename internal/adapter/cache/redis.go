package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/retry"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

const keyPrefix = "offers:"

// RedisConfig configures RedisCache.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	TTL         time.Duration
	DialTimeout time.Duration
}

// DefaultRedisConfig returns settings for a local Redis.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:        "localhost:6379",
		TTL:         DefaultTTL,
		DialTimeout: 5 * time.Second,
	}
}

// RedisCache stores cached searches as JSON values with a TTL.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	clock  timeutil.Clock
	read   retry.Policy
	write  retry.Policy
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewRedisCacheWithClient(client, cfg.TTL, nil), nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(client redis.UniversalClient, ttl time.Duration, clock timeutil.Clock) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
		clock:  clock,
		read:   retry.CacheReadPolicy,
		write:  retry.CacheWritePolicy,
	}
}

// Get loads the cached search. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key domain.SearchKey) (domain.CachedSearch, bool, error) {
	k := redisKey(key)
	data, err := retry.RunValue(ctx, c.read, func(ctx context.Context) ([]byte, error) {
		b, err := c.client.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) || isContextError(err) {
			return nil, retry.Stop(err)
		}
		return b, err
	})
	if errors.Is(err, redis.Nil) {
		return domain.CachedSearch{}, false, nil
	}
	if err != nil {
		return domain.CachedSearch{}, false, fmt.Errorf("redis get: %w", err)
	}

	var entry domain.CachedSearch
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CachedSearch{}, false, fmt.Errorf("decode cached search %s: %w", key, err)
	}
	return entry, true, nil
}

// Set writes the entry, retrying transient failures.
func (c *RedisCache) Set(ctx context.Context, entry domain.CachedSearch) error {
	entry.Key = entry.Key.Normalize()
	entry.StoredAt = c.clock.Now()

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cached search %s: %w", entry.Key, err)
	}

	k := redisKey(entry.Key)
	return retry.Run(ctx, c.write, func(ctx context.Context) error {
		err := c.client.Set(ctx, k, payload, c.ttl).Err()
		if isContextError(err) {
			return retry.Stop(err)
		}
		return err
	})
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func redisKey(key domain.SearchKey) string {
	sum := sha256.Sum256([]byte(key.Normalize().String()))
	return keyPrefix + hex.EncodeToString(sum[:])
}

var _ domain.OfferCache = (*RedisCache)(nil)
