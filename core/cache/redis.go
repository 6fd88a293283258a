package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soheiltpr/calfind/core/config"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/logger"
)

// ICache is the cache/pub-sub surface the rest of the app consumes. All
// methods are best effort: callers treat failures as cache misses.
type ICache interface {
	GetTimeline(ctx context.Context, projectID string) (string, bool)
	SetTimeline(ctx context.Context, projectID, payload string, ttl time.Duration) error
	InvalidateTimeline(ctx context.Context, projectID string) error

	PublishProjectChange(ctx context.Context, projectID, kind string) error
	SubscribeProjectChanges(ctx context.Context, projectID string) *redis.PubSub

	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	Client() *redis.Client
}

type redisCache struct {
	client *redis.Client
}

// Init connects to redis and returns the shared cache. A failed ping is an
// error at boot; runtime failures degrade to recomputation.
func Init(cfg config.RedisConfig) (ICache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) GetTimeline(ctx context.Context, projectID string) (string, bool) {
	val, err := c.client.Get(ctx, constants.RedisKeyTimelineCache+projectID).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cache:GetTimeline", "error", err, "project_id", projectID)
		}
		return "", false
	}
	return val, true
}

func (c *redisCache) SetTimeline(ctx context.Context, projectID, payload string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTimelineCache+projectID, payload, ttl).Err()
}

func (c *redisCache) InvalidateTimeline(ctx context.Context, projectID string) error {
	return c.client.Del(ctx, constants.RedisKeyTimelineCache+projectID).Err()
}

// PublishProjectChange notifies subscribers that something inside the
// project changed. kind is a short tag like "slots" or "document".
func (c *redisCache) PublishProjectChange(ctx context.Context, projectID, kind string) error {
	return c.client.Publish(ctx, constants.RedisChannelProject+projectID, kind).Err()
}

func (c *redisCache) SubscribeProjectChanges(ctx context.Context, projectID string) *redis.PubSub {
	return c.client.Subscribe(ctx, constants.RedisChannelProject+projectID)
}

func (c *redisCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Client() *redis.Client {
	return c.client
}
