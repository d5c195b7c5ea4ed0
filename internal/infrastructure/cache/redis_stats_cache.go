package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/service"
)

const statsKey = "serviya:admin:stats"

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) service.StatsCache {
	return &redisStatsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisStatsCache) Get(ctx context.Context) (*entity.PlatformStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", statsKey, err)
	}

	var stats entity.PlatformStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

func (c *redisStatsCache) Set(ctx context.Context, stats *entity.PlatformStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", statsKey, err)
	}
	return nil
}
