// Copyright (c) 2026 Kiroku. All rights reserved.
// Author: adria.ferrer.bcn@gmail.com

package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenCache implements [TokenCache] on top of Redis.
//
// Provider tokens survive process restarts this way, which matters because
// Twitch rate-limits the client-credentials endpoint.
type RedisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache creates a [RedisTokenCache] from a connected client.
func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

// Get returns the cached token, or an empty string on a miss.
func (cache *RedisTokenCache) Get(ctx context.Context, key string) (string, error) {
	value, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("token_cache_get_failed: %w", err)
	}
	return value, nil
}

// Set stores a token under the key with the given TTL.
func (cache *RedisTokenCache) Set(ctx context.Context, key, value string, timeToLive time.Duration) error {
	if err := cache.client.Set(ctx, key, value, timeToLive).Err(); err != nil {
		return fmt.Errorf("token_cache_set_failed: %w", err)
	}
	return nil
}
