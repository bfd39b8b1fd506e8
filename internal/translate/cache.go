// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/novelia/internal/platform/constants"
)

// Cache stores finished translations. Misses are not errors.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// CacheKey derives the cache key of text translated into lang. HTML and
// plain-text translations of the same text are kept apart, since only the
// former went through the tag check and the sanitiser.
//
//	translate:<lang>:<html|text>:<sha256(text) hex>
func CacheKey(lang string, markupAware bool, text string) string {
	kind := "text"
	if markupAware {
		kind = "html"
	}
	sum := sha256.Sum256([]byte(text))
	return constants.RedisPrefixTranslation + lang + ":" + kind + ":" + hex.EncodeToString(sum[:])
}

// RedisCache keeps translations in Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache returns a cache over client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (cache *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := cache.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (cache *RedisCache) Set(ctx context.Context, key, value string) error {
	return cache.client.Set(ctx, key, value, cache.ttl).Err()
}
