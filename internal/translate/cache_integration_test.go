// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package translate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx,
		"docker.io/redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("* Ready to accept connections").
				WithOccurrence(1).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedisCache(client, time.Minute)
	key := CacheKey("fr", true, "<p>Hello</p>")

	_, hit, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, key, "<p>Bonjour</p>"))

	value, hit, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "<p>Bonjour</p>", value)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, time.Minute)
}
