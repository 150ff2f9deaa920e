package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", val)
}

func TestClient_Get_Missing(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "test:missing")
	assert.Error(t, err)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	_ = client.Set(ctx, "test:key2", "value2", 1*time.Hour)

	err := client.Delete(ctx, "test:key1", "test:key2")
	require.NoError(t, err)

	_, err = client.Get(ctx, "test:key1")
	assert.Error(t, err)
}

func TestClient_SetNX(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// First writer wins
	ok, err := client.SetNX(ctx, "test:once", "first", 1*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second writer sees the key taken
	ok, err = client.SetNX(ctx, "test:once", "second", 1*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := client.Get(ctx, "test:once")
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "test:absent")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "test:present", "x", 1*time.Hour)

	exists, err = client.Exists(ctx, "test:present")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:ttl", "value", 1*time.Second)
	require.NoError(t, err)

	// miniredis advances time manually
	mr.FastForward(2 * time.Second)

	_, err = client.Get(ctx, "test:ttl")
	assert.Error(t, err)
}
