package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/pkg/cache"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(7, "owner@leadpilot.local", testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "owner@leadpilot.local", claims.Email)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "owner@leadpilot.local", testSecret, 1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(7, "owner@leadpilot.local", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func setupBlacklist(t *testing.T) (*TokenBlacklist, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return NewTokenBlacklist(cacheClient), func() {
		cacheClient.Close()
		mr.Close()
	}
}

func TestTokenBlacklist(t *testing.T) {
	blacklist, cleanup := setupBlacklist(t)
	defer cleanup()
	ctx := context.Background()

	token, err := GenerateJWT(7, "owner@leadpilot.local", testSecret, 1)
	require.NoError(t, err)

	revoked, err := blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	revoked, err = blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestValidateJWTWithBlacklist_RejectsRevoked(t *testing.T) {
	blacklist, cleanup := setupBlacklist(t)
	defer cleanup()
	ctx := context.Background()

	token, err := GenerateJWT(7, "owner@leadpilot.local", testSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	assert.Error(t, err)
}
