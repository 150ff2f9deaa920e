package settings

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/enttest"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func TestGet_Missing(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewService(client)

	_, _, err := service.Get(context.Background(), "never_written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPut_CreatesThenBumpsVersion(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	err := service.Put(ctx, KeyBusinessProfile, map[string]interface{}{"company": "LeadPilot"})
	require.NoError(t, err)

	value, version, err := service.Get(ctx, KeyBusinessProfile)
	require.NoError(t, err)
	assert.Equal(t, "LeadPilot", value["company"])
	assert.Equal(t, 1, version)

	err = service.Put(ctx, KeyBusinessProfile, map[string]interface{}{"company": "LeadPilot Inc"})
	require.NoError(t, err)

	value, version, err = service.Get(ctx, KeyBusinessProfile)
	require.NoError(t, err)
	assert.Equal(t, "LeadPilot Inc", value["company"])
	assert.Equal(t, 2, version)
}

func TestCompareAndSwap_Conflict(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	require.NoError(t, service.Put(ctx, KeyGmailTokens, map[string]interface{}{"access_token": "a"}))

	_, version, err := service.Get(ctx, KeyGmailTokens)
	require.NoError(t, err)

	// First writer at the observed version wins
	err = service.CompareAndSwap(ctx, KeyGmailTokens, map[string]interface{}{"access_token": "b"}, version)
	require.NoError(t, err)

	// Second writer still holding the old version loses cleanly
	err = service.CompareAndSwap(ctx, KeyGmailTokens, map[string]interface{}{"access_token": "c"}, version)
	assert.ErrorIs(t, err, ErrVersionConflict)

	value, _, err := service.Get(ctx, KeyGmailTokens)
	require.NoError(t, err)
	assert.Equal(t, "b", value["access_token"])
}

func TestDelete_MissingIsNotAnError(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewService(client)

	assert.NoError(t, service.Delete(context.Background(), "never_written"))
}

func TestGmailTokens_RoundTrip(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	_, _, err := service.GetGmailTokens(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	saved := GmailTokens{
		AccessToken:  "ya29.access",
		RefreshToken: "1//refresh",
		ExpiryDate:   time.Now().Add(time.Hour).UnixMilli(),
		Email:        "owner@leadpilot.local",
	}
	require.NoError(t, service.SaveGmailTokens(ctx, saved))

	loaded, version, err := service.GetGmailTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, *loaded)
	assert.Equal(t, 1, version)

	refreshed := saved
	refreshed.AccessToken = "ya29.fresh"
	require.NoError(t, service.SwapGmailTokens(ctx, refreshed, version))

	loaded, _, err = service.GetGmailTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ya29.fresh", loaded.AccessToken)

	// Stale refresher loses the race
	err = service.SwapGmailTokens(ctx, saved, version)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestGmailTokens_Expired(t *testing.T) {
	now := time.Now()

	fresh := GmailTokens{ExpiryDate: now.Add(10 * time.Minute).UnixMilli()}
	assert.False(t, fresh.Expired(now))

	stale := GmailTokens{ExpiryDate: now.Add(-time.Minute).UnixMilli()}
	assert.True(t, stale.Expired(now))
}
