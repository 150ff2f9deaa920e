package handlers

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
)

// Prometheus collectors register globally, so the test binary shares one set.
var testMetrics = metrics.New()

type testEnv struct {
	db    *ent.Client
	cache *cache.Client
	mr    *miniredis.Miniredis
}

func setupEnv(t *testing.T) (*testEnv, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	env := &testEnv{db: client, cache: cacheClient, mr: mr}
	return env, func() {
		client.Close()
		cacheClient.Close()
		mr.Close()
	}
}
