package leads

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

func setupService(t *testing.T) (*Service, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	service := NewService(client, cacheClient)
	return service, client, func() {
		client.Close()
		cacheClient.Close()
		mr.Close()
	}
}

func TestCreate_NormalizesInput(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	created, err := service.Create(context.Background(), models.LeadCreateRequest{
		Name:    "  Sofia Reyes ",
		Email:   " SOFIA@Example.COM ",
		Phone:   "+1 415 555 0123",
		Company: "Reyes Floristeria",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sofia Reyes", created.Name)
	assert.Equal(t, "sofia@example.com", created.Email)
	assert.Equal(t, "+14155550123", created.Phone)
	assert.Equal(t, "contacted_1", string(created.Stage))
	assert.Equal(t, "other", string(created.Source))
	assert.False(t, created.Archived)
}

func TestCreate_DeadStageStartsArchived(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	created, err := service.Create(context.Background(), models.LeadCreateRequest{
		Name:  "Sofia Reyes",
		Email: "sofia@example.com",
		Stage: "not_qualified",
	})
	require.NoError(t, err)
	assert.True(t, created.Archived)
}

func TestCreate_ConvertedStageStampsTimestamp(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	created, err := service.Create(context.Background(), models.LeadCreateRequest{
		Name:  "Sofia Reyes",
		Email: "sofia@example.com",
		Stage: "converted",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ConvertedAt)
	assert.WithinDuration(t, time.Now(), *created.ConvertedAt, 5*time.Second)
}

func TestGetByID_NotFound(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	_, err := service.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestList_FiltersAndPaginates(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := client.Lead.Create().
			SetName("Interested Lead").
			SetEmail("in@example.com").
			SetStage("interested").
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.Lead.Create().
		SetName("Cold Lead").
		SetEmail("cold@example.com").
		SetStage("no_response").
		SetArchived(true).
		Save(ctx)
	require.NoError(t, err)

	resp, err := service.List(ctx, models.LeadListRequest{Stage: "interested"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Pagination.Total)

	archived := true
	resp, err = service.List(ctx, models.LeadListRequest{Archived: &archived})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Cold Lead", resp.Data[0].Name)

	resp, err = service.List(ctx, models.LeadListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.True(t, resp.Pagination.HasPrev)
	assert.False(t, resp.Pagination.HasNext)
}

func TestList_SearchMatchesNameEmailCompany(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@floristeria.mx").
		SetCompany("Reyes Floristeria").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Lead.Create().
		SetName("Marco Diaz").
		SetEmail("marco@example.com").
		Save(ctx)
	require.NoError(t, err)

	resp, err := service.List(ctx, models.LeadListRequest{Q: "floristeria"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Sofia Reyes", resp.Data[0].Name)
}

func TestDelete_RemovesLeadAndActivities(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Activity.Create().
		SetLeadID(row.ID).
		SetBody("called, no answer").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, row.ID))

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = client.Activity.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDelete_NotFound(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	err := service.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestStats_Aggregates(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	revenue := 1200.0
	_, err := client.Lead.Create().
		SetName("Converted Lead").
		SetEmail("won@example.com").
		SetStage("converted").
		SetRevenue(revenue).
		SetConvertedAt(time.Now()).
		SetSource("meta_ads").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Lead.Create().
		SetName("Open Lead").
		SetEmail("open@example.com").
		SetSource("website").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Lead.Create().
		SetName("Dead Lead").
		SetEmail("dead@example.com").
		SetStage("not_interested").
		SetArchived(true).
		Save(ctx)
	require.NoError(t, err)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Archived)
	assert.Equal(t, 1, stats.Converted)
	assert.InDelta(t, 100.0/3.0, stats.ConversionRate, 0.01)
	assert.Equal(t, 1200.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.ByStage["converted"])
	assert.Equal(t, 1, stats.BySource["meta_ads"])
	assert.Equal(t, 1, stats.BySource["website"])
}

func TestStats_CacheInvalidatedOnWrite(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)

	_, err = service.Create(ctx, models.LeadCreateRequest{
		Name:  "Sofia Reyes",
		Email: "sofia@example.com",
	})
	require.NoError(t, err)

	stats, err = service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}
