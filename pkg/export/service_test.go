package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

func setupService(t *testing.T) (*Service, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	service := NewService(leads.NewService(client, cacheClient))
	return service, client, func() {
		client.Close()
		cacheClient.Close()
		mr.Close()
	}
}

func TestExport_InvalidFormat(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	_, _, err := service.Export(context.Background(), "pdf", models.LeadListRequest{})
	assert.Error(t, err)
}

func TestExport_CSV(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	revenue := 2500.0
	converted := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	_, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		SetCompany("Reyes Floristeria").
		SetStage("converted").
		SetSource("referral").
		SetRevenue(revenue).
		SetConvertedAt(converted).
		Save(ctx)
	require.NoError(t, err)

	data, filename, err := service.Export(ctx, "csv", models.LeadListRequest{})
	require.NoError(t, err)
	assert.Regexp(t, `^leads-\d{8}-\d{6}\.csv$`, filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, exportHeaders, records[0])
	row := records[1]
	assert.Equal(t, "Sofia Reyes", row[1])
	assert.Equal(t, "sofia@example.com", row[2])
	assert.Equal(t, "Reyes Floristeria", row[3])
	assert.Equal(t, "converted", row[5])
	assert.Equal(t, "referral", row[6])
	assert.Equal(t, "2500.00", row[9])
	assert.Equal(t, "2026-08-01T12:00:00Z", row[12])
}

func TestExport_FilterApplies(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.Lead.Create().
		SetName("Keep Me").
		SetEmail("keep@example.com").
		SetStage("interested").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Lead.Create().
		SetName("Skip Me").
		SetEmail("skip@example.com").
		Save(ctx)
	require.NoError(t, err)

	data, _, err := service.Export(ctx, "csv", models.LeadListRequest{Stage: "interested"})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Keep Me", records[1][1])
}

func TestExport_Excel(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)

	data, filename, err := service.Export(ctx, "excel", models.LeadListRequest{})
	require.NoError(t, err)
	assert.Regexp(t, `^leads-\d{8}-\d{6}\.xlsx$`, filename)

	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Sofia Reyes", rows[1][1])
}

func TestExport_PagesPastListLimit(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	// More leads than one list page holds
	bulk := make([]*ent.LeadCreate, 250)
	for i := range bulk {
		bulk[i] = client.Lead.Create().
			SetName("Bulk Lead").
			SetEmail("bulk@example.com")
	}
	_, err := client.Lead.CreateBulk(bulk...).Save(ctx)
	require.NoError(t, err)

	data, _, err := service.Export(ctx, "csv", models.LeadListRequest{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 251)
}
