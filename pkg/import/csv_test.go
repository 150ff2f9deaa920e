package importpkg

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/leads"
)

func setupService(t *testing.T) (*Service, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	service := NewService(client, leads.NewService(client, cacheClient))
	return service, client, func() {
		client.Close()
		cacheClient.Close()
		mr.Close()
	}
}

func TestImportFromCSV_HappyPath(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	csvData := `name,email,company,phone,stage,source,probability,revenue,notes
Sofia Reyes,SOFIA@Example.com,Reyes Floristeria,(415) 555-0123,interested,referral,70,1500,Met at expo
Marco Diaz,marco@example.com,,,,,,,`

	result, err := service.ImportFromCSV(ctx, strings.NewReader(csvData), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Zero(t, result.SkippedCount)
	assert.Empty(t, result.Errors)

	row, err := client.Lead.Query().Where(lead.Email("sofia@example.com")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sofia Reyes", row.Name)
	assert.Equal(t, "Reyes Floristeria", row.Company)
	assert.Equal(t, "+14155550123", row.Phone)
	assert.Equal(t, "interested", string(row.Stage))
	assert.Equal(t, "referral", string(row.Source))
	assert.Equal(t, 70, row.ConversionProbability)
	require.NotNil(t, row.Revenue)
	assert.Equal(t, 1500.0, *row.Revenue)
}

func TestImportFromCSV_MissingRequiredColumn(t *testing.T) {
	service, _, cleanup := setupService(t)
	defer cleanup()

	csvData := "name,company\nSofia Reyes,Reyes Floristeria"

	_, err := service.ImportFromCSV(context.Background(), strings.NewReader(csvData), DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestImportFromCSV_InvalidRowsReported(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	csvData := `name,email,stage,probability
,missing-name@example.com,,
Bad Email,not-an-email,,
Bad Stage,stage@example.com,pending,
Bad Probability,prob@example.com,,150
Good Row,good@example.com,called,"60"`

	result, err := service.ImportFromCSV(ctx, strings.NewReader(csvData), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 4, result.FailureCount)
	require.Len(t, result.Errors, 4)

	fields := make([]string, 0, len(result.Errors))
	for _, rowErr := range result.Errors {
		fields = append(fields, rowErr.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "stage", "probability"}, fields)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportFromCSV_ExistingEmailSkipped(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)

	csvData := "name,email\nSofia Reyes,sofia@example.com\nMarco Diaz,marco@example.com"

	result, err := service.ImportFromCSV(ctx, strings.NewReader(csvData), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Zero(t, result.FailureCount)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportFromCSV_ValidateOnlyWritesNothing(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	csvData := "name,email\nSofia Reyes,sofia@example.com"

	config := DefaultConfig()
	config.ValidateOnly = true
	result, err := service.ImportFromCSV(ctx, strings.NewReader(csvData), config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportFromCSV_MaxRowsLimit(t *testing.T) {
	service, client, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	csvData := "name,email\nA One,a@example.com\nB Two,b@example.com\nC Three,c@example.com"

	config := DefaultConfig()
	config.MaxRows = 2
	result, err := service.ImportFromCSV(ctx, strings.NewReader(csvData), config)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
