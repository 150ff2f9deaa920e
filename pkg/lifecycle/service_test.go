package lifecycle

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/enttest"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func TestDerive(t *testing.T) {
	now := time.Now()
	explicitTrue := true
	explicitFalse := false

	tests := []struct {
		name         string
		stage        Stage
		archived     *bool
		wantArchived bool
		wantStamp    bool
	}{
		{"dead stage auto-archives", StageNotInterested, nil, true, false},
		{"no_response auto-archives", StageNoResponse, nil, true, false},
		{"not_qualified auto-archives", StageNotQualified, nil, true, false},
		{"live stage auto-unarchives", StageInterested, nil, false, false},
		{"contacted_1 stays live", StageContacted1, nil, false, false},
		{"converted stamps timestamp", StageConverted, nil, false, true},
		{"explicit archived wins on live stage", StageInterested, &explicitTrue, true, false},
		{"explicit unarchived wins on dead stage", StageNotInterested, &explicitFalse, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.stage, tt.archived, now)
			assert.Equal(t, tt.wantArchived, got.Archived)
			if tt.wantStamp {
				require.NotNil(t, got.ConvertedAt)
				assert.Equal(t, now, *got.ConvertedAt)
			} else {
				assert.Nil(t, got.ConvertedAt)
			}
		})
	}
}

func TestStageSets(t *testing.T) {
	assert.True(t, IsArchivedStage(StageNotInterested))
	assert.True(t, IsArchivedStage(StageNoResponse))
	assert.True(t, IsArchivedStage(StageNotQualified))
	assert.False(t, IsArchivedStage(StageConverted))

	assert.True(t, IsEarlyContactStage(StageContacted1))
	assert.True(t, IsEarlyContactStage(StageNoResponse))
	assert.False(t, IsEarlyContactStage(StageInterested))
	assert.False(t, IsEarlyContactStage(StageConverted))

	assert.True(t, StageOnHold.Valid())
	assert.False(t, Stage("pending").Valid())
}

func TestApply_StageChangeAutoArchives(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		Save(ctx)
	require.NoError(t, err)

	stage := StageNotInterested
	updated, err := service.Apply(ctx, row.ID, Changes{Stage: &stage})
	require.NoError(t, err)

	assert.Equal(t, "not_interested", string(updated.Stage))
	assert.True(t, updated.Archived)
	assert.Nil(t, updated.ConvertedAt)
}

func TestApply_ReviveUnarchives(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		SetStage("no_response").
		SetArchived(true).
		Save(ctx)
	require.NoError(t, err)

	stage := StageInterested
	updated, err := service.Apply(ctx, row.ID, Changes{Stage: &stage})
	require.NoError(t, err)

	assert.Equal(t, "interested", string(updated.Stage))
	assert.False(t, updated.Archived)
}

func TestApply_ConvertedStampsAndClears(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		SetStage("onboarding_sent").
		Save(ctx)
	require.NoError(t, err)

	converted := StageConverted
	updated, err := service.Apply(ctx, row.ID, Changes{Stage: &converted})
	require.NoError(t, err)
	require.NotNil(t, updated.ConvertedAt)
	assert.WithinDuration(t, time.Now(), *updated.ConvertedAt, 5*time.Second)

	// Leaving converted clears the timestamp again
	back := StageOnHold
	updated, err = service.Apply(ctx, row.ID, Changes{Stage: &back})
	require.NoError(t, err)
	assert.Nil(t, updated.ConvertedAt)
}

func TestApply_ExplicitArchivedOverridesPolicy(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		Save(ctx)
	require.NoError(t, err)

	stage := StageNotInterested
	keep := false
	updated, err := service.Apply(ctx, row.ID, Changes{Stage: &stage, Archived: &keep})
	require.NoError(t, err)

	assert.Equal(t, "not_interested", string(updated.Stage))
	assert.False(t, updated.Archived)
}

func TestApply_ArchivedOnlyPassesThrough(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		Save(ctx)
	require.NoError(t, err)

	archived := true
	updated, err := service.Apply(ctx, row.ID, Changes{Archived: &archived})
	require.NoError(t, err)

	assert.True(t, updated.Archived)
	assert.Equal(t, "contacted_1", string(updated.Stage))
}

func TestApply_StageChangeRecordsActivity(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		Save(ctx)
	require.NoError(t, err)

	stage := StageCalled
	_, err = service.Apply(ctx, row.ID, Changes{Stage: &stage})
	require.NoError(t, err)

	rows, err := client.Activity.Query().
		Where(activity.LeadID(row.ID), activity.KindEQ(activity.KindStageChange)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Body, "contacted_1")
	assert.Contains(t, rows[0].Body, "called")
}

func TestApply_SameStageSkipsActivity(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		Save(ctx)
	require.NoError(t, err)

	stage := StageContacted1
	_, err = service.Apply(ctx, row.ID, Changes{Stage: &stage})
	require.NoError(t, err)

	count, err := client.Activity.Query().
		Where(activity.LeadID(row.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestApply_FieldUpdates(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	service := NewService(client)

	row, err := client.Lead.Create().
		SetName("Ana Martinez").
		SetEmail("ana@example.com").
		Save(ctx)
	require.NoError(t, err)

	name := "Ana M. Martinez"
	email := "  ANA@Example.COM "
	notes := "Prefers calls in the afternoon"
	probability := 80
	updated, err := service.Apply(ctx, row.ID, Changes{
		Name:                  &name,
		Email:                 &email,
		Notes:                 &notes,
		ConversionProbability: &probability,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana M. Martinez", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, 80, updated.ConversionProbability)
}

func TestApply_NotFound(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	service := NewService(client)

	stage := StageInterested
	_, err := service.Apply(context.Background(), 9999, Changes{Stage: &stage})
	assert.ErrorIs(t, err, ErrNotFound)
}
