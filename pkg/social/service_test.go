package social

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
)

type fakeGraph struct {
	leadDetails map[string]*LeadDetails
	profiles    map[string]*Profile
	err         error
}

func (f *fakeGraph) GetLeadDetails(ctx context.Context, leadgenID string) (*LeadDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	if details, ok := f.leadDetails[leadgenID]; ok {
		return details, nil
	}
	return nil, errors.New("leadgen not found")
}

func (f *fakeGraph) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if profile, ok := f.profiles[userID]; ok {
		return profile, nil
	}
	return nil, errors.New("profile not found")
}

func setupService(t *testing.T, graph Graph) (*Service, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	lifecycleService := lifecycle.NewService(client)
	leadService := leads.NewService(client, cacheClient)
	service := NewService(client, cacheClient, graph, lifecycleService, leadService)

	return service, client, func() {
		client.Close()
		cacheClient.Close()
		mr.Close()
	}
}

func TestIngestAdLead_CreatesLead(t *testing.T) {
	graph := &fakeGraph{leadDetails: map[string]*LeadDetails{
		"lg-1": {
			ID:       "lg-1",
			FullName: "Carlos Peña",
			Email:    "Carlos@Example.com",
			Phone:    "+14155550123",
			Company:  "Peña Design",
		},
	}}
	service, client, cleanup := setupService(t, graph)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, service.IngestAdLead(ctx, "lg-1"))

	row, err := client.Lead.Query().Where(lead.MetaLeadID("lg-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Carlos Peña", row.Name)
	assert.Equal(t, "carlos@example.com", row.Email)
	assert.Equal(t, "Peña Design", row.Company)
	assert.Equal(t, "meta_ads", string(row.Source))
	assert.Equal(t, "contacted_1", string(row.Stage))

	// Import leaves a system activity behind
	count, err := client.Activity.Query().
		Where(activity.LeadID(row.ID), activity.KindEQ(activity.KindSystem)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestAdLead_RedeliveryIsNoop(t *testing.T) {
	graph := &fakeGraph{leadDetails: map[string]*LeadDetails{
		"lg-1": {ID: "lg-1", FullName: "Carlos Peña"},
	}}
	service, client, cleanup := setupService(t, graph)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, service.IngestAdLead(ctx, "lg-1"))
	require.NoError(t, service.IngestAdLead(ctx, "lg-1"))

	count, err := client.Lead.Query().Where(lead.MetaLeadID("lg-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestAdLead_MissingNameFallsBack(t *testing.T) {
	graph := &fakeGraph{leadDetails: map[string]*LeadDetails{
		"lg-2": {ID: "lg-2", Email: "anon@example.com"},
	}}
	service, client, cleanup := setupService(t, graph)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, service.IngestAdLead(ctx, "lg-2"))

	row, err := client.Lead.Query().Where(lead.MetaLeadID("lg-2")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Meta Lead lg-2", row.Name)
}

func TestIngestAdLead_GraphFailurePropagates(t *testing.T) {
	service, client, cleanup := setupService(t, &fakeGraph{err: errors.New("graph down")})
	defer cleanup()
	ctx := context.Background()

	require.Error(t, service.IngestAdLead(ctx, "lg-3"))

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngestMessage_NewInstagramSenderCreatesLead(t *testing.T) {
	graph := &fakeGraph{profiles: map[string]*Profile{
		"ig-99": {ID: "ig-99", Name: "Luisa Vega"},
	}}
	service, client, cleanup := setupService(t, graph)
	defer cleanup()
	ctx := context.Background()

	messaging := Messaging{
		Sender:  Principal{ID: "ig-99"},
		Message: &Message{MID: "mid-1", Text: "Hola! Vi su anuncio"},
	}
	require.NoError(t, service.IngestMessage(ctx, "instagram", messaging))

	row, err := client.Lead.Query().Where(lead.InstagramID("ig-99")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Luisa Vega", row.Name)
	assert.Equal(t, "instagram", string(row.Source))
	// An inbound DM is not outreach: a brand-new sender stays at the default
	// stage and gets no last_contacted stamp.
	assert.Equal(t, "contacted_1", string(row.Stage))
	assert.Nil(t, row.LastContacted)

	activities, err := client.Activity.Query().
		Where(activity.LeadID(row.ID), activity.KindEQ(activity.KindInstagramMessage)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Hola! Vi su anuncio", activities[0].Body)
}

func TestIngestMessage_ProfileFailureUsesPlaceholderName(t *testing.T) {
	service, client, cleanup := setupService(t, &fakeGraph{profiles: map[string]*Profile{}})
	defer cleanup()
	ctx := context.Background()

	messaging := Messaging{
		Sender:  Principal{ID: "fb-7"},
		Message: &Message{MID: "mid-2", Text: "hey"},
	}
	require.NoError(t, service.IngestMessage(ctx, "page", messaging))

	row, err := client.Lead.Query().Where(lead.FacebookID("fb-7")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Messenger user fb-7", row.Name)
}

func TestIngestMessage_KnownLeadInEarlyStageAdvances(t *testing.T) {
	service, client, cleanup := setupService(t, &fakeGraph{})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Luisa Vega").
		SetInstagramID("ig-99").
		SetSource("instagram").
		Save(ctx)
	require.NoError(t, err)

	messaging := Messaging{
		Sender:  Principal{ID: "ig-99"},
		Message: &Message{MID: "mid-3", Text: "Me interesa, cuentame mas"},
	}
	require.NoError(t, service.IngestMessage(ctx, "instagram", messaging))

	updated, err := client.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "interested", string(updated.Stage))
	assert.NotNil(t, updated.LastContacted)
}

func TestIngestMessage_LateStageLeadStaysPut(t *testing.T) {
	service, client, cleanup := setupService(t, &fakeGraph{})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Luisa Vega").
		SetInstagramID("ig-99").
		SetStage("onboarding_sent").
		Save(ctx)
	require.NoError(t, err)

	messaging := Messaging{
		Sender:  Principal{ID: "ig-99"},
		Message: &Message{MID: "mid-4", Text: "gracias!"},
	}
	require.NoError(t, service.IngestMessage(ctx, "instagram", messaging))

	updated, err := client.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "onboarding_sent", string(updated.Stage))
}

func TestIngestMessage_DuplicateDeliveryDropped(t *testing.T) {
	service, client, cleanup := setupService(t, &fakeGraph{})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Luisa Vega").
		SetInstagramID("ig-99").
		Save(ctx)
	require.NoError(t, err)

	messaging := Messaging{
		Sender:  Principal{ID: "ig-99"},
		Message: &Message{MID: "mid-dup", Text: "hola"},
	}
	require.NoError(t, service.IngestMessage(ctx, "instagram", messaging))
	require.NoError(t, service.IngestMessage(ctx, "instagram", messaging))

	count, err := client.Activity.Query().
		Where(activity.LeadID(row.ID)).
		Count(ctx)
	require.NoError(t, err)
	// One message activity plus the stage-change record from advancing
	assert.Equal(t, 2, count)
}

func TestIngestMessage_EmptyTextRecordsAttachment(t *testing.T) {
	service, client, cleanup := setupService(t, &fakeGraph{})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Luisa Vega").
		SetInstagramID("ig-99").
		SetStage("interested").
		Save(ctx)
	require.NoError(t, err)

	messaging := Messaging{
		Sender:  Principal{ID: "ig-99"},
		Message: &Message{MID: "mid-5"},
	}
	require.NoError(t, service.IngestMessage(ctx, "instagram", messaging))

	activities, err := client.Activity.Query().
		Where(activity.LeadID(row.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "(attachment)", activities[0].Body)
}

func TestHandleEvent_RoutesEntries(t *testing.T) {
	graph := &fakeGraph{
		leadDetails: map[string]*LeadDetails{
			"lg-1": {ID: "lg-1", FullName: "Carlos Peña"},
		},
		profiles: map[string]*Profile{
			"ig-99": {ID: "ig-99", Name: "Luisa Vega"},
		},
	}
	service, client, cleanup := setupService(t, graph)
	defer cleanup()
	ctx := context.Background()

	service.HandleEvent(ctx, &WebhookEvent{
		Object: "page",
		Entry: []Entry{
			{Changes: []Change{{Field: "leadgen", Value: ChangeValue{LeadgenID: "lg-1"}}}},
			// Echoes of our own outbound messages are ignored
			{Messaging: []Messaging{{
				Sender:  Principal{ID: "page-1"},
				Message: &Message{MID: "mid-echo", Text: "our reply", IsEcho: true},
			}}},
		},
	})

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
