package drafts

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
	"github.com/jfmartinez/leadpilot/pkg/settings"
)

type fakeLLM struct {
	lastPrompt string
	lastSystem string
	reply      string
	err        error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	f.lastPrompt = prompt
	if len(systemPrompt) > 0 {
		f.lastSystem = systemPrompt[0]
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeThreads struct {
	messages []mailbox.Message
	err      error
}

func (f *fakeThreads) GetThread(ctx context.Context, threadID string) ([]mailbox.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.messages, nil
}

func setup(t *testing.T, llm LLM, threads Threads) (*Service, *ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	service := NewService(client, settings.NewService(client), llm, threads, "Sam Rivera")
	return service, client, func() { client.Close() }
}

func TestDraft_Outreach(t *testing.T) {
	llm := &fakeLLM{reply: "Hi Sofia, ..."}
	service, client, cleanup := setup(t, llm, &fakeThreads{})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		SetCompany("Reyes Floristeria").
		SetNotes("Wants weekly deliveries").
		Save(ctx)
	require.NoError(t, err)

	draft, err := service.Draft(ctx, row.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Hi Sofia, ...", draft)

	assert.Contains(t, llm.lastPrompt, "Sender name: Sam Rivera")
	assert.Contains(t, llm.lastPrompt, "Sofia Reyes")
	assert.Contains(t, llm.lastPrompt, "Reyes Floristeria")
	assert.Contains(t, llm.lastPrompt, "Wants weekly deliveries")
	assert.Contains(t, llm.lastPrompt, "first outreach email")
	assert.NotContains(t, llm.lastPrompt, "Conversation so far")
	assert.NotEmpty(t, llm.lastSystem)
}

func TestDraft_ReplyIncludesThread(t *testing.T) {
	llm := &fakeLLM{reply: "Thanks for getting back to me"}
	threads := &fakeThreads{messages: []mailbox.Message{
		{From: "sam@leadpilot.app", Body: "Reaching out about your shop"},
		{From: "sofia@example.com", Body: "Tell me more about pricing"},
	}}
	service, client, cleanup := setup(t, llm, threads)
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = service.Draft(ctx, row.ID, "thread-1", "keep it short")
	require.NoError(t, err)

	assert.Contains(t, llm.lastPrompt, "Conversation so far")
	assert.Contains(t, llm.lastPrompt, "Tell me more about pricing")
	assert.Contains(t, llm.lastPrompt, "keep it short")
	assert.Contains(t, llm.lastPrompt, "Write a reply")
}

func TestDraft_ThreadFailureDegrades(t *testing.T) {
	llm := &fakeLLM{reply: "draft"}
	service, client, cleanup := setup(t, llm, &fakeThreads{err: errors.New("gmail down")})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = service.Draft(ctx, row.ID, "thread-1", "")
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "Conversation history unavailable")
}

func TestDraft_IncludesBusinessProfile(t *testing.T) {
	llm := &fakeLLM{reply: "draft"}
	service, client, cleanup := setup(t, llm, &fakeThreads{})
	defer cleanup()
	ctx := context.Background()

	settingsService := settings.NewService(client)
	require.NoError(t, settingsService.Put(ctx, settings.KeyBusinessProfile, map[string]interface{}{
		"company": "LeadPilot Studio",
		"tone":    "warm and direct",
	}))

	row, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = service.Draft(ctx, row.ID, "", "")
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "LeadPilot Studio")
	assert.Contains(t, llm.lastPrompt, "warm and direct")
}

func TestDraft_LeadNotFound(t *testing.T) {
	service, _, cleanup := setup(t, &fakeLLM{}, &fakeThreads{})
	defer cleanup()

	_, err := service.Draft(context.Background(), 404, "", "")
	assert.ErrorIs(t, err, lifecycle.ErrNotFound)
}

func TestDraft_LLMFailurePropagates(t *testing.T) {
	service, client, cleanup := setup(t, &fakeLLM{err: errors.New("rate limited")}, &fakeThreads{})
	defer cleanup()
	ctx := context.Background()

	row, err := client.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = service.Draft(ctx, row.ID, "", "")
	assert.Error(t, err)
}
