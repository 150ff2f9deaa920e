package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent"
	entactivity "github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/enttest"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
)

// fakeMailbox responds per sender address and records sent messages.
type fakeMailbox struct {
	messagesByQuery map[string][]mailbox.Message
	listErrByQuery  map[string]error
	tokenErr        error
	sendErr         error
	sent            []mailbox.SendRequest
}

func (f *fakeMailbox) ListMessages(ctx context.Context, query string, maxResults int) ([]mailbox.Message, error) {
	if err := f.listErrByQuery[query]; err != nil {
		return nil, err
	}
	return f.messagesByQuery[query], nil
}

func (f *fakeMailbox) SendMessage(ctx context.Context, req mailbox.SendRequest) (*mailbox.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, req)
	return &mailbox.Message{ID: "sent-1", To: req.To, Subject: req.Subject}, nil
}

func (f *fakeMailbox) EnsureFreshToken(ctx context.Context) error {
	return f.tokenErr
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createCandidate(t *testing.T, client *ent.Client, email string, lastContacted time.Time) *ent.Lead {
	row, err := client.Lead.Create().
		SetName("Candidate " + email).
		SetEmail(email).
		SetLastContacted(lastContacted).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func newService(client *ent.Client, mb Mailbox) *Service {
	return NewService(client, lifecycle.NewService(client), mb)
}

func TestCheckResponses_AdvancesOnNewerMessage(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	contacted := time.Now().Add(-72 * time.Hour)
	row := createCandidate(t, client, "ana@example.com", contacted)

	mb := &fakeMailbox{
		messagesByQuery: map[string][]mailbox.Message{
			"from:ana@example.com": {
				{ID: "m1", From: "ana@example.com", Date: contacted.Add(time.Hour)},
			},
		},
	}
	service := newService(client, mb)

	report, err := service.CheckResponses(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Considered)
	assert.Equal(t, 1, report.Advanced)
	assert.Zero(t, report.Failed)
	assert.Equal(t, []int{row.ID}, report.AdvancedIDs)

	updated, err := client.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "interested", string(updated.Stage))
	assert.False(t, updated.Archived)
}

func TestCheckResponses_OlderMessageDoesNotAdvance(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	contacted := time.Now().Add(-24 * time.Hour)
	row := createCandidate(t, client, "ana@example.com", contacted)

	mb := &fakeMailbox{
		messagesByQuery: map[string][]mailbox.Message{
			// Reply predates the outreach, so it answers an older thread.
			"from:ana@example.com": {
				{ID: "m1", From: "ana@example.com", Date: contacted.Add(-time.Hour)},
			},
		},
	}
	service := newService(client, mb)

	report, err := service.CheckResponses(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Considered)
	assert.Zero(t, report.Advanced)

	updated, err := client.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted_1", string(updated.Stage))
}

func TestCheckResponses_PerLeadFailureSkipsAndCounts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	contacted := time.Now().Add(-72 * time.Hour)
	createCandidate(t, client, "broken@example.com", contacted)
	healthy := createCandidate(t, client, "ana@example.com", contacted)

	mb := &fakeMailbox{
		messagesByQuery: map[string][]mailbox.Message{
			"from:ana@example.com": {
				{ID: "m1", From: "ana@example.com", Date: contacted.Add(time.Hour)},
			},
		},
		listErrByQuery: map[string]error{
			"from:broken@example.com": errors.New("upstream 500"),
		},
	}
	service := newService(client, mb)

	report, err := service.CheckResponses(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Considered)
	assert.Equal(t, 1, report.Advanced)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []int{healthy.ID}, report.AdvancedIDs)
}

func TestCheckResponses_SingleLeadNarrowing(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	contacted := time.Now().Add(-72 * time.Hour)
	target := createCandidate(t, client, "ana@example.com", contacted)
	createCandidate(t, client, "other@example.com", contacted)

	mb := &fakeMailbox{
		messagesByQuery: map[string][]mailbox.Message{
			"from:ana@example.com": {
				{ID: "m1", From: "ana@example.com", Date: contacted.Add(time.Hour)},
			},
			"from:other@example.com": {
				{ID: "m2", From: "other@example.com", Date: contacted.Add(time.Hour)},
			},
		},
	}
	service := newService(client, mb)

	report, err := service.CheckResponses(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Considered)
	assert.Equal(t, []int{target.ID}, report.AdvancedIDs)
}

func TestCheckResponses_SkipsNonCandidates(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// Wrong stage
	_, err := client.Lead.Create().
		SetName("Interested Already").
		SetEmail("in@example.com").
		SetStage("interested").
		SetLastContacted(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Never contacted
	_, err = client.Lead.Create().
		SetName("Fresh Lead").
		SetEmail("fresh@example.com").
		Save(ctx)
	require.NoError(t, err)

	// Archived
	_, err = client.Lead.Create().
		SetName("Archived Lead").
		SetEmail("archived@example.com").
		SetArchived(true).
		SetLastContacted(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	service := newService(client, &fakeMailbox{})

	report, err := service.CheckResponses(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, report.Considered)
}

func TestRunFollowups_SendsAndAdvancesStage(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	silent := createCandidate(t, client, "silent@example.com", time.Now().Add(-72*time.Hour))
	responded := createCandidate(t, client, "replied@example.com", time.Now().Add(-72*time.Hour))
	// Contacted too recently for a follow-up
	recent := createCandidate(t, client, "recent@example.com", time.Now().Add(-2*time.Hour))

	mb := &fakeMailbox{
		messagesByQuery: map[string][]mailbox.Message{
			"from:replied@example.com": {
				{ID: "m1", From: "replied@example.com", Date: time.Now().Add(-time.Hour)},
			},
		},
	}
	service := newService(client, mb)

	report, err := service.RunFollowups(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Considered)
	assert.Equal(t, 1, report.Advanced)
	assert.Equal(t, 1, report.FollowedUp)
	assert.Zero(t, report.Failed)

	require.Len(t, mb.sent, 1)
	assert.Equal(t, "silent@example.com", mb.sent[0].To)

	silentRow, err := client.Lead.Get(ctx, silent.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted_2", string(silentRow.Stage))
	require.NotNil(t, silentRow.LastContacted)
	assert.WithinDuration(t, time.Now(), *silentRow.LastContacted, 10*time.Second)

	respondedRow, err := client.Lead.Get(ctx, responded.ID)
	require.NoError(t, err)
	assert.Equal(t, "interested", string(respondedRow.Stage))

	recentRow, err := client.Lead.Get(ctx, recent.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted_1", string(recentRow.Stage))

	// Follow-up leaves an outbound email activity behind
	count, err := client.Activity.Query().
		Where(entactivity.LeadID(silent.ID), entactivity.KindEQ(entactivity.KindEmailOut)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunFollowups_StaleTokenAbortsBatch(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	createCandidate(t, client, "silent@example.com", time.Now().Add(-72*time.Hour))

	mb := &fakeMailbox{tokenErr: errors.New("refresh failed")}
	service := newService(client, mb)

	_, err := service.RunFollowups(ctx)
	require.Error(t, err)
	assert.Empty(t, mb.sent)
}

func TestRunFollowups_SendFailureCountsAsFailed(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	row := createCandidate(t, client, "silent@example.com", time.Now().Add(-72*time.Hour))

	mb := &fakeMailbox{sendErr: errors.New("smtp down")}
	service := newService(client, mb)

	report, err := service.RunFollowups(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Zero(t, report.FollowedUp)

	// Failed send must not move the stage
	updated, err := client.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted_1", string(updated.Stage))
}
