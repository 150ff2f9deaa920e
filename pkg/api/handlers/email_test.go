package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entactivity "github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/pkg/activity"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
	"github.com/jfmartinez/leadpilot/pkg/settings"
)

// newEmailHandler wires a handler against a local Gmail API stub that accepts
// every send.
func newEmailHandler(t *testing.T, env *testEnv) (*EmailHandler, *httptest.Server) {
	t.Helper()

	gmail := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/users/me/messages/send") {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"m1","threadId":"t1"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	settingsService := settings.NewService(env.db)
	require.NoError(t, settingsService.SaveGmailTokens(context.Background(), settings.GmailTokens{
		AccessToken:  "valid-token",
		RefreshToken: "refresh-token",
		ExpiryDate:   time.Now().Add(time.Hour).UnixMilli(),
		Email:        "owner@example.com",
	}))

	mb := mailbox.NewClient(mailbox.Config{BaseURL: gmail.URL, TokenURL: gmail.URL + "/token"}, settingsService)
	handler := NewEmailHandler(mb, leads.NewService(env.db, env.cache), lifecycle.NewService(env.db), activity.NewService(env.db), testMetrics)
	return handler, gmail
}

func doSend(t *testing.T, handler *EmailHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/emails/send", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler.Send(c))
	return rec
}

func TestEmailSend_ContactedLeadKeepsStage(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler, gmail := newEmailHandler(t, env)
	defer gmail.Close()
	ctx := context.Background()

	contacted := time.Now().Add(-24 * time.Hour)
	row, err := env.db.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		SetLastContacted(contacted).
		Save(ctx)
	require.NoError(t, err)
	require.Equal(t, "contacted_1", string(row.Stage))

	rec := doSend(t, handler, `{"lead_id":`+strconv.Itoa(row.ID)+`,"subject":"Quick question","body":"Hi Sofia"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	after, err := env.db.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted_1", string(after.Stage))
	require.NotNil(t, after.LastContacted)
	assert.True(t, after.LastContacted.After(contacted))

	count, err := env.db.Activity.Query().
		Where(entactivity.KindEQ(entactivity.KindEmailOut)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEmailSend_FirstOutreachStampsContact(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler, gmail := newEmailHandler(t, env)
	defer gmail.Close()
	ctx := context.Background()

	row, err := env.db.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		SetStage("on_hold").
		Save(ctx)
	require.NoError(t, err)
	require.Nil(t, row.LastContacted)

	rec := doSend(t, handler, `{"lead_id":`+strconv.Itoa(row.ID)+`,"subject":"Hello","body":"First note"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	after, err := env.db.Lead.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted_1", string(after.Stage))
	assert.NotNil(t, after.LastContacted)
}
