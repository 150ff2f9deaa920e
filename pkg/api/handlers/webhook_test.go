package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/social"
)

const testVerifyToken = "verify-me"

type stubGraph struct {
	leadDetails map[string]*social.LeadDetails
	profiles    map[string]*social.Profile
}

func (g *stubGraph) GetLeadDetails(_ context.Context, leadgenID string) (*social.LeadDetails, error) {
	if d, ok := g.leadDetails[leadgenID]; ok {
		return d, nil
	}
	return nil, errors.New("leadgen not found")
}

func (g *stubGraph) GetProfile(_ context.Context, userID string) (*social.Profile, error) {
	if p, ok := g.profiles[userID]; ok {
		return p, nil
	}
	return nil, errors.New("profile not found")
}

func newWebhookHandler(env *testEnv, graph social.Graph) *WebhookHandler {
	socialService := social.NewService(env.db, env.cache, graph, lifecycle.NewService(env.db), leads.NewService(env.db, env.cache))
	return NewWebhookHandler(socialService, testMetrics, testVerifyToken)
}

func TestWebhookVerify(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newWebhookHandler(env, &stubGraph{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/webhooks/meta?hub.mode=subscribe&hub.verify_token="+testVerifyToken+"&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Verify(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12345", rec.Body.String())
}

func TestWebhookVerify_WrongToken(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newWebhookHandler(env, &stubGraph{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/webhooks/meta?hub.mode=subscribe&hub.verify_token=guess&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Verify(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookReceive_Leadgen(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	graph := &stubGraph{leadDetails: map[string]*social.LeadDetails{
		"lg-1": {ID: "lg-1", FullName: "Sofia Reyes", Email: "sofia@example.com", Company: "Reyes Floristeria"},
	}}
	handler := newWebhookHandler(env, graph)

	body := `{"object":"page","entry":[{"id":"pg-1","changes":[{"field":"leadgen","value":{"leadgen_id":"lg-1","page_id":"pg-1"}}]}]}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/meta", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Receive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EVENT_RECEIVED", rec.Body.String())

	row, err := env.db.Lead.Query().Where(lead.MetaLeadID("lg-1")).Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sofia Reyes", row.Name)
	assert.Equal(t, lead.SourceMetaAds, row.Source)
}

func TestWebhookReceive_MalformedBody(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newWebhookHandler(env, &stubGraph{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/meta", strings.NewReader(`{"object":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Receive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EVENT_RECEIVED", rec.Body.String())
}
