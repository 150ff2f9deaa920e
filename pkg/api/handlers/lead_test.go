package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

func newLeadHandler(env *testEnv) *LeadHandler {
	leadService := leads.NewService(env.db, env.cache)
	return NewLeadHandler(leadService, lifecycle.NewService(env.db), testMetrics)
}

func TestLeadCreate(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)

	body := `{"name":"Sofia Reyes","email":"Sofia@Example.com","company":"Reyes Floristeria","source":"referral"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sofia Reyes", resp.Name)
	assert.Equal(t, "sofia@example.com", resp.Email)
	assert.Equal(t, "contacted_1", resp.Stage)
	assert.Equal(t, "referral", resp.Source)
}

func TestLeadCreate_InvalidStage(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)

	body := `{"name":"Sofia Reyes","email":"sofia@example.com","stage":"pending"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadGet_NotFound(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/leads/:id")
	c.SetParamNames("id")
	c.SetParamValues("404")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadUpdate_StageChange(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)

	row, err := env.db.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"stage":"not_interested"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/leads/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_interested", resp.Stage)
	assert.True(t, resp.Archived)
}

func TestLeadDelete(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)

	row, err := env.db.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/leads/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	count, err := env.db.Lead.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLeadList_Filter(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)
	ctx := context.Background()

	_, err := env.db.Lead.Create().
		SetName("Interested Lead").
		SetEmail("in@example.com").
		SetStage("interested").
		Save(ctx)
	require.NoError(t, err)
	_, err = env.db.Lead.Create().
		SetName("Fresh Lead").
		SetEmail("fresh@example.com").
		Save(ctx)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads?stage=interested", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Interested Lead", resp.Data[0].Name)
}

func TestLeadStats(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	handler := newLeadHandler(env)

	_, err := env.db.Lead.Create().
		SetName("Sofia Reyes").
		SetEmail("sofia@example.com").
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
}
