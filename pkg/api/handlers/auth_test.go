package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apimiddleware "github.com/jfmartinez/leadpilot/pkg/api/middleware"
	"github.com/jfmartinez/leadpilot/pkg/auth"
)

const testJWTSecret = "test-secret"

func createTestUser(t *testing.T, env *testEnv, email, password string) int {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	account, err := env.db.User.Create().
		SetEmail(email).
		SetName("Sam Rivera").
		SetPasswordHash(hash).
		Save(context.Background())
	require.NoError(t, err)
	return account.ID
}

func newAuthHandler(env *testEnv) *AuthHandler {
	return NewAuthHandler(env.db, auth.NewTokenBlacklist(env.cache), testMetrics, testJWTSecret, 1, false)
}

func doLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	return rec
}

func TestLogin_Success(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	createTestUser(t, env, "sam@leadpilot.app", "correct-horse")

	handler := newAuthHandler(env)
	rec := doLogin(t, handler, `{"email":"Sam@LeadPilot.app","password":"correct-horse"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sam@leadpilot.app")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	session := cookies[0]
	assert.Equal(t, apimiddleware.SessionCookieName, session.Name)
	assert.True(t, session.HttpOnly)
	assert.NotEmpty(t, session.Value)

	claims, err := auth.ValidateJWT(session.Value, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "sam@leadpilot.app", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	createTestUser(t, env, "sam@leadpilot.app", "correct-horse")

	handler := newAuthHandler(env)
	rec := doLogin(t, handler, `{"email":"sam@leadpilot.app","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_UnknownEmail(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	handler := newAuthHandler(env)
	rec := doLogin(t, handler, `{"email":"nobody@leadpilot.app","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidPayload(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	handler := newAuthHandler(env)
	rec := doLogin(t, handler, `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	userID := createTestUser(t, env, "sam@leadpilot.app", "correct-horse")

	blacklist := auth.NewTokenBlacklist(env.cache)
	handler := NewAuthHandler(env.db, blacklist, testMetrics, testJWTSecret, 1, false)

	token, err := auth.GenerateJWT(userID, "sam@leadpilot.app", testJWTSecret, 1)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", token)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	revoked, err := blacklist.IsBlacklisted(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Cookie cleared
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestMe(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()
	userID := createTestUser(t, env, "sam@leadpilot.app", "correct-horse")

	handler := newAuthHandler(env)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sam@leadpilot.app")
}

func TestMe_NoSession(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	handler := newAuthHandler(env)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
