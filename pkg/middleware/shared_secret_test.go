package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSharedSecret(t *testing.T, secret string, setup func(req *http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/cron/followups", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SharedSecret(secret)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestSharedSecret_Header(t *testing.T) {
	rec := runSharedSecret(t, "s3cret", func(req *http.Request) {
		req.Header.Set("X-Cron-Secret", "s3cret")
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSharedSecret_QueryParam(t *testing.T) {
	rec := runSharedSecret(t, "s3cret", func(req *http.Request) {
		req.URL.RawQuery = "secret=s3cret"
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSharedSecret_WrongSecret(t *testing.T) {
	rec := runSharedSecret(t, "s3cret", func(req *http.Request) {
		req.Header.Set("X-Cron-Secret", "guess")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSharedSecret_Missing(t *testing.T) {
	rec := runSharedSecret(t, "s3cret", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSharedSecret_NotConfigured(t *testing.T) {
	rec := runSharedSecret(t, "", func(req *http.Request) {
		req.Header.Set("X-Cron-Secret", "anything")
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
