package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	apierrors "github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/oauth"
)

const oauthStateCookie = "leadpilot_oauth_state"

// OAuthHandler handles the Gmail connect flow
type OAuthHandler struct {
	oauthService *oauth.Service
	frontendURL  string
	secure       bool
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(oauthService *oauth.Service, frontendURL string, secure bool) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
		frontendURL:  frontendURL,
		secure:       secure,
	}
}

// Connect godoc
// @Summary Start the Gmail connect flow
// @Description Redirects to the Google consent screen for the shared mailbox.
// @Tags Email
// @Security CookieAuth
// @Success 302 "Redirect to Google"
// @Router /gmail/connect [get]
func (h *OAuthHandler) Connect(c echo.Context) error {
	state, err := randomState()
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.oauthService.AuthURL(state))
}

// Callback godoc
// @Summary Gmail OAuth callback
// @Description Exchanges the authorization code and stores the mailbox tokens.
// @Tags Email
// @Success 302 "Redirect to frontend settings page"
// @Router /gmail/callback [get]
func (h *OAuthHandler) Callback(c echo.Context) error {
	if errParam := c.QueryParam("error"); errParam != "" {
		log.Printf("⚠️ Gmail connect denied: %s", errParam)
		return c.Redirect(http.StatusFound, h.frontendURL+"/settings?gmail=denied")
	}

	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
		return apierrors.UnauthorizedError(c)
	}
	h.clearStateCookie(c)

	code := c.QueryParam("code")
	if code == "" {
		return apierrors.ValidationError(c, oauth.ErrInvalidCode)
	}

	email, err := h.oauthService.HandleCallback(c.Request().Context(), code)
	if err != nil {
		log.Printf("❌ Gmail connect failed: %v", err)
		return c.Redirect(http.StatusFound, h.frontendURL+"/settings?gmail=error")
	}

	log.Printf("✅ Gmail connected: %s", email)
	return c.Redirect(http.StatusFound, h.frontendURL+"/settings?gmail=connected&email="+url.QueryEscape(email))
}

// Disconnect godoc
// @Summary Disconnect Gmail
// @Description Removes the stored mailbox tokens.
// @Tags Email
// @Security CookieAuth
// @Success 204 "Disconnected"
// @Router /gmail/disconnect [delete]
func (h *OAuthHandler) Disconnect(c echo.Context) error {
	if err := h.oauthService.Disconnect(c.Request().Context()); err != nil {
		return apierrors.InternalError(c, err)
	}
	log.Println("🔌 Gmail disconnected")
	return c.NoContent(http.StatusNoContent)
}

func (h *OAuthHandler) clearStateCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
