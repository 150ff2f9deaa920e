package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/user"
	"github.com/jfmartinez/leadpilot/pkg/api/errors"
	apimiddleware "github.com/jfmartinez/leadpilot/pkg/api/middleware"
	"github.com/jfmartinez/leadpilot/pkg/auth"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// AuthHandler handles login and session endpoints
type AuthHandler struct {
	db              *ent.Client
	blacklist       *auth.TokenBlacklist
	metrics         *metrics.Metrics
	validator       *validator.Validate
	jwtSecret       string
	expirationHours int
	secureCookies   bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, blacklist *auth.TokenBlacklist, m *metrics.Metrics, jwtSecret string, expirationHours int, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		db:              db,
		blacklist:       blacklist,
		metrics:         m,
		validator:       validator.New(),
		jwtSecret:       jwtSecret,
		expirationHours: expirationHours,
		secureCookies:   secureCookies,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Validates credentials and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.UserResponse "Authenticated user"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	account, err := h.db.User.Query().Where(user.Email(email)).Only(c.Request().Context())
	if err != nil {
		if ent.IsNotFound(err) {
			h.metrics.RecordLoginAttempt(false)
			return errors.UnauthorizedError(c)
		}
		return errors.InternalError(c, err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		h.metrics.RecordLoginAttempt(false)
		return errors.UnauthorizedError(c)
	}

	token, err := auth.GenerateJWT(account.ID, account.Email, h.jwtSecret, h.expirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.expirationHours) * time.Hour),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.metrics.RecordLoginAttempt(true)
	return c.JSON(http.StatusOK, models.UserResponse{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session token and clears the cookie.
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := c.Get("token").(string); ok && token != "" && h.blacklist != nil {
		expiration := time.Duration(h.expirationHours) * time.Hour
		if err := h.blacklist.Add(c.Request().Context(), token, expiration); err != nil {
			return errors.InternalError(c, err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}

// Me godoc
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.UserResponse "Authenticated user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	account, err := h.db.User.Get(c.Request().Context(), userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.UnauthorizedError(c)
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.UserResponse{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	})
}
