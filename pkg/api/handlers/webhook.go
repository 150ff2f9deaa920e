package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/social"
)

// WebhookHandler handles Meta webhook verification and event delivery
type WebhookHandler struct {
	socialService *social.Service
	metrics       *metrics.Metrics
	verifyToken   string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(socialService *social.Service, m *metrics.Metrics, verifyToken string) *WebhookHandler {
	return &WebhookHandler{
		socialService: socialService,
		metrics:       m,
		verifyToken:   verifyToken,
	}
}

// Verify godoc
// @Summary Meta webhook verification
// @Description Echoes hub.challenge when the verify token matches. Meta calls
// @Description this once when the webhook subscription is created.
// @Tags Webhooks
// @Produce plain
// @Param hub.mode query string true "Subscription mode"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string "Challenge"
// @Failure 403 {object} models.ErrorResponse "Token mismatch"
// @Router /webhooks/meta [get]
func (h *WebhookHandler) Verify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode != "subscribe" || subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) != 1 {
		log.Printf("⚠️ Webhook verification rejected (mode=%s)", mode)
		return c.NoContent(http.StatusForbidden)
	}

	return c.String(http.StatusOK, challenge)
}

// Receive godoc
// @Summary Meta webhook event delivery
// @Description Accepts Lead Ads and DM events. Always returns 200 so Meta does
// @Description not disable the subscription; ingestion failures are logged.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {string} string "EVENT_RECEIVED"
// @Router /webhooks/meta [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	var event social.WebhookEvent
	if err := c.Bind(&event); err != nil {
		log.Printf("⚠️ Unparseable webhook payload: %v", err)
		return c.String(http.StatusOK, "EVENT_RECEIVED")
	}

	h.metrics.RecordWebhookEvent(event.Object)
	h.socialService.HandleEvent(c.Request().Context(), &event)

	return c.String(http.StatusOK, "EVENT_RECEIVED")
}
