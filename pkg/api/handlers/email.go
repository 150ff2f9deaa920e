package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	entactivity "github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/pkg/activity"
	apierrors "github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// EmailHandler handles mailbox endpoints: conversation history and sending
type EmailHandler struct {
	mailbox          *mailbox.Client
	leadService      *leads.Service
	lifecycleService *lifecycle.Service
	activityService  *activity.Service
	metrics          *metrics.Metrics
	validator        *validator.Validate
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(mb *mailbox.Client, leadService *leads.Service, lifecycleService *lifecycle.Service, activityService *activity.Service, m *metrics.Metrics) *EmailHandler {
	return &EmailHandler{
		mailbox:          mb,
		leadService:      leadService,
		lifecycleService: lifecycleService,
		activityService:  activityService,
		metrics:          m,
		validator:        validator.New(),
	}
}

// Status godoc
// @Summary Gmail connection status
// @Tags Email
// @Produce json
// @Security CookieAuth
// @Success 200 {object} map[string]bool "Connection status"
// @Router /gmail/status [get]
func (h *EmailHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{
		"connected": h.mailbox.Connected(c.Request().Context()),
	})
}

// Conversation godoc
// @Summary Email conversation with a lead
// @Description Fetches recent messages exchanged with the lead's email address.
// @Tags Email
// @Produce json
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Success 200 {array} mailbox.Message "Messages"
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Failure 412 {object} models.ErrorResponse "Gmail not connected"
// @Router /leads/{id}/emails [get]
func (h *EmailHandler) Conversation(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	found, err := h.leadService.GetByID(c.Request().Context(), leadID)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return apierrors.NotFoundError(c, "lead")
		}
		return apierrors.InternalError(c, err)
	}
	if found.Email == "" {
		return c.JSON(http.StatusOK, []mailbox.Message{})
	}

	query := fmt.Sprintf("from:%s OR to:%s", found.Email, found.Email)
	messages, err := h.mailbox.ListMessages(c.Request().Context(), query, 20)
	if err != nil {
		if errors.Is(err, mailbox.ErrNotConnected) {
			return apierrors.NotConnectedError(c)
		}
		return apierrors.UpstreamError(c, "Gmail", err)
	}

	return c.JSON(http.StatusOK, messages)
}

// Thread godoc
// @Summary Fetch one Gmail thread
// @Tags Email
// @Produce json
// @Security CookieAuth
// @Param threadId path string true "Gmail thread ID"
// @Success 200 {array} mailbox.Message "Thread messages, oldest first"
// @Failure 412 {object} models.ErrorResponse "Gmail not connected"
// @Router /gmail/threads/{threadId} [get]
func (h *EmailHandler) Thread(c echo.Context) error {
	threadID := c.Param("threadId")
	if threadID == "" {
		return apierrors.ValidationError(c, fmt.Errorf("missing thread id"))
	}

	messages, err := h.mailbox.GetThread(c.Request().Context(), threadID)
	if err != nil {
		if errors.Is(err, mailbox.ErrNotConnected) {
			return apierrors.NotConnectedError(c)
		}
		return apierrors.UpstreamError(c, "Gmail", err)
	}

	return c.JSON(http.StatusOK, messages)
}

// Send godoc
// @Summary Send an email to a lead
// @Description Sends via the connected mailbox, stamps last_contacted, and logs
// @Description the message on the lead's activity feed. A first outreach moves
// @Description the lead into contacted_1; later promotions belong to the
// @Description follow-up job.
// @Tags Email
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param email body models.SendEmailRequest true "Email to send"
// @Success 200 {object} mailbox.Message "Sent message"
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Failure 412 {object} models.ErrorResponse "Gmail not connected"
// @Router /emails/send [post]
func (h *EmailHandler) Send(c echo.Context) error {
	var req models.SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	found, err := h.leadService.GetByID(ctx, req.LeadID)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return apierrors.NotFoundError(c, "lead")
		}
		return apierrors.InternalError(c, err)
	}
	if found.Email == "" {
		return apierrors.ValidationError(c, fmt.Errorf("lead %d has no email address", found.ID))
	}

	sent, err := h.mailbox.SendMessage(ctx, mailbox.SendRequest{
		To:        found.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		ThreadID:  req.ThreadID,
		InReplyTo: req.InReplyTo,
	})
	if err != nil {
		if errors.Is(err, mailbox.ErrNotConnected) {
			return apierrors.NotConnectedError(c)
		}
		return apierrors.UpstreamError(c, "Gmail", err)
	}

	now := time.Now()
	changes := lifecycle.Changes{LastContacted: &now}
	if found.LastContacted == nil {
		// First outreach. The contacted_1 to contacted_2 promotion is owned
		// by the follow-up job, never by a manual send.
		first := lifecycle.StageContacted1
		changes.Stage = &first
	}
	if _, err := h.lifecycleService.Apply(ctx, found.ID, changes); err != nil {
		// The email went out; a bookkeeping failure should not fail the call.
		c.Logger().Errorf("failed to update lead %d after send: %v", found.ID, err)
	}

	body := fmt.Sprintf("Sent email: %s", req.Subject)
	if _, err := h.activityService.Append(ctx, found.ID, entactivity.KindEmailOut, body); err != nil {
		c.Logger().Errorf("failed to record email activity for lead %d: %v", found.ID, err)
	}

	h.metrics.RecordEmailSent()
	h.leadService.InvalidateStats(ctx)
	return c.JSON(http.StatusOK, sent)
}
