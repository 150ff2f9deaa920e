package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"net/http"

	"github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/drafts"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// DraftHandler handles AI draft generation
type DraftHandler struct {
	draftService *drafts.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *drafts.Service, m *metrics.Metrics) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		metrics:      m,
		validator:    validator.New(),
	}
}

// Draft godoc
// @Summary Generate an email draft for a lead
// @Description Uses the business profile, lead details, and optional thread
// @Description history to draft an outreach or reply email.
// @Tags Drafts
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body models.DraftRequest true "Draft parameters"
// @Success 200 {object} models.DraftResponse "Generated draft"
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Failure 502 {object} models.ErrorResponse "AI service unavailable"
// @Router /drafts [post]
func (h *DraftHandler) Draft(c echo.Context) error {
	var req models.DraftRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	draft, err := h.draftService.Draft(c.Request().Context(), req.LeadID, req.ThreadID, req.Hint)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return errors.NotFoundError(c, "lead")
		}
		return errors.UpstreamError(c, "AI", err)
	}

	h.metrics.RecordDraftGenerated()
	return c.JSON(http.StatusOK, models.DraftResponse{Draft: draft})
}
