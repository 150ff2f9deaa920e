package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apierrors "github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/models"
	"github.com/jfmartinez/leadpilot/pkg/sweep"
)

// SweepHandler handles response detection and follow-up endpoints
type SweepHandler struct {
	sweepService *sweep.Service
	metrics      *metrics.Metrics
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler(sweepService *sweep.Service, m *metrics.Metrics) *SweepHandler {
	return &SweepHandler{
		sweepService: sweepService,
		metrics:      m,
	}
}

// CheckResponse godoc
// @Summary Check one lead for an email response
// @Description Looks for mailbox messages from the lead newer than its last
// @Description contact and advances it to interested when one is found.
// @Tags Sweep
// @Produce json
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Success 200 {object} models.SweepResponse "Sweep result"
// @Failure 412 {object} models.ErrorResponse "Gmail not connected"
// @Router /leads/{id}/check-response [post]
func (h *SweepHandler) CheckResponse(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	report, err := h.sweepService.CheckResponses(c.Request().Context(), leadID)
	if err != nil {
		if errors.Is(err, mailbox.ErrNotConnected) {
			return apierrors.NotConnectedError(c)
		}
		return apierrors.InternalError(c, err)
	}

	h.metrics.RecordSweep(report.Advanced)
	return c.JSON(http.StatusOK, toSweepResponse(report))
}

// SweepResponses godoc
// @Summary Sweep all candidate leads for email responses
// @Tags Sweep
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.SweepResponse "Sweep result"
// @Failure 412 {object} models.ErrorResponse "Gmail not connected"
// @Router /sweep/responses [post]
func (h *SweepHandler) SweepResponses(c echo.Context) error {
	report, err := h.sweepService.CheckResponses(c.Request().Context(), 0)
	if err != nil {
		if errors.Is(err, mailbox.ErrNotConnected) {
			return apierrors.NotConnectedError(c)
		}
		return apierrors.InternalError(c, err)
	}

	h.metrics.RecordSweep(report.Advanced)
	return c.JSON(http.StatusOK, toSweepResponse(report))
}

// RunFollowups godoc
// @Summary Run the follow-up batch
// @Description Invoked by the scheduler. Leads stuck in contacted_1 past the
// @Description follow-up window either advance (they responded) or get a
// @Description follow-up email and move to contacted_2.
// @Tags Sweep
// @Produce json
// @Success 200 {object} models.FollowupResponse "Batch result"
// @Failure 412 {object} models.ErrorResponse "Gmail not connected"
// @Router /cron/followups [post]
func (h *SweepHandler) RunFollowups(c echo.Context) error {
	report, err := h.sweepService.RunFollowups(c.Request().Context())
	if err != nil {
		if errors.Is(err, mailbox.ErrNotConnected) {
			return apierrors.NotConnectedError(c)
		}
		return apierrors.InternalError(c, err)
	}

	h.metrics.RecordSweep(report.Advanced)
	h.metrics.RecordFollowups(report.FollowedUp)
	return c.JSON(http.StatusOK, models.FollowupResponse{
		Considered:  report.Considered,
		Advanced:    report.Advanced,
		FollowedUp:  report.FollowedUp,
		Failed:      report.Failed,
		AdvancedIDs: report.AdvancedIDs,
	})
}

func toSweepResponse(report *sweep.Report) models.SweepResponse {
	return models.SweepResponse{
		Considered:  report.Considered,
		Advanced:    report.Advanced,
		Failed:      report.Failed,
		AdvancedIDs: report.AdvancedIDs,
	}
}
