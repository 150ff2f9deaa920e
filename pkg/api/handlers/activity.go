package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	entactivity "github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/pkg/activity"
	"github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// ActivityHandler handles the per-lead activity log
type ActivityHandler struct {
	activityService *activity.Service
	validator       *validator.Validate
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *activity.Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		validator:       validator.New(),
	}
}

// List godoc
// @Summary List a lead's activity log
// @Tags Activities
// @Produce json
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Success 200 {array} models.ActivityResponse "Activities, newest first"
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Router /leads/{id}/activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	entries, err := h.activityService.ListByLead(c.Request().Context(), leadID)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return errors.NotFoundError(c, "lead")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Add a note to a lead
// @Tags Activities
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Param note body models.ActivityCreateRequest true "Note body"
// @Success 201 {object} models.ActivityResponse "Created note"
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Router /leads/{id}/activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.ActivityCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	created, err := h.activityService.Append(c.Request().Context(), leadID, entactivity.KindNote, req.Body)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return errors.NotFoundError(c, "lead")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.ActivityResponse{
		ID:        created.ID,
		LeadID:    created.LeadID,
		Kind:      string(created.Kind),
		Body:      created.Body,
		CreatedAt: created.CreatedAt,
	})
}
