package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// LeadHandler handles lead CRUD and pipeline endpoints
type LeadHandler struct {
	leadService      *leads.Service
	lifecycleService *lifecycle.Service
	metrics          *metrics.Metrics
	validator        *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *leads.Service, lifecycleService *lifecycle.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		leadService:      leadService,
		lifecycleService: lifecycleService,
		metrics:          m,
		validator:        validator.New(),
	}
}

// Create godoc
// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param lead body models.LeadCreateRequest true "Lead data"
// @Success 201 {object} models.LeadResponse "Created lead"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	var req models.LeadCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	created, err := h.leadService.Create(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	h.metrics.RecordLeadCreated(string(created.Source))
	return c.JSON(http.StatusCreated, leads.ToResponse(created))
}

// Get godoc
// @Summary Get a lead by ID
// @Tags Leads
// @Produce json
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Success 200 {object} models.LeadResponse "Lead"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	found, err := h.leadService.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return errors.NotFoundError(c, "lead")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, leads.ToResponse(found))
}

// List godoc
// @Summary List leads
// @Description Lists leads with optional stage, source, archived, and free-text filters.
// @Tags Leads
// @Produce json
// @Security CookieAuth
// @Param q query string false "Search over name, email, and company"
// @Param stage query string false "Stage filter"
// @Param source query string false "Source filter"
// @Param archived query boolean false "Archived filter"
// @Param page query integer false "Page number" default(1)
// @Param limit query integer false "Results per page" default(50)
// @Success 200 {object} models.LeadListResponse "Leads"
// @Router /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	results, err := h.leadService.List(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, results)
}

// Update godoc
// @Summary Update a lead
// @Description Applies a partial update. Stage changes derive the archived
// @Description flag and conversion timestamp unless archived is set explicitly.
// @Tags Leads
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Param lead body models.LeadUpdateRequest true "Fields to update"
// @Success 200 {object} models.LeadResponse "Updated lead"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /leads/{id} [patch]
func (h *LeadHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.LeadUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	changes := lifecycle.Changes{
		Name:                  req.Name,
		Email:                 req.Email,
		Company:               req.Company,
		Phone:                 req.Phone,
		Source:                req.Source,
		Owner:                 req.Owner,
		ConversionProbability: req.ConversionProbability,
		Revenue:               req.Revenue,
		Notes:                 req.Notes,
		Archived:              req.Archived,
		LastContacted:         req.LastContacted,
	}
	if req.Stage != nil {
		stage := lifecycle.Stage(*req.Stage)
		changes.Stage = &stage
	}

	updated, err := h.lifecycleService.Apply(c.Request().Context(), id, changes)
	if err != nil {
		if err == lifecycle.ErrNotFound {
			return errors.NotFoundError(c, "lead")
		}
		return errors.InternalError(c, err)
	}

	if req.Stage != nil {
		h.metrics.RecordStageChange(*req.Stage)
	}
	h.leadService.InvalidateStats(c.Request().Context())
	return c.JSON(http.StatusOK, leads.ToResponse(updated))
}

// Delete godoc
// @Summary Delete a lead
// @Tags Leads
// @Security CookieAuth
// @Param id path integer true "Lead ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.leadService.Delete(c.Request().Context(), id); err != nil {
		if err == lifecycle.ErrNotFound {
			return errors.NotFoundError(c, "lead")
		}
		return errors.InternalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Stats godoc
// @Summary Pipeline statistics
// @Description Aggregate counts by stage and source plus conversion totals.
// @Tags Leads
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.StatsResponse "Pipeline stats"
// @Router /leads/stats [get]
func (h *LeadHandler) Stats(c echo.Context) error {
	stats, err := h.leadService.Stats(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
