package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jfmartinez/leadpilot/pkg/api/errors"
	"github.com/jfmartinez/leadpilot/pkg/export"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles lead export downloads
type ExportHandler struct {
	exportService *export.Service
	validator     *validator.Validate
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		validator:     validator.New(),
	}
}

// Download godoc
// @Summary Download leads as a spreadsheet
// @Description Generates a CSV or Excel file of leads matching the filters.
// @Tags Export
// @Produce application/octet-stream
// @Security CookieAuth
// @Param format query string false "csv or excel" default(excel)
// @Param stage query string false "Stage filter"
// @Param source query string false "Source filter"
// @Param archived query boolean false "Archived filter"
// @Success 200 {file} file "Spreadsheet"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /leads/export [get]
func (h *ExportHandler) Download(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = "excel"
	}

	var filters models.LeadListRequest
	if err := c.Bind(&filters); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(filters); err != nil {
		return errors.ValidationError(c, err)
	}

	data, filename, err := h.exportService.Export(c.Request().Context(), format, filters)
	if err != nil {
		if format != "csv" && format != "excel" {
			return errors.ValidationError(c, err)
		}
		return errors.InternalError(c, err)
	}

	contentType := xlsxContentType
	if format == "csv" {
		contentType = "text/csv"
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}
