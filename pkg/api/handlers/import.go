package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/jfmartinez/leadpilot/pkg/api/errors"
	importpkg "github.com/jfmartinez/leadpilot/pkg/import"
)

// ImportHandler handles bulk lead import
type ImportHandler struct {
	importService *importpkg.Service
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService *importpkg.Service) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Upload godoc
// @Summary Import leads from CSV
// @Description Bulk-creates leads from an uploaded CSV file. Required columns: name, email. Rows with an existing email are skipped.
// @Tags Leads
// @Accept multipart/form-data
// @Produce json
// @Security CookieAuth
// @Param file formData file true "CSV file"
// @Param validate_only query boolean false "Validate without importing"
// @Success 200 {object} importpkg.Result "Import result"
// @Failure 400 {object} models.ErrorResponse "Invalid file or missing columns"
// @Router /leads/import [post]
func (h *ImportHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.ValidationError(c, err)
	}
	defer file.Close()

	config := importpkg.DefaultConfig()
	config.ValidateOnly = c.QueryParam("validate_only") == "true"

	result, err := h.importService.ImportFromCSV(c.Request().Context(), file, config)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
