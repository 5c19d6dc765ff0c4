package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/export"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles workbook exports
type ExportHandler struct {
	exports *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(svc *export.Service) *ExportHandler {
	return &ExportHandler{exports: svc}
}

// Create godoc
// @Summary Export customers, interactions and schedules
// @Description Builds an .xlsx workbook and returns where to download it.
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ExportResponse
// @Router /exports [post]
func (h *ExportHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	resp, err := h.exports.Create(ctx, userID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Download godoc
// @Summary Download an export
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param file path string true "File name returned by POST /exports"
// @Success 200 {file} file
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /exports/{file} [get]
func (h *ExportHandler) Download(c echo.Context) error {
	file := c.Param("file")
	rc, err := h.exports.Open(c.Request().Context(), userID(c), file)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file))
	return c.Stream(http.StatusOK, xlsxMIME, rc)
}
