package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/dashboard"
)

// DashboardHandler serves the pipeline overview
type DashboardHandler struct {
	dashboard *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: svc}
}

// Summary godoc
// @Summary Home-screen summary
// @Description Funnel counts, totals, today's schedules and the latest interactions.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardSummary
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	summary, err := h.dashboard.Summary(ctx, userID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Funnel godoc
// @Summary Sales funnel
// @Description Customers per stage. With stage set, also the customers in that stage.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param stage query string false "PROSPECTING, QUALIFICATION, PROPOSAL, NEGOTIATION, CLOSED_WON or CLOSED_LOST"
// @Success 200 {object} models.FunnelResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /dashboard/funnel [get]
func (h *DashboardHandler) Funnel(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	resp, err := h.dashboard.Funnel(ctx, userID(c), c.QueryParam("stage"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
