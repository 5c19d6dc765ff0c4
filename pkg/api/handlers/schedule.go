package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/schedules"
)

// ScheduleHandler handles follow-up schedules
type ScheduleHandler struct {
	schedules *schedules.Service
	customers *customers.Service
	coach     *intelligence.Coach
	language  LanguageFunc
	location  *time.Location
	now       func() time.Time
	validator *validator.Validate
}

// NewScheduleHandler creates a new schedule handler. loc anchors relative
// dates in voice reminders.
func NewScheduleHandler(svc *schedules.Service, custs *customers.Service, coach *intelligence.Coach, lang LanguageFunc, loc *time.Location) *ScheduleHandler {
	if lang == nil {
		lang = HeaderLanguage
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleHandler{
		schedules: svc,
		customers: custs,
		coach:     coach,
		language:  lang,
		location:  loc,
		now:       time.Now,
		validator: validator.New(),
	}
}

// List godoc
// @Summary List schedules
// @Description Ordered by date, then time.
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Only this customer"
// @Param status query string false "pending or completed"
// @Param date query string false "Only this day (YYYY-MM-DD)"
// @Success 200 {array} models.Schedule
// @Router /schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	filter := models.ScheduleFilter{
		CustomerID: c.QueryParam("customer_id"),
		Status:     c.QueryParam("status"),
		Date:       c.QueryParam("date"),
	}
	switch filter.Status {
	case "", models.ScheduleStatusPending, models.ScheduleStatusCompleted:
	default:
		return errors.ValidationError(c, "status must be pending or completed")
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	list, err := h.schedules.List(ctx, userID(c), filter)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Create a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateScheduleRequest true "Schedule"
// @Success 201 {object} models.Schedule
// @Failure 400 {object} models.ErrorResponse
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req models.CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	sched, err := h.schedules.Create(ctx, userID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, sched)
}

// Get godoc
// @Summary Get a schedule
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} models.Schedule
// @Failure 404 {object} models.ErrorResponse
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	sched, err := h.schedules.Get(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}

// Update godoc
// @Summary Update a schedule
// @Description An empty customer_id unlinks the customer.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body models.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} models.Schedule
// @Router /schedules/{id} [patch]
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req models.UpdateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	sched, err := h.schedules.Update(ctx, userID(c), c.Param("id"), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}

// Toggle godoc
// @Summary Flip a schedule between pending and completed
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} models.Schedule
// @Router /schedules/{id}/toggle [post]
func (h *ScheduleHandler) Toggle(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	sched, err := h.schedules.Toggle(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}

// Delete godoc
// @Summary Delete a schedule
// @Tags Schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 204
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	if err := h.schedules.Delete(ctx, userID(c), c.Param("id")); err != nil {
		return errors.FromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Parse godoc
// @Summary Draft a schedule from voice or text
// @Description Relative dates are resolved against today. A spoken customer name is matched among your customers.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ParseRequest true "Text or base64 audio"
// @Success 200 {object} models.ScheduleDraft
// @Failure 502 {object} models.ErrorResponse
// @Router /schedules/parse [post]
func (h *ScheduleHandler) Parse(c echo.Context) error {
	var req models.ParseRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	text, err := h.coach.ResolveInput(ctx, req.Text, req.AudioBase64, req.AudioFormat)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	draft, err := h.coach.ParseSchedule(ctx, text, h.now().In(h.location), h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}

	draft.CustomerID = nil
	if draft.CustomerName != "" {
		customer, err := h.customers.FindByName(ctx, userID(c), draft.CustomerName)
		switch {
		case err == nil:
			draft.CustomerID = &customer.ID
			draft.CustomerName = customer.Name
		case !domain.IsNotFound(err):
			return errors.FromDomain(c, err)
		}
	}
	return c.JSON(http.StatusOK, draft)
}
