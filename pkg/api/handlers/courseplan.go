package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/courseplans"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// CoursePlanHandler handles per-customer course plans
type CoursePlanHandler struct {
	plans     *courseplans.Service
	language  LanguageFunc
	validator *validator.Validate
}

// NewCoursePlanHandler creates a new course plan handler
func NewCoursePlanHandler(svc *courseplans.Service, lang LanguageFunc) *CoursePlanHandler {
	if lang == nil {
		lang = HeaderLanguage
	}
	return &CoursePlanHandler{plans: svc, language: lang, validator: validator.New()}
}

// List godoc
// @Summary List course plans
// @Tags Course plans
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Only this customer"
// @Success 200 {array} models.CoursePlan
// @Router /course-plans [get]
func (h *CoursePlanHandler) List(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	list, err := h.plans.List(ctx, userID(c), c.QueryParam("customer_id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Save a course plan
// @Description A customer has at most one plan; saving replaces the previous one.
// @Tags Course plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCoursePlanRequest true "Plan"
// @Success 201 {object} models.CoursePlan
// @Failure 400 {object} models.ErrorResponse
// @Router /course-plans [post]
func (h *CoursePlanHandler) Create(c echo.Context) error {
	var req models.CreateCoursePlanRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	plan, err := h.plans.Create(ctx, userID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// Generate godoc
// @Summary Generate a course plan with AI
// @Description Uses the customer and their interactions. Replaces the previous plan.
// @Tags Course plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateCoursePlanRequest true "Customer"
// @Success 201 {object} models.CoursePlan
// @Failure 502 {object} models.ErrorResponse
// @Router /course-plans/generate [post]
func (h *CoursePlanHandler) Generate(c echo.Context) error {
	var req models.GenerateCoursePlanRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	plan, err := h.plans.Generate(ctx, userID(c), req.CustomerID, h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// Get godoc
// @Summary Get a course plan
// @Tags Course plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} models.CoursePlan
// @Failure 404 {object} models.ErrorResponse
// @Router /course-plans/{id} [get]
func (h *CoursePlanHandler) Get(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	plan, err := h.plans.Get(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Update godoc
// @Summary Update a course plan
// @Tags Course plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body models.UpdateCoursePlanRequest true "Fields to change"
// @Success 200 {object} models.CoursePlan
// @Router /course-plans/{id} [patch]
func (h *CoursePlanHandler) Update(c echo.Context) error {
	var req models.UpdateCoursePlanRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	plan, err := h.plans.Update(ctx, userID(c), c.Param("id"), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete godoc
// @Summary Delete a course plan
// @Tags Course plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204
// @Router /course-plans/{id} [delete]
func (h *CoursePlanHandler) Delete(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	if err := h.plans.Delete(ctx, userID(c), c.Param("id")); err != nil {
		return errors.FromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
