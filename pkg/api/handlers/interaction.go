package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// InteractionHandler handles recorded conversations and their next steps
type InteractionHandler struct {
	interactions *interactions.Service
	language     LanguageFunc
	validator    *validator.Validate
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(svc *interactions.Service, lang LanguageFunc) *InteractionHandler {
	if lang == nil {
		lang = HeaderLanguage
	}
	return &InteractionHandler{interactions: svc, language: lang, validator: validator.New()}
}

// List godoc
// @Summary List interactions
// @Description Newest first.
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Only this customer"
// @Param unlinked query bool false "Only interactions without a customer"
// @Success 200 {object} models.InteractionListResponse
// @Router /interactions [get]
func (h *InteractionHandler) List(c echo.Context) error {
	filter := models.InteractionFilter{
		CustomerID: c.QueryParam("customer_id"),
		Unlinked:   c.QueryParam("unlinked") == "true",
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	list, err := h.interactions.List(ctx, userID(c), filter)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, models.InteractionListResponse{Interactions: list, Total: len(list)})
}

// Create godoc
// @Summary Analyze and store a conversation
// @Description Text or base64 audio is analyzed by the AI into a profile, stage, metrics and next steps.
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateInteractionRequest true "Conversation"
// @Success 201 {object} models.Interaction
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse "AI unavailable, retry manually"
// @Router /interactions [post]
func (h *InteractionHandler) Create(c echo.Context) error {
	var req models.CreateInteractionRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	it, err := h.interactions.Create(ctx, userID(c), req, h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

// Get godoc
// @Summary Get an interaction
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interaction ID"
// @Success 200 {object} models.Interaction
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /interactions/{id} [get]
func (h *InteractionHandler) Get(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	it, err := h.interactions.Get(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// Update godoc
// @Summary Edit an interaction
// @Description Changing customer_id moves the linked schedules to the new customer. An empty customer_id unlinks.
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interaction ID"
// @Param request body models.UpdateInteractionRequest true "Fields to change"
// @Success 200 {object} models.Interaction
// @Failure 400 {object} models.ErrorResponse
// @Router /interactions/{id} [patch]
func (h *InteractionHandler) Update(c echo.Context) error {
	var req models.UpdateInteractionRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	it, err := h.interactions.Update(ctx, userID(c), c.Param("id"), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// ReplaceNextSteps godoc
// @Summary Replace the next steps
// @Description Steps without an id get one.
// @Tags Interactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interaction ID"
// @Param request body models.UpdateNextStepsRequest true "Next steps"
// @Success 200 {object} models.Interaction
// @Router /interactions/{id}/next-steps [put]
func (h *InteractionHandler) ReplaceNextSteps(c echo.Context) error {
	var req models.UpdateNextStepsRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	it, err := h.interactions.ReplaceNextSteps(ctx, userID(c), c.Param("id"), req.NextSteps)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// PromoteStep godoc
// @Summary Put a next step on the schedule
// @Description Returns the existing linked schedule when the step was already promoted.
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interaction ID"
// @Param stepId path string true "Next step ID"
// @Success 201 {object} models.Schedule "Created"
// @Success 200 {object} models.Schedule "Already scheduled"
// @Failure 404 {object} models.ErrorResponse
// @Router /interactions/{id}/next-steps/{stepId}/schedule [post]
func (h *InteractionHandler) PromoteStep(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	sched, created, err := h.interactions.PromoteStep(ctx, userID(c), c.Param("id"), c.Param("stepId"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, sched)
}

// Promote godoc
// @Summary Create a customer from an interaction
// @Description Uses the AI-extracted profile, links the interaction and moves its schedules.
// @Tags Interactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interaction ID"
// @Success 201 {object} models.PromoteInteractionResponse
// @Failure 409 {object} models.ErrorResponse "Already linked"
// @Router /interactions/{id}/promote [post]
func (h *InteractionHandler) Promote(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	resp, err := h.interactions.Promote(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Delete godoc
// @Summary Delete an interaction
// @Description Schedules created from it are kept.
// @Tags Interactions
// @Security BearerAuth
// @Param id path string true "Interaction ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /interactions/{id} [delete]
func (h *InteractionHandler) Delete(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	if err := h.interactions.Delete(ctx, userID(c), c.Param("id")); err != nil {
		return errors.FromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
