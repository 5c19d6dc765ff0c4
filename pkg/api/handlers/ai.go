package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/reports"
)

// AIHandler serves the stateless AI endpoints: role-play, keywords and
// reports.
type AIHandler struct {
	coach     *intelligence.Coach
	customers *customers.Service
	reports   *reports.Service
	language  LanguageFunc
	validator *validator.Validate
}

// NewAIHandler creates a new AI handler
func NewAIHandler(coach *intelligence.Coach, custs *customers.Service, rep *reports.Service, lang LanguageFunc) *AIHandler {
	if lang == nil {
		lang = HeaderLanguage
	}
	return &AIHandler{
		coach:     coach,
		customers: custs,
		reports:   rep,
		language:  lang,
		validator: validator.New(),
	}
}

// RolePlayTurn godoc
// @Summary Next reply of the simulated customer
// @Description The AI plays the customer described by persona, or by customer_id when set.
// @Tags Role-play
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RolePlayTurnRequest true "Scenario and history"
// @Success 200 {object} models.RolePlayTurnResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /ai/roleplay [post]
func (h *AIHandler) RolePlayTurn(c echo.Context) error {
	var req models.RolePlayTurnRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	var customer *models.Customer
	if req.CustomerID != "" {
		var err error
		if customer, err = h.customers.GetActive(ctx, userID(c), req.CustomerID); err != nil {
			return errors.FromDomain(c, err)
		}
	}

	reply, err := h.coach.RolePlayTurn(ctx, req, customer, h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, models.RolePlayTurnResponse{Reply: reply})
}

// RolePlayScore godoc
// @Summary Score a practice conversation
// @Tags Role-play
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RolePlayScoreRequest true "Scenario and history"
// @Success 200 {object} models.RolePlayScore
// @Failure 502 {object} models.ErrorResponse
// @Router /ai/roleplay/score [post]
func (h *AIHandler) RolePlayScore(c echo.Context) error {
	var req models.RolePlayScoreRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	score, err := h.coach.ScoreRolePlay(ctx, req, h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, score)
}

// Keywords godoc
// @Summary Extract keywords
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.KeywordsRequest true "Text"
// @Success 200 {object} models.KeywordsResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /ai/keywords [post]
func (h *AIHandler) Keywords(c echo.Context) error {
	var req models.KeywordsRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	keywords, err := h.coach.ExtractKeywords(ctx, req.Text, h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, models.KeywordsResponse{Keywords: keywords})
}

// Report godoc
// @Summary Summarize interactions over a date range
// @Description Named ranges are resolved in the server time zone. No AI call is made when the range has no interactions.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReportRequest true "Range"
// @Success 200 {object} models.ReportResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /ai/report [post]
func (h *AIHandler) Report(c echo.Context) error {
	var req models.ReportRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := aiContext(c)
	defer cancel()

	report, err := h.reports.Generate(ctx, userID(c), h.language(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
