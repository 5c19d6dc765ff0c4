package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/dashboard"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// CustomerHandler handles customer endpoints, including the trash
type CustomerHandler struct {
	customers *customers.Service
	dashboard *dashboard.Service
	coach     *intelligence.Coach
	language  LanguageFunc
	validator *validator.Validate
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(svc *customers.Service, dash *dashboard.Service, coach *intelligence.Coach, lang LanguageFunc) *CustomerHandler {
	if lang == nil {
		lang = HeaderLanguage
	}
	return &CustomerHandler{
		customers: svc,
		dashboard: dash,
		coach:     coach,
		language:  lang,
		validator: validator.New(),
	}
}

// List godoc
// @Summary List customers
// @Description Active customers with their resolved stage. deleted=true lists the trash instead.
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param deleted query bool false "List the trash"
// @Param stage query string false "Only this stage (PROSPECTING, QUALIFICATION, ...)"
// @Param q query string false "Search by name or company"
// @Success 200 {object} models.CustomerListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	filter := models.CustomerFilter{
		Deleted: c.QueryParam("deleted") == "true",
		Query:   strings.TrimSpace(c.QueryParam("q")),
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	owner := userID(c)
	list, err := h.customers.List(ctx, owner, filter)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	annotated, err := h.dashboard.CustomersWithStages(ctx, owner, list, c.QueryParam("stage"))
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, models.CustomerListResponse{
		Customers: annotated,
		Total:     len(annotated),
	})
}

// Create godoc
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req models.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	customer, err := h.customers.Create(ctx, userID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, customer)
}

// Get godoc
// @Summary Get a customer
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	customer, err := h.customers.Get(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Update godoc
// @Summary Update a customer
// @Description Partial update. Customers in the trash cannot be edited.
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body models.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req models.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	customer, err := h.customers.Update(ctx, userID(c), c.Param("id"), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete a customer
// @Description Moves the customer to the trash. permanent=true removes a trashed customer for good.
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param permanent query bool false "Delete permanently"
// @Success 200 {object} models.Customer "Moved to the trash"
// @Success 204 "Deleted permanently"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Not in the trash"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	if c.QueryParam("permanent") == "true" {
		if err := h.customers.DeletePermanently(ctx, userID(c), c.Param("id")); err != nil {
			return errors.FromDomain(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}

	customer, err := h.customers.Delete(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Restore godoc
// @Summary Restore a customer from the trash
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 409 {object} models.ErrorResponse "Not in the trash"
// @Router /customers/{id}/restore [post]
func (h *CustomerHandler) Restore(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	customer, err := h.customers.Restore(ctx, userID(c), c.Param("id"))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

// Parse godoc
// @Summary Draft a customer from voice or text
// @Description Nothing is saved; the client confirms the draft with POST /customers.
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ParseRequest true "Text or base64 audio"
// @Success 200 {object} models.CustomerDraft
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /customers/parse [post]
func (h *CustomerHandler) Parse(c echo.Context) error {
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
	draft, err := h.coach.ParseCustomer(ctx, text, h.language(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, draft)
}
