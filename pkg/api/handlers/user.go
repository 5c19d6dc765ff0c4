package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/users"
)

// UserHandler serves the signed-in user's profile
type UserHandler struct {
	users     *users.Service
	validator *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{users: svc, validator: validator.New()}
}

// Me godoc
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserInfo
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	ctx, cancel := dbContext(c)
	defer cancel()

	u, err := h.users.Get(ctx, userID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, u.Info())
}

// UpdateMe godoc
// @Summary Update profile and settings
// @Description Changes the name, language or theme. Settings follow the user across devices.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.UserInfo
// @Failure 400 {object} models.ErrorResponse
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	u, err := h.users.UpdateProfile(ctx, userID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, u.Info())
}
