package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/config"
	"github.com/jordanlanch/repcoach/pkg/api/errors"
	"github.com/jordanlanch/repcoach/pkg/auth"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/email"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/slack"
	"github.com/jordanlanch/repcoach/pkg/users"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	users     *users.Service
	config    *config.Config
	blacklist *auth.TokenBlacklist
	google    auth.IdentityVerifier
	email     *email.Service
	slack     *slack.Service
	metrics   *metrics.Metrics
	log       logger.Logger
	validator *validator.Validate
}

// AuthDeps are the optional collaborators of the auth handler; nil fields
// disable the matching feature.
type AuthDeps struct {
	Blacklist *auth.TokenBlacklist
	Google    auth.IdentityVerifier
	Email     *email.Service
	Slack     *slack.Service
	Metrics   *metrics.Metrics
	Logger    logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *users.Service, cfg *config.Config, deps AuthDeps) *AuthHandler {
	log := deps.Logger
	if log == nil {
		log = logger.Default()
	}
	return &AuthHandler{
		users:     svc,
		config:    cfg,
		blacklist: deps.Blacklist,
		google:    deps.Google,
		email:     deps.Email,
		slack:     deps.Slack,
		metrics:   deps.Metrics,
		log:       log,
		validator: validator.New(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	u, err := h.users.Register(ctx, req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	h.metrics.RecordUserRegistered()
	h.welcome(u)

	return h.respondWithToken(c, http.StatusCreated, u)
}

// Login godoc
// @Summary Login user
// @Description Authenticate user with email and password, returns JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	u, err := h.users.Authenticate(ctx, req.Email, req.Password)
	h.metrics.RecordLoginAttempt(models.ProviderPassword, err == nil)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return h.respondWithToken(c, http.StatusOK, u)
}

// Google godoc
// @Summary Sign in with Google
// @Description Verify a Google ID token, then find or create the matching user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /auth/google [post]
func (h *AuthHandler) Google(c echo.Context) error {
	var req models.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.InvalidRequest(c)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, validationMessage(err))
	}
	if h.google == nil {
		return errors.UnauthorizedError(c, "Google sign-in is not enabled.")
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	identity, err := h.google.Verify(ctx, req.IDToken)
	if err != nil {
		h.metrics.RecordLoginAttempt(models.ProviderGoogle, false)
		h.log.Warn("google token rejected", "error", err)
		return errors.UnauthorizedError(c, "Invalid Google credentials.")
	}

	u, created, err := h.loginWithIdentity(ctx, identity)
	h.metrics.RecordLoginAttempt(models.ProviderGoogle, err == nil)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	if created {
		h.metrics.RecordUserRegistered()
		h.welcome(u)
	}

	return h.respondWithToken(c, http.StatusOK, u)
}

// Logout godoc
// @Summary Logout user
// @Description Revoke the current token until it expires
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SuccessResponse "Logged out"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("token").(string)
	claims, _ := c.Get("claims").(*auth.Claims)
	if token == "" || claims == nil {
		return errors.UnauthorizedError(c, "")
	}

	if h.blacklist != nil {
		ctx, cancel := dbContext(c)
		defer cancel()
		if err := h.blacklist.Add(ctx, token, claims.RemainingLifetime(time.Now())); err != nil {
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Logged out",
	})
}

func (h *AuthHandler) loginWithIdentity(ctx context.Context, identity *auth.Identity) (*models.User, bool, error) {
	_, err := h.users.GetByEmail(ctx, identity.Email)
	created := domain.IsNotFound(err)
	if err != nil && !created {
		return nil, false, err
	}
	u, err := h.users.LoginWithIdentity(ctx, identity)
	return u, created, err
}

func (h *AuthHandler) respondWithToken(c echo.Context, status int, u *models.User) error {
	token, err := auth.GenerateJWT(u.ID, u.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}
	return c.JSON(status, models.AuthResponse{
		Token: token,
		User:  u.Info(),
	})
}

// welcome sends the welcome mail and team notification in the background
func (h *AuthHandler) welcome(u *models.User) {
	name, address := u.Name, u.Email
	go func() {
		if h.email != nil {
			if err := h.email.SendWelcomeEmail(address, name); err != nil {
				h.log.Warn("welcome email failed", "user_id", u.ID, "error", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.slack.NotifyNewUser(ctx, name, address); err != nil {
			h.log.Warn("slack new user notification failed", "error", err)
		}
	}()
}
