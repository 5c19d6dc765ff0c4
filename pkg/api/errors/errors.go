package errors

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/models"
)

var log = logger.Default()

// SetLogger replaces the logger used for error responses
func SetLogger(l logger.Logger) {
	log = l
}

// ValidationError returns a validation error. The message is shown to the user.
func ValidationError(c echo.Context, message string) error {
	log.Debug("validation error", "path", c.Request().URL.Path, "message", message)

	if message == "" {
		message = "Invalid request data. Please check your input and try again."
	}
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: message,
	})
}

// InvalidRequest is returned when the request body cannot be decoded
func InvalidRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Invalid request body",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Error("internal error", "path", c.Request().URL.Path, "error", err)
	capture(c, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UpstreamError is returned when an external service such as the AI
// provider fails. The client may offer a manual retry.
func UpstreamError(c echo.Context, err error) error {
	log.Warn("upstream error", "path", c.Request().URL.Path, "error", err)
	capture(c, err)

	message := domain.GetMessage(err)
	if !domain.IsUpstream(err) {
		message = "The AI service is temporarily unavailable. Please try again."
	}
	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:     "upstream_error",
		Message:   message,
		Retryable: true,
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context, reason string) error {
	if reason == "" {
		reason = "You are not authorized to access this resource."
	}
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: reason,
	})
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context, reason string) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have permission to access this resource.",
	})
}

// NotFoundError returns a not found error
func NotFoundError(c echo.Context, message string) error {
	if message == "" {
		message = "The requested resource was not found."
	}
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}

// ConflictError returns a conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}

// FromDomain maps a service error onto the matching HTTP response
func FromDomain(c echo.Context, err error) error {
	switch domain.GetErrorCode(err) {
	case domain.ErrCodeNotFound:
		return NotFoundError(c, domain.GetMessage(err))
	case domain.ErrCodeValidation:
		return ValidationError(c, domain.GetMessage(err))
	case domain.ErrCodeUnauthorized:
		return UnauthorizedError(c, domain.GetMessage(err))
	case domain.ErrCodeForbidden:
		return ForbiddenError(c, domain.GetMessage(err))
	case domain.ErrCodeConflict:
		return ConflictError(c, domain.GetMessage(err))
	case domain.ErrCodeUpstream:
		return UpstreamError(c, err)
	default:
		return InternalError(c, err)
	}
}

func capture(c echo.Context, err error) {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	if sentry.CurrentHub().Client() != nil {
		sentry.CaptureException(err)
	}
}
