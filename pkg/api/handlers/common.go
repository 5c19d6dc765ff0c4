package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/users"
)

const (
	dbTimeout = 5 * time.Second
	// AI calls include transcription and long generations
	aiTimeout = 90 * time.Second
)

// LanguageFunc picks the output language for the current request
type LanguageFunc func(c echo.Context) string

// UserLanguage prefers the user's saved language and falls back to the
// Accept-Language header.
func UserLanguage(svc *users.Service) LanguageFunc {
	return func(c echo.Context) string {
		var setting string
		if id := userID(c); id != "" && svc != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
			defer cancel()
			if u, err := svc.Get(ctx, id); err == nil {
				setting = u.Settings.Language
			}
		}
		return intelligence.ResolveLanguage(setting, c.Request().Header.Get("Accept-Language"))
	}
}

// HeaderLanguage only looks at Accept-Language
func HeaderLanguage(c echo.Context) string {
	return intelligence.ResolveLanguage("", c.Request().Header.Get("Accept-Language"))
}

// userID returns the user id set by the JWT middleware
func userID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

func dbContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

func aiContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), aiTimeout)
}

// validationMessage turns validator errors into one readable sentence
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required", "required_without":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", field))
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s must respect %s=%s", field, fe.Tag(), fe.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "datetime":
			parts = append(parts, fmt.Sprintf("%s must match %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}
