package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/models"
)

func TestValidationMessage(t *testing.T) {
	v := validator.New()

	err := v.Struct(models.RegisterRequest{Email: "nope", Password: "short"})
	require.Error(t, err)
	msg := validationMessage(err)
	assert.Contains(t, msg, "Email must be a valid email")
	assert.Contains(t, msg, "Password must respect min=8")
	assert.Contains(t, msg, "Name is required")

	err = v.Struct(models.UpdateProfileRequest{Theme: ptr("neon")})
	assert.Equal(t, "Theme must be one of: light dark system", validationMessage(err))

	assert.Equal(t, "boom", validationMessage(errors.New("boom")))
}

func TestUserHandler(t *testing.T) {
	env := newTestEnv(t)
	h := NewUserHandler(env.users)

	rec := env.call(h.Me, http.MethodGet, "/api/v1/users/me", "", "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	u, err := env.users.Register(context.Background(), models.RegisterRequest{
		Email: "rep@example.com", Password: "password123", Name: "Rep",
	})
	require.NoError(t, err)

	rec = env.call(h.UpdateMe, http.MethodPatch, "/api/v1/users/me", `{"language":"ja","theme":"dark"}`, u.ID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	info := decode[models.UserInfo](t, rec)
	assert.Equal(t, models.UserSettings{Language: "ja", Theme: "dark"}, info.Settings)

	rec = env.call(h.UpdateMe, http.MethodPatch, "/api/v1/users/me", `{"language":"fr"}`, u.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.call(h.Me, http.MethodGet, "/api/v1/users/me", "", u.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ja", decode[models.UserInfo](t, rec).Settings.Language)
}

func ptr[T any](v T) *T { return &v }
