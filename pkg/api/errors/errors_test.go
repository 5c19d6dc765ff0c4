package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/models"
)

func TestFromDomain(t *testing.T) {
	SetLogger(logger.Discard())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		retryable  bool
	}{
		{"not found", domain.NewNotFoundError("customer"), http.StatusNotFound, "not_found", false},
		{"validation", domain.NewValidationError("title is required"), http.StatusBadRequest, "validation_error", false},
		{"unauthorized", domain.NewUnauthorizedError("invalid credentials"), http.StatusUnauthorized, "unauthorized", false},
		{"forbidden", domain.NewForbiddenError("not yours"), http.StatusForbidden, "forbidden", false},
		{"conflict", domain.NewConflictError("email already registered"), http.StatusConflict, "conflict", false},
		{"upstream", domain.NewUpstreamError("AI analysis failed", stderrors.New("quota")), http.StatusBadGateway, "upstream_error", true},
		{"plain error", stderrors.New("disk full"), http.StatusInternalServerError, "internal_error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, FromDomain(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.retryable, resp.Retryable)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestFromDomain_HidesInternalDetails(t *testing.T) {
	SetLogger(logger.Discard())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, FromDomain(c, domain.NewInternalError(stderrors.New("pq: password authentication failed"))))
	assert.NotContains(t, rec.Body.String(), "pq:")
}
