package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Checkers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  string
	}{
		{"not found", NewNotFoundError("customer"), IsNotFound, ErrCodeNotFound},
		{"validation", NewValidationError("name is required"), IsValidation, ErrCodeValidation},
		{"unauthorized", NewUnauthorizedError(""), IsUnauthorized, ErrCodeUnauthorized},
		{"forbidden", NewForbiddenError("not yours"), IsForbidden, ErrCodeForbidden},
		{"internal", NewInternalError(errors.New("boom")), IsInternal, ErrCodeInternal},
		{"conflict", NewConflictError("email taken"), IsConflict, ErrCodeConflict},
		{"upstream", NewUpstreamError("AI unavailable", errors.New("quota")), IsUpstream, ErrCodeUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, GetErrorCode(tt.err))

			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.True(t, tt.check(wrapped), "checker should see through wrapping")
		})
	}
}

func TestDomainError_Message(t *testing.T) {
	err := NewNotFoundError("schedule")
	assert.Equal(t, "NOT_FOUND: schedule not found", err.Error())
	assert.Equal(t, "schedule not found", GetMessage(err))

	cause := errors.New("connection refused")
	err = NewUpstreamError("AI service unavailable", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("plain")))
	assert.Equal(t, "An internal error occurred", GetMessage(errors.New("plain")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
