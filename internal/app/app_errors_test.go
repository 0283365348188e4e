package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-plan-feasibility/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		message         string
		expectedError   string
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "user_id validation error",
			field:           "user_id",
			message:         "must be valid UUIDv7",
			expectedError:   "validation error: user_id - must be valid UUIDv7",
			expectedField:   "user_id",
			expectedMessage: "must be valid UUIDv7",
		},
		{
			name:            "deadline validation error",
			field:           "deadline",
			message:         "invalid date",
			expectedError:   "validation error: deadline - invalid date",
			expectedField:   "deadline",
			expectedMessage: "invalid date",
		},
		{
			name:            "frequency validation error",
			field:           "frequency",
			message:         "invalid frequency",
			expectedError:   "validation error: frequency - invalid frequency",
			expectedField:   "frequency",
			expectedMessage: "invalid frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedField, err.Field)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsValidationError(tt.err))
		})
	}
}

func TestSentinelErrorsSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "ErrValidation exists",
			err:  app.ErrValidation,
		},
		{
			name: "ErrNotFound exists",
			err:  app.ErrNotFound,
		},
		{
			name: "ErrInternalError exists",
			err:  app.ErrInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Error(t, tt.err)
		})
	}
}
