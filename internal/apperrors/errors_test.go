package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found constructor", NewNotFoundError("beneficiary with ID b1 not found"), ErrNotFound},
		{"validation constructor", NewValidationError("rate snapshot must carry a base currency"), ErrValidation},
		{"generic with cause", NewAppError(500, "failed to save user", errors.New("connection reset")), nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.sentinel != nil {
				assert.ErrorIs(t, tc.err, tc.sentinel)
			}
			var appErr *AppError
			assert.ErrorAs(t, tc.err, &appErr)
		})
	}
}

func TestAppError_SurvivesServiceWrapping(t *testing.T) {
	// Repositories return coded errors; services wrap them with context.
	repoErr := NewNotFoundError("transaction with ID t1 not found")
	wrapped := fmt.Errorf("failed to find transaction t1: %w", repoErr)

	assert.ErrorIs(t, wrapped, ErrNotFound)

	var appErr *AppError
	assert.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestAppError_ErrorMessage(t *testing.T) {
	withCause := NewAppError(500, "failed to commit transaction", errors.New("broken pipe"))
	assert.Equal(t, "failed to commit transaction: broken pipe", withCause.Error())

	withoutCause := &AppError{Code: 400, Message: "bad input"}
	assert.Equal(t, "bad input", withoutCause.Error())
}
