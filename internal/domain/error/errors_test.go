package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"partial ownership", ErrPartialOwnership, CodePartialOwnership},
		{"duplicate phone", ErrDuplicatePhone, CodeDuplicatePhone},
		{"duplicate email", ErrDuplicateEmail, CodeDuplicateEmail},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"invalid token", ErrInvalidToken, CodeInvalidToken},
		{"client not found", ErrClientNotFound, CodeClientNotFound},
		{"contact not found", ErrContactNotFound, CodeContactNotFound},
		{"balance not found", ErrBalanceNotFound, CodeBalanceNotFound},
		{"admin not found", ErrAdminNotFound, CodeAdminNotFound},
		{"client user not found", ErrClientUserNotFound, CodeClientUserNotFound},
		{"forbidden", ErrForbidden, CodeForbidden},
		{"gateway", ErrGateway, CodeGateway},
		{"validation", ErrValidation, CodeValidation},
		{"invalid quantity", ErrInvalidQuantity, CodeValidation},
		{"invalid amount", ErrInvalidAmount, CodeValidation},
		{"empty message", ErrEmptyMessage, CodeValidation},
		{"no recipients", ErrNoRecipients, CodeValidation},
		{"unknown error", errors.New("boom"), CodeInternalServer},
		{"wrapped error", fmt.Errorf("context: %w", ErrContactNotFound), CodeContactNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(7, 10, 3)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, IsInsufficientBalanceError(err))
	assert.Equal(t, CodeInsufficientBalance, ErrorCode(err))
	assert.Contains(t, err.Error(), "client 7")
	assert.Contains(t, err.Error(), "required 10")
	assert.Contains(t, err.Error(), "available 3")

	var detail *InsufficientBalanceError
	assert.ErrorAs(t, err, &detail)
	assert.Equal(t, int64(10), detail.Required)

	fields := detail.LogFields()
	assert.Equal(t, uint64(7), fields["client_id"])
	assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
}

func TestPartialOwnershipError(t *testing.T) {
	err := NewPartialOwnershipError(5, 4, 2)

	assert.ErrorIs(t, err, ErrPartialOwnership)
	assert.True(t, IsPartialOwnershipError(err))
	assert.Equal(t, CodePartialOwnership, ErrorCode(err))

	var detail *PartialOwnershipError
	assert.ErrorAs(t, err, &detail)
	assert.Equal(t, 4, detail.Requested)
	assert.Equal(t, 2, detail.Resolved)
}

func TestDispatchError(t *testing.T) {
	inner := NewInsufficientBalanceError(1, 5, 2)
	err := NewDispatchError(1, 5, "insufficient balance", inner)

	assert.ErrorIs(t, err, ErrInsufficientBalance)

	var detail *DispatchError
	assert.ErrorAs(t, err, &detail)
	assert.Equal(t, inner, detail.Unwrap())
	assert.Equal(t, CodeInsufficientBalance, detail.LogFields()["error_code"])
}

func TestErrorPredicates(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		assert.True(t, IsValidationError(ErrValidation))
		assert.True(t, IsValidationError(ErrEmptyMessage))
		assert.True(t, IsValidationError(ErrMessageTooLong))
		assert.True(t, IsValidationError(ErrNoRecipients))
		assert.False(t, IsValidationError(ErrClientNotFound))
	})

	t.Run("not found", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsNotFoundError(ErrClientNotFound))
		assert.True(t, IsNotFoundError(ErrContactNotFound))
		assert.True(t, IsNotFoundError(ErrBalanceNotFound))
		assert.True(t, IsNotFoundError(ErrAdminNotFound))
		assert.True(t, IsNotFoundError(ErrClientUserNotFound))
		assert.False(t, IsNotFoundError(ErrValidation))
	})

	t.Run("duplicate", func(t *testing.T) {
		assert.True(t, IsDuplicateError(ErrDuplicatePhone))
		assert.True(t, IsDuplicateError(ErrDuplicateEmail))
		assert.False(t, IsDuplicateError(ErrValidation))
	})

	t.Run("auth", func(t *testing.T) {
		assert.True(t, IsAuthError(ErrInvalidCredentials))
		assert.True(t, IsAuthError(ErrInvalidToken))
		assert.False(t, IsAuthError(ErrForbidden))
		assert.False(t, IsAuthError(ErrGateway))
	})
}
