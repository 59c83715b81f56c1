package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeValidation          = 4002
	CodePartialOwnership    = 4003
	CodeDuplicatePhone      = 4004
	CodeDuplicateEmail      = 4005
	CodeInvalidCredentials  = 4010
	CodeInvalidToken        = 4011
	CodeForbidden           = 4030
	CodeClientNotFound      = 4040
	CodeContactNotFound     = 4041
	CodeBalanceNotFound     = 4042
	CodeAdminNotFound       = 4043
	CodeClientUserNotFound  = 4044

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeGateway        = 5020
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a client lacks credit for a debit
	ErrInsufficientBalance = errors.New("insufficient SMS balance")

	// ErrValidation is returned when request input is malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQuantity is returned when a credit quantity is not positive
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidAmount is returned when a monetary amount is negative or malformed
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal")

	// ErrEmptyMessage is returned when a dispatch message is empty
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrMessageTooLong is returned when a dispatch message exceeds the limit
	ErrMessageTooLong = errors.New("message exceeds maximum length")

	// ErrNoRecipients is returned when a dispatch resolves to zero contacts
	ErrNoRecipients = errors.New("no contacts found to send SMS to")

	// ErrPartialOwnership is returned when a recipient set contains contacts
	// that don't exist or belong to another client
	ErrPartialOwnership = errors.New("some contacts not found or do not belong to this client")

	// ErrClientNotFound is returned when the requested client doesn't exist
	ErrClientNotFound = errors.New("client not found")

	// ErrContactNotFound is returned when the requested contact doesn't exist
	ErrContactNotFound = errors.New("contact not found")

	// ErrBalanceNotFound is returned when a client has no balance record
	ErrBalanceNotFound = errors.New("SMS balance not found")

	// ErrAdminNotFound is returned when the requested admin doesn't exist
	ErrAdminNotFound = errors.New("admin not found")

	// ErrClientUserNotFound is returned when the requested sub-user doesn't exist
	ErrClientUserNotFound = errors.New("client user not found")

	// ErrDuplicatePhone is returned when a contact phone already exists for the client
	ErrDuplicatePhone = errors.New("phone number already exists")

	// ErrDuplicateEmail is returned when an account email is already taken
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned on failed login attempts
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for missing, malformed or expired tokens
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is returned when a valid token lacks the required role
	ErrForbidden = errors.New("insufficient permissions")

	// ErrGateway is returned when the SMS gateway rejects or times out a send
	ErrGateway = errors.New("gateway send failed")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrPartialOwnership):
		return CodePartialOwnership
	case errors.Is(err, ErrDuplicatePhone):
		return CodeDuplicatePhone
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrClientNotFound):
		return CodeClientNotFound
	case errors.Is(err, ErrContactNotFound):
		return CodeContactNotFound
	case errors.Is(err, ErrBalanceNotFound):
		return CodeBalanceNotFound
	case errors.Is(err, ErrAdminNotFound):
		return CodeAdminNotFound
	case errors.Is(err, ErrClientUserNotFound):
		return CodeClientUserNotFound
	case errors.Is(err, ErrGateway):
		return CodeGateway
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrMessageTooLong),
		errors.Is(err, ErrNoRecipients):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for a shortfall
type InsufficientBalanceError struct {
	ClientID  uint64
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient SMS balance for client %d: required %d, available %d",
		e.ClientID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"client_id":  e.ClientID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(clientID uint64, required, available int64) error {
	return &InsufficientBalanceError{
		ClientID:  clientID,
		Required:  required,
		Available: available,
	}
}

// PartialOwnershipError reports a recipient set with invalid or foreign contacts
type PartialOwnershipError struct {
	ClientID  uint64
	Requested int
	Resolved  int
}

// Error implements the error interface
func (e *PartialOwnershipError) Error() string {
	return fmt.Sprintf("contact ownership mismatch for client %d: requested %d, resolved %d",
		e.ClientID, e.Requested, e.Resolved)
}

// Is checks if the target error is an ErrPartialOwnership
func (e *PartialOwnershipError) Is(target error) bool {
	return target == ErrPartialOwnership
}

// LogFields returns a map of fields for structured logging
func (e *PartialOwnershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "partial_ownership",
		"client_id":  e.ClientID,
		"requested":  e.Requested,
		"resolved":   e.Resolved,
		"error_code": CodePartialOwnership,
	}
}

// NewPartialOwnershipError creates a new detailed ownership mismatch error
func NewPartialOwnershipError(clientID uint64, requested, resolved int) error {
	return &PartialOwnershipError{
		ClientID:  clientID,
		Requested: requested,
		Resolved:  resolved,
	}
}

// DispatchError wraps a fatal pre-send failure of a whole batch
type DispatchError struct {
	ClientID   uint64
	Recipients int
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed for client %d (%d recipients): %s - %v",
		e.ClientID, e.Recipients, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *DispatchError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DispatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "dispatch_error",
		"client_id":  e.ClientID,
		"recipients": e.Recipients,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDispatchError creates a detailed dispatch error
func NewDispatchError(clientID uint64, recipients int, reason string, err error) error {
	return &DispatchError{
		ClientID:   clientID,
		Recipients: recipients,
		Reason:     reason,
		Err:        err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsPartialOwnershipError checks if the error is a recipient ownership mismatch
func IsPartialOwnershipError(err error) bool {
	return errors.Is(err, ErrPartialOwnership)
}

// IsValidationError checks if the error is any malformed-input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyMessage) ||
		errors.Is(err, ErrMessageTooLong) ||
		errors.Is(err, ErrNoRecipients)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrContactNotFound) ||
		errors.Is(err, ErrBalanceNotFound) ||
		errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrClientUserNotFound)
}

// IsDuplicateError checks if the error is a uniqueness violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicatePhone) || errors.Is(err, ErrDuplicateEmail)
}

// IsAuthError checks if the error is credential or token related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidToken)
}
