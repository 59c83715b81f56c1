package dispatch

import (
	"strings"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
)

// Validator checks dispatch requests before any side effect
type Validator struct{}

// NewValidator creates a dispatch validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the request shape. Ownership and balance gates run later
// against the store; everything here is pure input validation.
func (v *Validator) Validate(clientID uint64, message string, sendToAll bool, contactIDs []uint64) error {
	if clientID == 0 {
		return errs.ErrClientNotFound
	}

	if strings.TrimSpace(message) == "" {
		return errs.ErrEmptyMessage
	}
	if len(message) > entity.MaxMessageLength {
		return errs.ErrMessageTooLong
	}

	if !sendToAll {
		if len(contactIDs) == 0 {
			return errs.ErrNoRecipients
		}
		for _, id := range contactIDs {
			if id == 0 {
				return errs.ErrPartialOwnership
			}
		}
	}

	return nil
}
