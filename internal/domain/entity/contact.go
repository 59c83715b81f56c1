package entity

import (
	"strings"
	"time"
	"unicode"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
)

// Contact is a named phone number owned by a client.
// Phone numbers are unique per client.
type Contact struct {
	ID        uint64
	ClientID  uint64
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewContact creates a contact with validation and phone normalization
func NewContact(clientID uint64, name, phone string, timeProvider coreport.TimeProvider) (*Contact, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > 255 {
		return nil, errs.ErrValidation
	}

	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Contact{
		ClientID:  clientID,
		Name:      name,
		Phone:     normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizePhone strips separators and validates a phone number.
// Accepts an optional leading + followed by 10 to 20 digits.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separator, skip
		default:
			return "", errs.ErrValidation
		}
	}

	normalized := b.String()
	digits := strings.TrimPrefix(normalized, "+")
	if len(digits) < 10 || len(digits) > 20 {
		return "", errs.ErrValidation
	}
	return normalized, nil
}
