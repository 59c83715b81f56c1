package entity

import (
	"time"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
)

// Balance is a client's prepaid SMS credit counter. The available amount is
// private and mutated only through Credit and Debit so the non-negative
// invariant cannot be bypassed by direct field writes.
type Balance struct {
	ClientID  uint64
	available int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBalance creates a zero balance for a freshly created client
func NewBalance(clientID uint64, timeProvider coreport.TimeProvider) (*Balance, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}

	now := timeProvider.Now()
	return &Balance{
		ClientID:  clientID,
		available: 0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreBalance rebuilds a balance entity from persisted state.
// For repository use only; available must already satisfy the invariant.
func RestoreBalance(clientID uint64, available int64, createdAt, updatedAt time.Time) (*Balance, error) {
	if available < 0 {
		return nil, errs.ErrValidation
	}
	return &Balance{
		ClientID:  clientID,
		available: available,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Available returns the current credit count
func (b *Balance) Available() int64 {
	return b.available
}

// Credit increases the available credit by quantity
func (b *Balance) Credit(quantity int64, timeProvider coreport.TimeProvider) error {
	if quantity <= 0 {
		return errs.ErrInvalidQuantity
	}

	b.available += quantity
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit decreases the available credit by quantity, only if sufficient.
// The balance is left unchanged on failure; there is no partial debit.
func (b *Balance) Debit(quantity int64, timeProvider coreport.TimeProvider) error {
	if quantity <= 0 {
		return errs.ErrInvalidQuantity
	}
	if b.available < quantity {
		return errs.NewInsufficientBalanceError(b.ClientID, quantity, b.available)
	}

	b.available -= quantity
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// HasSufficient reports whether quantity credits could be debited right now.
// Advisory only: Debit re-validates under the storage lock.
func (b *Balance) HasSufficient(quantity int64) bool {
	return quantity > 0 && b.available >= quantity
}
