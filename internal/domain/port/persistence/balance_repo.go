package persistence

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// BalanceRepository defines the guarded operations on a client's credit
// counter. Credit and Debit are the only mutation paths and must be
// serialized per client at the storage level (row lock) so the non-negative
// invariant holds under concurrent debits.
type BalanceRepository interface {
	// GetByClientID retrieves a client's balance.
	//
	// Possible errors:
	// - ErrBalanceNotFound: if the client has no balance row
	// - ErrDatabaseConnection: if the database is unreachable
	GetByClientID(ctx context.Context, clientID uint64) (*entity.Balance, error)

	// Create persists a zero balance, called atomically with client creation
	Create(ctx context.Context, balance *entity.Balance) error

	// Credit atomically increases available credit by quantity and returns
	// the new balance.
	//
	// Possible errors:
	// - ErrBalanceNotFound: if the client has no balance row
	// - ErrInvalidQuantity: if quantity is not positive
	Credit(ctx context.Context, clientID uint64, quantity int64) (int64, error)

	// Debit atomically decreases available credit by quantity only if
	// sufficient, re-validating under the row lock, and returns the new
	// balance. The balance is unchanged on failure.
	//
	// Possible errors:
	// - ErrBalanceNotFound: if the client has no balance row
	// - ErrInsufficientBalance: if available < quantity
	// - ErrInvalidQuantity: if quantity is not positive
	Debit(ctx context.Context, clientID uint64, quantity int64) (int64, error)
}
