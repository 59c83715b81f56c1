package persistence

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	ClientID uint64 // zero means all clients
	Page     int
	Limit    int
}

// TransactionRepository stores administrator credit grants. Transactions are
// append-only; there are no update or delete operations.
type TransactionRepository interface {
	// Create persists a new transaction and fills in its generated ID.
	//
	// Possible errors:
	// - ErrClientNotFound: if the referenced client does not exist
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, transaction *entity.Transaction) error

	// List returns a page of transactions, newest first, plus the total count
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, int64, error)
}
