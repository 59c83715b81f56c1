package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories inside one durable
// database transaction. Used where atomicity spans rows: transaction
// creation + balance credit, and client creation + zero balance.
type UnitOfWork interface {
	// Begin starts a transaction and returns a context carrying it
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetClientRepository returns a client repository bound to the current transaction
	GetClientRepository(ctx context.Context) ClientRepository

	// GetBalanceRepository returns a balance repository bound to the current transaction
	GetBalanceRepository(ctx context.Context) BalanceRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
