package persistence

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// ClientFilter narrows client listings
type ClientFilter struct {
	Search string
	Page   int
	Limit  int
}

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	// GetByID retrieves a client by ID.
	//
	// Possible errors:
	// - ErrClientNotFound: if no client with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.Client, error)

	// GetByEmail retrieves a client by email, used for login
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)

	// Create persists a new client and fills in its generated ID.
	//
	// Possible errors:
	// - ErrDuplicateEmail: if the email is already taken
	Create(ctx context.Context, client *entity.Client) error

	// Update persists changed client fields
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client; dependent balance, contacts, transactions and
	// history rows cascade at the database level
	Delete(ctx context.Context, id uint64) error

	// List returns a page of clients plus the total count
	List(ctx context.Context, filter ClientFilter) ([]*entity.Client, int64, error)
}

// AdminRepository defines persistence operations for administrators
type AdminRepository interface {
	// GetByID retrieves an admin by ID
	GetByID(ctx context.Context, id uint64) (*entity.Admin, error)

	// GetByEmail retrieves an admin by email, used for login
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin, used by the seed migration
	Create(ctx context.Context, admin *entity.Admin) error
}
