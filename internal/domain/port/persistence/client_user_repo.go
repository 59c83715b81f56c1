package persistence

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// ClientUserRepository defines persistence operations for client sub-users.
// Sub-user emails are unique across the whole platform, not per client.
type ClientUserRepository interface {
	// GetByID retrieves a sub-user by ID.
	//
	// Possible errors:
	// - ErrClientUserNotFound: if the sub-user does not exist
	GetByID(ctx context.Context, id uint64) (*entity.ClientUser, error)

	// GetByEmail retrieves a sub-user by email
	GetByEmail(ctx context.Context, email string) (*entity.ClientUser, error)

	// Create persists a new sub-user and fills in its generated ID.
	//
	// Possible errors:
	// - ErrDuplicateEmail: if the email is already taken
	Create(ctx context.Context, user *entity.ClientUser) error

	// ListByClient returns all sub-users under a client
	ListByClient(ctx context.Context, clientID uint64) ([]*entity.ClientUser, error)
}
