package persistence

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// ContactRepository defines persistence operations for a client's contacts
type ContactRepository interface {
	// GetByID retrieves a contact scoped to its owning client.
	//
	// Possible errors:
	// - ErrContactNotFound: if the contact is missing or owned elsewhere
	GetByID(ctx context.Context, clientID, contactID uint64) (*entity.Contact, error)

	// GetByIDs resolves a set of contact IDs scoped to the owning client.
	// Callers compare the resolved count against the requested count to
	// detect foreign or invalid IDs.
	GetByIDs(ctx context.Context, clientID uint64, contactIDs []uint64) ([]*entity.Contact, error)

	// ListByClient returns all contacts owned by the client, name ascending
	ListByClient(ctx context.Context, clientID uint64) ([]*entity.Contact, error)

	// CountByClient returns the number of contacts owned by the client
	CountByClient(ctx context.Context, clientID uint64) (int64, error)

	// Create persists a new contact.
	//
	// Possible errors:
	// - ErrDuplicatePhone: if the phone already exists for this client
	Create(ctx context.Context, contact *entity.Contact) error

	// Update persists changed contact fields
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact scoped to its owning client
	Delete(ctx context.Context, clientID, contactID uint64) error

	// ExistsByPhone reports whether the client already has this phone number
	ExistsByPhone(ctx context.Context, clientID uint64, phone string) (bool, error)
}
