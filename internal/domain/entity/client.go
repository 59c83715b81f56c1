package entity

import (
	"strings"
	"time"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
)

// Client represents a billing-isolated tenant of the platform.
// Each client owns exactly one Balance record plus its contacts,
// transactions and history entries.
type Client struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewClient creates a new client with basic validation.
// The password hash is produced by the credential collaborator, not here.
func NewClient(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*Client, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || len(name) > 255 {
		return nil, errs.ErrValidation
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrValidation
	}
	if passwordHash == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &Client{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ClientUser is a sub-account under a client. Sub-users authenticate with
// their own credentials but act on the parent client's contacts, balance
// and history; they own nothing themselves.
type ClientUser struct {
	ID           uint64
	ClientID     uint64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewClientUser creates a sub-user under an existing client.
// The name is optional; the original account keeps it nullable.
func NewClientUser(clientID uint64, name, email, passwordHash string, timeProvider coreport.TimeProvider) (*ClientUser, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}

	name = strings.TrimSpace(name)
	if len(name) > 255 {
		return nil, errs.ErrValidation
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrValidation
	}
	if passwordHash == "" {
		return nil, errs.ErrValidation
	}

	now := timeProvider.Now()
	return &ClientUser{
		ClientID:     clientID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Admin represents a platform administrator who sells SMS credit to clients
type Admin struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
