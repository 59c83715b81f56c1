package dto

import (
	"time"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// CreateClientRequest represents the admin request to register a client
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateClientRequest represents the admin request to update a client.
// Password is optional; when empty the stored hash is kept.
type UpdateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// CreateClientUserRequest represents the admin request to register a
// sub-user under an existing client. Name is optional.
type CreateClientUserRequest struct {
	ClientID uint64 `json:"clientId" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ClientUserResponse is the public view of a client sub-user
type ClientUserResponse struct {
	ID        uint64    `json:"id"`
	ClientID  uint64    `json:"clientId"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewClientUserResponse maps a sub-user entity to its API shape
func NewClientUserResponse(user *entity.ClientUser) ClientUserResponse {
	return ClientUserResponse{
		ID:        user.ID,
		ClientID:  user.ClientID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ClientResponse is the public view of a client account
type ClientResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientOverviewResponse is a client plus its balance and contact count
type ClientOverviewResponse struct {
	ClientResponse
	Balance      int64 `json:"balance"`
	ContactCount int64 `json:"contactCount"`
}

// NewClientResponse maps a client entity to its API shape
func NewClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}
