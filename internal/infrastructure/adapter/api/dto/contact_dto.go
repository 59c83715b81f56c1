package dto

import (
	"time"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// ContactRequest represents the request to create or update a contact
type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// ContactResponse is the public view of a contact
type ContactResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactResponse maps a contact entity to its API shape
func NewContactResponse(contact *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
	}
}

// NewContactListResponse maps a slice of contact entities
func NewContactListResponse(contacts []*entity.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, NewContactResponse(contact))
	}
	return out
}
