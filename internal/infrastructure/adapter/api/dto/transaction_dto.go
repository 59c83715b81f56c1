package dto

import (
	"time"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// CreateTransactionRequest represents the admin request to grant credits
type CreateTransactionRequest struct {
	ClientID    uint64 `json:"clientId" binding:"required,gt=0"`
	Quantity    int64  `json:"quantity" binding:"required,gt=0"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// TransactionResponse is the public view of a credit grant
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	ClientID    uint64    `json:"clientId"`
	AdminID     uint64    `json:"adminId"`
	Quantity    int64     `json:"quantity"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateTransactionResponse is a credit grant plus the resulting balance
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  int64               `json:"newBalance"`
}

// NewTransactionResponse maps a transaction entity to its API shape
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		ClientID:    txn.ClientID,
		AdminID:     txn.AdminID,
		Quantity:    txn.Quantity,
		Amount:      txn.Amount.StringFixed(2),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}

// NewTransactionListResponse maps a slice of transaction entities
func NewTransactionListResponse(txns []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, NewTransactionResponse(txn))
	}
	return out
}
