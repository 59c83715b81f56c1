package dto

import (
	"time"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// HistoryResponse is the public view of a sent bulk message
type HistoryResponse struct {
	ID             uint64    `json:"id"`
	Message        string    `json:"message"`
	RecipientCount int64     `json:"recipientCount"`
	CreditsUsed    int64     `json:"creditsUsed"`
	Status         string    `json:"status"`
	SentAt         time.Time `json:"sentAt"`
}

// NewHistoryResponse maps a history entity to its API shape
func NewHistoryResponse(entry *entity.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:             entry.ID,
		Message:        entry.Message,
		RecipientCount: entry.RecipientCount,
		CreditsUsed:    entry.CreditsUsed,
		Status:         string(entry.Status),
		SentAt:         entry.SentAt,
	}
}

// NewHistoryListResponse maps a slice of history entities
func NewHistoryListResponse(entries []*entity.HistoryEntry) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewHistoryResponse(entry))
	}
	return out
}
