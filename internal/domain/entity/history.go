package entity

import (
	"strings"
	"time"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
)

// HistoryStatus represents the outcome recorded for a dispatch batch
type HistoryStatus string

// History statuses. Delivered and pending are reserved for a future gateway
// callback integration; the base dispatch flow only produces sent.
const (
	HistorySent      HistoryStatus = "sent"
	HistoryFailed    HistoryStatus = "failed"
	HistoryDelivered HistoryStatus = "delivered"
	HistoryPending   HistoryStatus = "pending"
)

// IsValidHistoryStatus reports whether status is one of the allowed values
func IsValidHistoryStatus(status string) bool {
	switch HistoryStatus(status) {
	case HistorySent, HistoryFailed, HistoryDelivered, HistoryPending:
		return true
	}
	return false
}

// HistoryEntry is an append-only aggregate record of a completed dispatch
// batch. It records successful spend only and is never written for a batch
// with zero successes.
type HistoryEntry struct {
	ID             uint64
	ClientID       uint64
	Message        string
	RecipientCount int64
	CreditsUsed    int64
	Status         HistoryStatus
	SentAt         time.Time
}

// NewHistoryEntry creates a history entry with validation
func NewHistoryEntry(
	clientID uint64,
	message string,
	recipientCount int64,
	creditsUsed int64,
	status HistoryStatus,
	timeProvider coreport.TimeProvider,
) (*HistoryEntry, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	if strings.TrimSpace(message) == "" {
		return nil, errs.ErrEmptyMessage
	}
	if recipientCount <= 0 {
		return nil, errs.ErrValidation
	}
	if creditsUsed <= 0 || creditsUsed > recipientCount {
		return nil, errs.ErrValidation
	}
	if !IsValidHistoryStatus(string(status)) {
		return nil, errs.ErrValidation
	}

	return &HistoryEntry{
		ClientID:       clientID,
		Message:        message,
		RecipientCount: recipientCount,
		CreditsUsed:    creditsUsed,
		Status:         status,
		SentAt:         timeProvider.Now(),
	}, nil
}
