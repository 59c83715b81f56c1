package persistence

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
)

// HistoryRepository stores aggregate dispatch records. Append-only; no
// mutation or deletion is exposed.
type HistoryRepository interface {
	// Create persists a new history entry and fills in its generated ID
	Create(ctx context.Context, entry *entity.HistoryEntry) error

	// ListByClient returns a page of entries, newest first, plus the total count
	ListByClient(ctx context.Context, clientID uint64, page, limit int) ([]*entity.HistoryEntry, int64, error)
}
