package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/model"
)

// HistoryRepository implements persistence.HistoryRepository using GORM.
// Append-only: no update or delete is implemented.
type HistoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewHistoryRepository creates a new HistoryRepository instance
func NewHistoryRepository(db *gorm.DB, logger coreport.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

func historyModelToEntity(m *model.HistoryEntry) *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ID:             m.ID,
		ClientID:       m.ClientID,
		Message:        m.Message,
		RecipientCount: m.RecipientCount,
		CreditsUsed:    m.CreditsUsed,
		Status:         entity.HistoryStatus(m.Status),
		SentAt:         m.SentAt,
	}
}

// Create persists a new history entry and backfills the generated ID
func (r *HistoryRepository) Create(ctx context.Context, entry *entity.HistoryEntry) error {
	entryModel := model.HistoryEntry{
		ClientID:       entry.ClientID,
		Message:        entry.Message,
		RecipientCount: entry.RecipientCount,
		CreditsUsed:    entry.CreditsUsed,
		Status:         string(entry.Status),
		SentAt:         entry.SentAt,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		r.logger.Error("Failed to create history entry", map[string]any{
			"client_id": entry.ClientID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entry.ID = entryModel.ID
	return nil
}

// ListByClient returns a page of entries, newest first, plus the total count
func (r *HistoryRepository) ListByClient(ctx context.Context, clientID uint64, page, limit int) ([]*entity.HistoryEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.HistoryEntry{}).
		Where("client_id = ?", clientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var entryModels []model.HistoryEntry
	err := query.
		Order("sent_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	entries := make([]*entity.HistoryEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, historyModelToEntity(&entryModels[i]))
	}
	return entries, total, nil
}
