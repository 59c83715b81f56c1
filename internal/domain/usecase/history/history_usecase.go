package history

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// Service is the History Recorder: append-only aggregate records of
// completed dispatch batches.
type Service struct {
	historyRepo  persistence.HistoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a history service
func NewService(
	historyRepo persistence.HistoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		historyRepo:  historyRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Append records one completed dispatch batch
func (s *Service) Append(
	ctx context.Context,
	clientID uint64,
	message string,
	recipientCount int64,
	creditsUsed int64,
	status entity.HistoryStatus,
) (*entity.HistoryEntry, error) {
	entry, err := entity.NewHistoryEntry(clientID, message, recipientCount, creditsUsed, status, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("History entry recorded", map[string]any{
		"client_id":       clientID,
		"recipient_count": recipientCount,
		"credits_used":    creditsUsed,
		"status":          status,
	})
	return entry, nil
}

// List returns a page of history entries for a client, newest first
func (s *Service) List(ctx context.Context, clientID uint64, page, limit int) ([]*entity.HistoryEntry, int64, error) {
	if clientID == 0 {
		return nil, 0, errs.ErrClientNotFound
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.historyRepo.ListByClient(ctx, clientID, page, limit)
}
