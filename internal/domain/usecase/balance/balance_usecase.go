package balance

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// Service is the Balance Store: the only mutation path for a client's
// prepaid credit. Serialization happens in the repository under a row lock;
// this layer validates input and logs outcomes.
type Service struct {
	balanceRepo persistence.BalanceRepository
	logger      coreport.Logger
}

// NewService creates a balance service
func NewService(balanceRepo persistence.BalanceRepository, logger coreport.Logger) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		logger:      logger,
	}
}

// Get returns a client's current balance
func (s *Service) Get(ctx context.Context, clientID uint64) (*entity.Balance, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	return s.balanceRepo.GetByClientID(ctx, clientID)
}

// Credit increases the client's available credit and returns the new balance.
// Callers must treat the returned value as authoritative.
func (s *Service) Credit(ctx context.Context, clientID uint64, quantity int64) (int64, error) {
	if clientID == 0 {
		return 0, errs.ErrClientNotFound
	}
	if quantity <= 0 {
		return 0, errs.ErrInvalidQuantity
	}

	newBalance, err := s.balanceRepo.Credit(ctx, clientID, quantity)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Balance credited", map[string]any{
		"client_id":   clientID,
		"quantity":    quantity,
		"new_balance": newBalance,
	})
	return newBalance, nil
}

// Debit decreases the client's available credit if sufficient and returns
// the new balance. Sufficiency is re-validated under the storage row lock,
// never from a cached pre-check.
func (s *Service) Debit(ctx context.Context, clientID uint64, quantity int64) (int64, error) {
	if clientID == 0 {
		return 0, errs.ErrClientNotFound
	}
	if quantity <= 0 {
		return 0, errs.ErrInvalidQuantity
	}

	newBalance, err := s.balanceRepo.Debit(ctx, clientID, quantity)
	if err != nil {
		if errs.IsInsufficientBalanceError(err) {
			s.logger.Warn("Debit rejected, insufficient balance", map[string]any{
				"client_id": clientID,
				"quantity":  quantity,
			})
		}
		return 0, err
	}

	s.logger.Info("Balance debited", map[string]any{
		"client_id":   clientID,
		"quantity":    quantity,
		"new_balance": newBalance,
	})
	return newBalance, nil
}

// HasSufficient is the non-mutating pre-flight check used by the dispatch
// coordinator as a fail-fast gate. It is not the final authority; the debit
// itself re-validates.
func (s *Service) HasSufficient(ctx context.Context, clientID uint64, quantity int64) (bool, error) {
	if clientID == 0 {
		return false, errs.ErrClientNotFound
	}

	bal, err := s.balanceRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return false, err
	}
	return bal.HasSufficient(quantity), nil
}
