package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// Service is the Transaction Recorder. Recording a credit grant creates the
// immutable transaction row and applies the balance credit inside one
// database transaction, so no transaction row can ever exist without its
// matching balance increase.
type Service struct {
	uow          persistence.UnitOfWork
	clientRepo   persistence.ClientRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a transaction recorder
func NewService(
	uow persistence.UnitOfWork,
	clientRepo persistence.ClientRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		clientRepo:   clientRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RecordRequest carries the input for recording a credit grant
type RecordRequest struct {
	ClientID    uint64
	AdminID     uint64
	Quantity    int64
	Amount      decimal.Decimal
	Description string
}

// Record creates a transaction and credits the client's balance atomically.
// Returns the created transaction and the resulting balance.
func (s *Service) Record(ctx context.Context, req RecordRequest) (*entity.Transaction, int64, error) {
	txn, err := entity.NewTransaction(
		req.ClientID, req.AdminID, req.Quantity, req.Amount, req.Description, s.timeProvider,
	)
	if err != nil {
		return nil, 0, err
	}

	// Fail fast before opening a transaction
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return nil, 0, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	txnRepo := s.uow.GetTransactionRepository(txCtx)
	balanceRepo := s.uow.GetBalanceRepository(txCtx)

	if err := txnRepo.Create(txCtx, txn); err != nil {
		s.rollback(txCtx, req.ClientID)
		return nil, 0, err
	}

	newBalance, err := balanceRepo.Credit(txCtx, req.ClientID, req.Quantity)
	if err != nil {
		s.rollback(txCtx, req.ClientID)
		return nil, 0, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Credit grant recorded", map[string]any{
		"transaction_id": txn.ID,
		"client_id":      req.ClientID,
		"admin_id":       req.AdminID,
		"quantity":       req.Quantity,
		"amount":         req.Amount.String(),
		"new_balance":    newBalance,
	})
	return txn, newBalance, nil
}

func (s *Service) rollback(ctx context.Context, clientID uint64) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to roll back credit grant", map[string]any{
			"client_id": clientID,
			"error":     err.Error(),
		})
	}
}

// List returns transactions for the admin dashboard, newest first
func (s *Service) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	txnRepo := s.uow.GetTransactionRepository(ctx)
	return txnRepo.List(ctx, filter)
}
