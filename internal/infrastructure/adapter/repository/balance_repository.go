package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/model"
)

// BalanceRepository implements persistence.BalanceRepository using GORM.
// Credit and Debit run inside a database transaction holding a FOR UPDATE
// lock on the client's balance row, which serializes balance mutation per
// tenant and makes the non-negative invariant hold under concurrent debits.
type BalanceRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	classifier   *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		classifier:   NewErrorClassifier(),
	}
}

// modelToEntity converts a balance model to an entity
func (r *BalanceRepository) modelToEntity(balModel *model.Balance) (*entity.Balance, error) {
	bal, err := entity.RestoreBalance(balModel.ClientID, balModel.Available, balModel.CreatedAt, balModel.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: restoring balance entity: %s", errs.ErrInternalServer, err.Error())
	}
	return bal, nil
}

// GetByClientID retrieves a client's balance
func (r *BalanceRepository) GetByClientID(ctx context.Context, clientID uint64) (*entity.Balance, error) {
	var balModel model.Balance
	result := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&balModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBalanceNotFound
		}
		r.logger.Error("Failed to load balance", map[string]any{
			"client_id": clientID,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(&balModel)
}

// Create persists a zero balance for a new client
func (r *BalanceRepository) Create(ctx context.Context, bal *entity.Balance) error {
	balModel := model.Balance{
		ClientID:  bal.ClientID,
		Available: bal.Available(),
		CreatedAt: bal.CreatedAt,
		UpdatedAt: bal.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&balModel)
	if result.Error != nil {
		r.logger.Error("Failed to create balance", map[string]any{
			"client_id": bal.ClientID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Credit atomically increases available credit and returns the new balance
func (r *BalanceRepository) Credit(ctx context.Context, clientID uint64, quantity int64) (int64, error) {
	return r.apply(ctx, clientID, quantity)
}

// Debit atomically decreases available credit if sufficient and returns the
// new balance. Sufficiency is re-validated while holding the row lock.
func (r *BalanceRepository) Debit(ctx context.Context, clientID uint64, quantity int64) (int64, error) {
	return r.apply(ctx, clientID, -quantity)
}

// apply mutates the balance row by change under SELECT ... FOR UPDATE
func (r *BalanceRepository) apply(ctx context.Context, clientID uint64, change int64) (int64, error) {
	if change == 0 {
		return 0, errs.ErrInvalidQuantity
	}

	var newBalance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balModel model.Balance
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("client_id = ?", clientID).
			First(&balModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrBalanceNotFound
			}
			return result.Error
		}

		updated := balModel.Available + change
		if updated < 0 {
			return errs.NewInsufficientBalanceError(clientID, -change, balModel.Available)
		}

		result = tx.Model(&balModel).Updates(map[string]any{
			"available":  updated,
			"updated_at": r.timeProvider.Now(),
		})
		if result.Error != nil {
			return result.Error
		}

		newBalance = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrBalanceNotFound) || errs.IsInsufficientBalanceError(err) {
			return 0, err
		}
		if r.classifier.IsLockError(err) {
			r.logger.Warn("Balance row contention", map[string]any{
				"client_id": clientID,
				"error":     err.Error(),
			})
		} else {
			r.logger.Error("Balance mutation failed", map[string]any{
				"client_id": clientID,
				"change":    change,
				"error":     err.Error(),
			})
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Debug("Balance mutated", map[string]any{
		"client_id":   clientID,
		"change":      change,
		"new_balance": newBalance,
	})
	return newBalance, nil
}
