package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using
// GORM. Transactions are append-only; no update or delete is implemented.
type TransactionRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		ClientID:    m.ClientID,
		AdminID:     m.AdminID,
		Quantity:    m.Quantity,
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// Create persists a new credit grant and backfills the generated ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := model.Transaction{
		ClientID:    txn.ClientID,
		AdminID:     txn.AdminID,
		Quantity:    txn.Quantity,
		Amount:      txn.Amount,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		if r.classifier.IsForeignKeyError(result.Error) {
			return errs.ErrClientNotFound
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"client_id": txn.ClientID,
			"admin_id":  txn.AdminID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	txn.ID = txnModel.ID
	return nil
}

// List returns a page of transactions, newest first, plus the total count
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var txnModels []model.Transaction
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, transactionModelToEntity(&txnModels[i]))
	}
	return txns, total, nil
}
