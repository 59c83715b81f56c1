package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/model"
)

// ClientUserRepository implements persistence.ClientUserRepository using GORM
type ClientUserRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewClientUserRepository creates a new ClientUserRepository instance
func NewClientUserRepository(db *gorm.DB, logger coreport.Logger) *ClientUserRepository {
	return &ClientUserRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

func clientUserModelToEntity(m *model.ClientUser) *entity.ClientUser {
	return &entity.ClientUser{
		ID:           m.ID,
		ClientID:     m.ClientID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a sub-user by ID
func (r *ClientUserRepository) GetByID(ctx context.Context, id uint64) (*entity.ClientUser, error) {
	var userModel model.ClientUser
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrClientUserNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return clientUserModelToEntity(&userModel), nil
}

// GetByEmail retrieves a sub-user by email
func (r *ClientUserRepository) GetByEmail(ctx context.Context, email string) (*entity.ClientUser, error) {
	var userModel model.ClientUser
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrClientUserNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return clientUserModelToEntity(&userModel), nil
}

// Create persists a new sub-user and backfills the generated ID
func (r *ClientUserRepository) Create(ctx context.Context, user *entity.ClientUser) error {
	userModel := model.ClientUser{
		ClientID:     user.ClientID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if r.classifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateEmail
		}
		r.logger.Error("Failed to create client user", map[string]any{
			"client_id": user.ClientID,
			"email":     user.Email,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	user.ID = userModel.ID
	return nil
}

// ListByClient returns all sub-users under a client, newest first
func (r *ClientUserRepository) ListByClient(ctx context.Context, clientID uint64) ([]*entity.ClientUser, error) {
	var userModels []model.ClientUser
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	users := make([]*entity.ClientUser, 0, len(userModels))
	for i := range userModels {
		users = append(users, clientUserModelToEntity(&userModels[i]))
	}
	return users, nil
}
