package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/model"
)

// ClientRepository implements persistence.ClientRepository using GORM
type ClientRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewClientRepository creates a new ClientRepository instance
func NewClientRepository(db *gorm.DB, logger coreport.Logger) *ClientRepository {
	return &ClientRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

func clientModelToEntity(m *model.Client) *entity.Client {
	return &entity.Client{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id uint64) (*entity.Client, error) {
	var clientModel model.Client
	result := r.db.WithContext(ctx).First(&clientModel, id)
	if result.Error != nil {
		return nil, r.wrapError("getting client", result.Error, id)
	}
	return clientModelToEntity(&clientModel), nil
}

// GetByEmail retrieves a client by email
func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var clientModel model.Client
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return clientModelToEntity(&clientModel), nil
}

// Create persists a new client and backfills the generated ID
func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.Client{
		Name:         client.Name,
		Email:        client.Email,
		PasswordHash: client.PasswordHash,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&clientModel)
	if result.Error != nil {
		if r.classifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateEmail
		}
		r.logger.Error("Failed to create client", map[string]any{
			"email": client.Email,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	client.ID = clientModel.ID
	return nil
}

// Update persists changed client fields
func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) error {
	result := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":          client.Name,
			"email":         client.Email,
			"password_hash": client.PasswordHash,
			"updated_at":    client.UpdatedAt,
		})
	if result.Error != nil {
		if r.classifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateEmail
		}
		return r.wrapError("updating client", result.Error, client.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrClientNotFound
	}
	return nil
}

// Delete removes a client; dependent rows cascade via foreign keys
func (r *ClientRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Client{}, id)
	if result.Error != nil {
		return r.wrapError("deleting client", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrClientNotFound
	}
	return nil
}

// List returns a page of clients plus the total count
func (r *ClientRepository) List(ctx context.Context, filter persistence.ClientFilter) ([]*entity.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Client{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var clientModels []model.Client
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&clientModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for i := range clientModels {
		clients = append(clients, clientModelToEntity(&clientModels[i]))
	}
	return clients, total, nil
}

func (r *ClientRepository) wrapError(operation string, err error, clientID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrClientNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"client_id": clientID,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// AdminRepository implements persistence.AdminRepository using GORM
type AdminRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewAdminRepository creates a new AdminRepository instance
func NewAdminRepository(db *gorm.DB, logger coreport.Logger) *AdminRepository {
	return &AdminRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

func adminModelToEntity(m *model.Admin) *entity.Admin {
	return &entity.Admin{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uint64) (*entity.Admin, error) {
	var adminModel model.Admin
	result := r.db.WithContext(ctx).First(&adminModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAdminNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return adminModelToEntity(&adminModel), nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminModel model.Admin
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAdminNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return adminModelToEntity(&adminModel), nil
}

// Create persists a new admin, used by the seed migration
func (r *AdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminModel := model.Admin{
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&adminModel)
	if result.Error != nil {
		if r.classifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	admin.ID = adminModel.ID
	return nil
}
