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

// ContactRepository implements persistence.ContactRepository using GORM.
// Every query is scoped by client_id so one tenant can never see or touch
// another tenant's contacts.
type ContactRepository struct {
	db         *gorm.DB
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(db *gorm.DB, logger coreport.Logger) *ContactRepository {
	return &ContactRepository{
		db:         db,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

func contactModelToEntity(m *model.Contact) *entity.Contact {
	return &entity.Contact{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Name:      m.Name,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GetByID retrieves a contact scoped to its owning client
func (r *ContactRepository) GetByID(ctx context.Context, clientID, contactID uint64) (*entity.Contact, error) {
	var contactModel model.Contact
	result := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", contactID, clientID).
		First(&contactModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrContactNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return contactModelToEntity(&contactModel), nil
}

// GetByIDs resolves a set of contact IDs scoped to the owning client
func (r *ContactRepository) GetByIDs(ctx context.Context, clientID uint64, contactIDs []uint64) ([]*entity.Contact, error) {
	var contactModels []model.Contact
	err := r.db.WithContext(ctx).
		Where("id IN ? AND client_id = ?", contactIDs, clientID).
		Find(&contactModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for i := range contactModels {
		contacts = append(contacts, contactModelToEntity(&contactModels[i]))
	}
	return contacts, nil
}

// ListByClient returns all contacts owned by the client, name ascending
func (r *ContactRepository) ListByClient(ctx context.Context, clientID uint64) ([]*entity.Contact, error) {
	var contactModels []model.Contact
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&contactModels).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for i := range contactModels {
		contacts = append(contacts, contactModelToEntity(&contactModels[i]))
	}
	return contacts, nil
}

// CountByClient returns the number of contacts owned by the client
func (r *ContactRepository) CountByClient(ctx context.Context, clientID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count, nil
}

// Create persists a new contact and backfills the generated ID
func (r *ContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactModel := model.Contact{
		ClientID:  contact.ClientID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&contactModel)
	if result.Error != nil {
		if r.classifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicatePhone
		}
		r.logger.Error("Failed to create contact", map[string]any{
			"client_id": contact.ClientID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	contact.ID = contactModel.ID
	return nil
}

// Update persists changed contact fields, scoped to the owning client
func (r *ContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("id = ? AND client_id = ?", contact.ID, contact.ClientID).
		Updates(map[string]any{
			"name":       contact.Name,
			"phone":      contact.Phone,
			"updated_at": contact.UpdatedAt,
		})
	if result.Error != nil {
		if r.classifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicatePhone
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrContactNotFound
	}
	return nil
}

// Delete removes a contact scoped to its owning client
func (r *ContactRepository) Delete(ctx context.Context, clientID, contactID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", contactID, clientID).
		Delete(&model.Contact{})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrContactNotFound
	}
	return nil
}

// ExistsByPhone reports whether the client already has this phone number
func (r *ContactRepository) ExistsByPhone(ctx context.Context, clientID uint64, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("client_id = ? AND phone = ?", clientID, phone).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count > 0, nil
}
