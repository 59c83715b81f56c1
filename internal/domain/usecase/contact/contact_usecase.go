package contact

import (
	"context"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// Service handles a client's contact list
type Service struct {
	contactRepo  persistence.ContactRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a contact service
func NewService(
	contactRepo persistence.ContactRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		contactRepo:  contactRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List returns all contacts owned by the client
func (s *Service) List(ctx context.Context, clientID uint64) ([]*entity.Contact, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	return s.contactRepo.ListByClient(ctx, clientID)
}

// Get returns one contact, scoped to the owning client
func (s *Service) Get(ctx context.Context, clientID, contactID uint64) (*entity.Contact, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	return s.contactRepo.GetByID(ctx, clientID, contactID)
}

// Create adds a contact, enforcing per-client phone uniqueness
func (s *Service) Create(ctx context.Context, clientID uint64, name, phone string) (*entity.Contact, error) {
	contact, err := entity.NewContact(clientID, name, phone, s.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := s.contactRepo.ExistsByPhone(ctx, clientID, contact.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicatePhone
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info("Contact created", map[string]any{
		"client_id":  clientID,
		"contact_id": contact.ID,
	})
	return contact, nil
}

// Update changes a contact's name and phone
func (s *Service) Update(ctx context.Context, clientID, contactID uint64, name, phone string) (*entity.Contact, error) {
	existing, err := s.contactRepo.GetByID(ctx, clientID, contactID)
	if err != nil {
		return nil, err
	}

	updated, err := entity.NewContact(clientID, name, phone, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if updated.Phone != existing.Phone {
		exists, err := s.contactRepo.ExistsByPhone(ctx, clientID, updated.Phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.ErrDuplicatePhone
		}
	}

	existing.Name = updated.Name
	existing.Phone = updated.Phone
	existing.UpdatedAt = s.timeProvider.Now()

	if err := s.contactRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a contact, scoped to the owning client
func (s *Service) Delete(ctx context.Context, clientID, contactID uint64) error {
	if clientID == 0 {
		return errs.ErrClientNotFound
	}
	if err := s.contactRepo.Delete(ctx, clientID, contactID); err != nil {
		return err
	}

	s.logger.Info("Contact deleted", map[string]any{
		"client_id":  clientID,
		"contact_id": contactID,
	})
	return nil
}
