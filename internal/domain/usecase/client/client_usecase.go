package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/texthub/bulksms-portal/internal/domain/entity"
	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/domain/port/persistence"
)

// PasswordHasher is the credential-hashing collaborator boundary
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Service manages client (tenant) lifecycle. A client's zero balance is
// created in the same database transaction as the client row, so every
// tenant has exactly one balance from the moment it exists.
type Service struct {
	uow            persistence.UnitOfWork
	clientRepo     persistence.ClientRepository
	clientUserRepo persistence.ClientUserRepository
	contactRepo    persistence.ContactRepository
	hasher         PasswordHasher
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewService creates a client service
func NewService(
	uow persistence.UnitOfWork,
	clientRepo persistence.ClientRepository,
	clientUserRepo persistence.ClientUserRepository,
	contactRepo persistence.ContactRepository,
	hasher PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:            uow,
		clientRepo:     clientRepo,
		clientUserRepo: clientUserRepo,
		contactRepo:    contactRepo,
		hasher:         hasher,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Overview combines a client with its balance and contact count for the
// admin dashboard
type Overview struct {
	Client       *entity.Client
	Balance      int64
	ContactCount int64
}

// Create registers a new client together with its zero balance
func (s *Service) Create(ctx context.Context, name, email, password string) (*entity.Client, error) {
	if len(password) < 6 {
		return nil, errs.ErrValidation
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %s", errs.ErrInternalServer, err.Error())
	}

	client, err := entity.NewClient(name, email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	clientRepo := s.uow.GetClientRepository(txCtx)
	balanceRepo := s.uow.GetBalanceRepository(txCtx)

	if err := clientRepo.Create(txCtx, client); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	bal, err := entity.NewBalance(client.ID, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	if err := balanceRepo.Create(txCtx, bal); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Client created", map[string]any{
		"client_id": client.ID,
		"email":     client.Email,
	})
	return client, nil
}

func (s *Service) rollback(ctx context.Context) {
	if err := s.uow.Rollback(ctx); err != nil {
		s.logger.Error("Failed to roll back client creation", map[string]any{
			"error": err.Error(),
		})
	}
}

// CreateUser registers a sub-user under an existing client. The sub-user
// logs in with its own credentials but operates on the parent tenant.
func (s *Service) CreateUser(ctx context.Context, clientID uint64, name, email, password string) (*entity.ClientUser, error) {
	if len(password) < 6 {
		return nil, errs.ErrValidation
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewClientUser(clientID, name, email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.clientUserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Client user created", map[string]any{
		"client_user_id": user.ID,
		"client_id":      clientID,
		"email":          user.Email,
	})
	return user, nil
}

// ListUsers returns all sub-users under a client
func (s *Service) ListUsers(ctx context.Context, clientID uint64) ([]*entity.ClientUser, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	return s.clientUserRepo.ListByClient(ctx, clientID)
}

// Get returns a single client
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Client, error) {
	if id == 0 {
		return nil, errs.ErrClientNotFound
	}
	return s.clientRepo.GetByID(ctx, id)
}

// GetOverview returns a client with its balance and contact count
func (s *Service) GetOverview(ctx context.Context, id uint64) (*Overview, error) {
	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	bal, err := s.uow.GetBalanceRepository(ctx).GetByClientID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.contactRepo.CountByClient(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Client:       client,
		Balance:      bal.Available(),
		ContactCount: count,
	}, nil
}

// Update changes a client's name, email and optionally password
func (s *Service) Update(ctx context.Context, id uint64, name, email, password string) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || len(name) > 255 || email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrValidation
	}

	client.Name = name
	client.Email = email
	if password != "" {
		if len(password) < 6 {
			return nil, errs.ErrValidation
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("%w: hashing password: %s", errs.ErrInternalServer, err.Error())
		}
		client.PasswordHash = hash
	}
	client.UpdatedAt = s.timeProvider.Now()

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client; balance, contacts, transactions and history
// cascade at the database level
func (s *Service) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrClientNotFound
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Client deleted", map[string]any{
		"client_id": id,
	})
	return nil
}

// List returns a page of clients matching the filter
func (s *Service) List(ctx context.Context, filter persistence.ClientFilter) ([]*entity.Client, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.clientRepo.List(ctx, filter)
}
