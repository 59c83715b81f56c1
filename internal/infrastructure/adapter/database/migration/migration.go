package migration

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/model"
)

// Manager runs schema migrations and seed data
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll creates or updates the schema for every model
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	err := m.db.AutoMigrate(
		&model.Admin{},
		&model.Client{},
		&model.ClientUser{},
		&model.Balance{},
		&model.Transaction{},
		&model.Contact{},
		&model.HistoryEntry{},
	)
	if err != nil {
		m.logger.Error("Failed to migrate models", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// SeedDefaultAdmin inserts the bootstrap admin account if no admin with the
// given email exists. The password arrives already hashed.
func (m *Manager) SeedDefaultAdmin(name, email, passwordHash string) error {
	var count int64
	if err := m.db.Model(&model.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := m.timeProvider.Now()
	admin := model.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	m.logger.Info("Seeded default admin account", map[string]any{"email": email})
	return nil
}
