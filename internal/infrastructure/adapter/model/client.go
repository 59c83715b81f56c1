package model

import (
	"time"
)

// Client represents the database model for clients (tenants)
type Client struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// ClientUser represents the database model for client sub-users.
// Emails are unique across all sub-users, not per client.
type ClientUser struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	ClientID     uint64    `gorm:"not null;index"`
	Name         string    `gorm:"size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	Client Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ClientUser
func (ClientUser) TableName() string {
	return "client_users"
}

// Admin represents the database model for administrators
type Admin struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
