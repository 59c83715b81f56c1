package model

import (
	"time"
)

// Contact represents the database model for a client's contacts.
// Phone numbers are unique per client.
type Contact struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ClientID  uint64    `gorm:"not null;uniqueIndex:idx_contacts_client_phone"`
	Name      string    `gorm:"not null;size:255"`
	Phone     string    `gorm:"not null;size:25;uniqueIndex:idx_contacts_client_phone"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Client Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
