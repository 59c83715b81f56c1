package model

import (
	"time"
)

// HistoryEntry represents the database model for aggregate dispatch records
type HistoryEntry struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	ClientID       uint64    `gorm:"not null;index"`
	Message        string    `gorm:"type:text;not null"`
	RecipientCount int64     `gorm:"not null"`
	CreditsUsed    int64     `gorm:"not null"`
	Status         string    `gorm:"not null;size:20"`
	SentAt         time.Time `gorm:"not null;index"`

	Client Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for HistoryEntry
func (HistoryEntry) TableName() string {
	return "sms_history"
}
