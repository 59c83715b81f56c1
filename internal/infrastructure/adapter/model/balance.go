package model

import (
	"time"
)

// Balance represents the database model for a client's SMS credit.
// The check constraint backs the domain invariant as a last line of defense;
// the repositories never write a negative value.
type Balance struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ClientID  uint64    `gorm:"uniqueIndex;not null"`
	Available int64     `gorm:"not null;default:0;check:available >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Client Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "sms_balances"
}
