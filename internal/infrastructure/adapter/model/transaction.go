package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for credit grants
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	ClientID    uint64          `gorm:"not null;index"`
	AdminID     uint64          `gorm:"not null;index"`
	Quantity    int64           `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null;index"`

	Client Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
	Admin  Admin  `gorm:"foreignKey:AdminID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
