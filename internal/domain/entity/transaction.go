package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
)

// Transaction is an administrator-initiated credit grant. It is immutable
// once created and is the sole path that increases a client's balance: the
// credit by Quantity is applied in the same durable unit as the row insert.
type Transaction struct {
	ID          uint64
	ClientID    uint64
	AdminID     uint64
	Quantity    int64
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a credit grant with validation
func NewTransaction(
	clientID uint64,
	adminID uint64,
	quantity int64,
	amount decimal.Decimal,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if clientID == 0 {
		return nil, errs.ErrClientNotFound
	}
	if adminID == 0 {
		return nil, errs.ErrAdminNotFound
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	if amount.IsNegative() {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		ClientID:    clientID,
		AdminID:     adminID,
		Quantity:    quantity,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// ParseAmount validates and converts a decimal amount string
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, errs.ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, errs.ErrInvalidAmount
	}
	return d, nil
}
