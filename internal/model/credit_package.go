package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditPackage is a purchasable bundle of class credits.
type CreditPackage struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CreditAmount int             `json:"credit_amount"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"createdAt"`
}
