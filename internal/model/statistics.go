package model

import (
	"github.com/shopspring/decimal"
)

// InvoiceStatusSummary aggregates the invoices of one status.
type InvoiceStatusSummary struct {
	Status      string          `gorm:"column:status"`
	Count       int64           `gorm:"column:count"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount"`
	PaidAmount  decimal.Decimal `gorm:"column:paid_amount"`
}

// CollectionPeriod is the money received in one day or month.
type CollectionPeriod struct {
	Period   string          `gorm:"column:period"`
	Payments int64           `gorm:"column:payments"`
	Amount   decimal.Decimal `gorm:"column:amount"`
}
