package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod enum constants
const (
	PaymentCash         = "Cash"
	PaymentCard         = "Card"
	PaymentBankTransfer = "BankTransfer"
	PaymentCheck        = "Check"
	PaymentOther        = "Other"
)

// Payment is money received against a single invoice.
type Payment struct {
	TenantModel
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	PaymentNumber string          `gorm:"type:varchar(30);not null" json:"payment_number"` // unique per tenant
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	Method        string          `gorm:"type:varchar(20);not null" json:"method"`
	Reference     string          `gorm:"type:varchar(100)" json:"reference"`
	Notes         string          `gorm:"type:text" json:"notes"`
	PaidAt        time.Time       `gorm:"not null" json:"paid_at"`
}

// IsPaymentMethod reports whether m is one of the accepted payment methods.
func IsPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentCheck, PaymentOther:
		return true
	}
	return false
}
