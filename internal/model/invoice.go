package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus enum constants
const (
	InvoiceDraft         = "Draft"
	InvoicePending       = "Pending"
	InvoicePartiallyPaid = "PartiallyPaid"
	InvoicePaid          = "Paid"
	InvoiceOverdue       = "Overdue"
	InvoiceCancelled     = "Cancelled"
)

// Invoice is issued once per completed work order and owns a snapshot of its items.
type Invoice struct {
	TenantModel
	InvoiceNumber  string          `gorm:"type:varchar(30);not null" json:"invoice_number"` // unique per tenant
	WorkOrderID    *uuid.UUID      `gorm:"type:uuid" json:"work_order_id"`                  // unique among live rows, see database.applyConstraints
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	SubTotal       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"sub_total"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"` // sub_total + tax_amount - discount_amount
	PaidAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"paid_amount"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	IssuedAt       time.Time       `gorm:"not null" json:"issued_at"`
	DueDate        time.Time       `gorm:"not null;index" json:"due_date"`
	Notes          string          `gorm:"type:text" json:"notes"`
	Items          []InvoiceItem   `gorm:"foreignKey:InvoiceID" json:"items"`
}

// Balance is what is still owed on the invoice.
func (i *Invoice) Balance() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// InvoiceItem is a copy of a work order item taken when the invoice was created.
type InvoiceItem struct {
	TenantModel
	InvoiceID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	SourceItemID *uuid.UUID      `gorm:"type:uuid" json:"source_item_id"`
	Description  string          `gorm:"type:varchar(255);not null" json:"description"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	TaxRate      decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0" json:"tax_rate"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"`
}
