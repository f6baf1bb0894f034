package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderStatus enum constants
const (
	WorkOrderDraft      = "Draft"
	WorkOrderInProgress = "InProgress"
	WorkOrderOnHold     = "OnHold"
	WorkOrderCompleted  = "Completed"
	WorkOrderCancelled  = "Cancelled"
)

// WorkOrder accumulates billable items for a customer until it is invoiced.
// TotalAmount is a cache of the ledger total over the non-deleted items.
type WorkOrder struct {
	TenantModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	LocationID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"location_id"`
	Status      string          `gorm:"type:varchar(20);not null;default:'Draft';index" json:"status"`
	Description string          `gorm:"type:text" json:"description"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total_amount"`
	StartedAt   *time.Time      `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at"`
	InvoiceID   *uuid.UUID      `gorm:"type:uuid" json:"invoice_id"`
	Items       []WorkOrderItem `gorm:"foreignKey:WorkOrderID" json:"items"`
}

// WorkOrderItem is a line on a work order. Removal is a soft delete so the audit trail survives.
type WorkOrderItem struct {
	TenantModel
	WorkOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"work_order_id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0" json:"tax_rate"` // percent, 8 = 8%
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"`
}
