package model

import (
	"time"

	"github.com/google/uuid"
)

// SequenceKind enum constants; the kind is also the document number prefix.
const (
	SequenceInvoice = "INV"
	SequencePayment = "PAY"
)

// DocumentSequence is the last number handed out for a tenant, document kind and day.
type DocumentSequence struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(10);primaryKey"`
	Day       string    `gorm:"type:char(8);primaryKey"` // yyyyMMdd
	LastValue int64     `gorm:"not null"`
	UpdatedAt time.Time
}
