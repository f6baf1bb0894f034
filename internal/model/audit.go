package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateAppointment       = "CREATE_APPOINTMENT"
	ActionUpdateAppointment       = "UPDATE_APPOINTMENT"
	ActionUpdateAppointmentStatus = "UPDATE_APPOINTMENT_STATUS"
	ActionDeleteAppointment       = "DELETE_APPOINTMENT"
	ActionCreateWorkOrder         = "CREATE_WORK_ORDER"
	ActionUpdateWorkOrderStatus   = "UPDATE_WORK_ORDER_STATUS"
	ActionDeleteWorkOrder         = "DELETE_WORK_ORDER"
	ActionAddWorkOrderItem        = "ADD_WORK_ORDER_ITEM"
	ActionRemoveWorkOrderItem     = "REMOVE_WORK_ORDER_ITEM"

	// Billing actions
	ActionCreateInvoiceFromWorkOrder = "CREATE_INVOICE_FROM_WORK_ORDER"
	ActionMarkInvoiceOverdue         = "MARK_INVOICE_OVERDUE"
	ActionRecordPayment              = "RECORD_PAYMENT"
)

// AuditLog tracks Who, What, and When for critical changes within a tenant
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // nil for scheduled jobs
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // invoice number, appointment window...
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (a *AuditLog) GetTenantID() uuid.UUID { return a.TenantID }

func (a *AuditLog) SetTenantID(id uuid.UUID) { a.TenantID = id }
