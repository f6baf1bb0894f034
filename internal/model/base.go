package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenanted is implemented by every row that belongs to exactly one tenant.
type Tenanted interface {
	GetTenantID() uuid.UUID
	SetTenantID(id uuid.UUID)
}

// TenantModel is embedded in all tenant-owned entities. Rows are never physically deleted:
// IsDeleted and DeletedAt are set together and gorm hides such rows from default queries.
type TenantModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	IsDeleted bool           `gorm:"not null;default:false" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *TenantModel) GetTenantID() uuid.UUID { return m.TenantID }

func (m *TenantModel) SetTenantID(id uuid.UUID) { m.TenantID = id }
