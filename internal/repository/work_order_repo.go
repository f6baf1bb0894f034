package repository

import (
	"context"

	"backoffice/internal/apperror"
	"backoffice/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=work_order_repo.go -destination=mocks/work_order_repo_mock.go -package=mocks

type WorkOrderRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, wo *model.WorkOrder) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.WorkOrder, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*model.WorkOrder, error)
	UpdateLifecycle(ctx context.Context, tenantID uuid.UUID, wo *model.WorkOrder) error
	UpdateTotal(ctx context.Context, tenantID, id uuid.UUID, total decimal.Decimal) error
	LinkInvoice(ctx context.Context, tenantID, id, invoiceID uuid.UUID) error
	SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error

	ListItems(ctx context.Context, tenantID, workOrderID uuid.UUID) ([]model.WorkOrderItem, error)
	CreateItem(ctx context.Context, tenantID uuid.UUID, item *model.WorkOrderItem) error
	SoftDeleteItem(ctx context.Context, tenantID, workOrderID, itemID uuid.UUID) error
}

type workOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, tenantID uuid.UUID, wo *model.WorkOrder) error {
	return createRow(ctx, r.db, tenantID, wo)
}

// FindByID loads the work order with its live items.
func (r *workOrderRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.WorkOrder, error) {
	return r.find(ctx, tenantID, id, false)
}

// FindByIDForUpdate is FindByID holding a row lock on the work order until the transaction ends.
func (r *workOrderRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*model.WorkOrder, error) {
	return r.find(ctx, tenantID, id, true)
}

func (r *workOrderRepository) find(ctx context.Context, tenantID, id uuid.UUID, lock bool) (*model.WorkOrder, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var wo model.WorkOrder
	if err := db.First(&wo, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "work order", id)
	}

	items, err := r.ListItems(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	wo.Items = items

	return &wo, nil
}

func (r *workOrderRepository) UpdateLifecycle(ctx context.Context, tenantID uuid.UUID, wo *model.WorkOrder) error {
	return r.update(ctx, tenantID, wo.ID, map[string]interface{}{
		"status":       wo.Status,
		"started_at":   wo.StartedAt,
		"completed_at": wo.CompletedAt,
	})
}

func (r *workOrderRepository) UpdateTotal(ctx context.Context, tenantID, id uuid.UUID, total decimal.Decimal) error {
	return r.update(ctx, tenantID, id, map[string]interface{}{"total_amount": total})
}

// LinkInvoice sets the back-link only while the work order has none.
func (r *workOrderRepository) LinkInvoice(ctx context.Context, tenantID, id, invoiceID uuid.UUID) error {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return err
	}

	res := db.Model(&model.WorkOrder{}).
		Where("id = ? AND invoice_id IS NULL", id).
		Update("invoice_id", invoiceID)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &apperror.ConflictError{Kind: apperror.ConflictDuplicateInvoice}
	}
	return nil
}

func (r *workOrderRepository) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error {
	return softDelete(ctx, r.db, tenantID, &model.WorkOrder{}, id, "work order")
}

func (r *workOrderRepository) update(ctx context.Context, tenantID, id uuid.UUID, fields map[string]interface{}) error {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return err
	}

	res := db.Model(&model.WorkOrder{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("work order", id)
	}
	return nil
}

func (r *workOrderRepository) ListItems(ctx context.Context, tenantID, workOrderID uuid.UUID) ([]model.WorkOrderItem, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	var items []model.WorkOrderItem
	if err := db.Where("work_order_id = ?", workOrderID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *workOrderRepository) CreateItem(ctx context.Context, tenantID uuid.UUID, item *model.WorkOrderItem) error {
	return createRow(ctx, r.db, tenantID, item)
}

// SoftDeleteItem removes an item from its work order while keeping the row for audit.
func (r *workOrderRepository) SoftDeleteItem(ctx context.Context, tenantID, workOrderID, itemID uuid.UUID) error {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return err
	}

	var item model.WorkOrderItem
	if err := db.First(&item, "id = ? AND work_order_id = ?", itemID, workOrderID).Error; err != nil {
		return notFound(err, "work order item", itemID)
	}

	return softDelete(ctx, r.db, tenantID, &model.WorkOrderItem{}, itemID, "work order item")
}
