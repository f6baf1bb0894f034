package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/apperror"
	"backoffice/internal/ledger"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CreateWorkOrderRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	LocationID  string `json:"location_id" binding:"required"`
	Description string `json:"description"`
}

type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Draft InProgress OnHold Completed Cancelled"`
}

type AddWorkOrderItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    string `json:"quantity" binding:"required"`
	UnitPrice   string `json:"unit_price" binding:"required"`
	TaxRate     string `json:"tax_rate"` // percent, defaults to 0
}

type WorkOrderItemResponse struct {
	ID          string `json:"id"`
	WorkOrderID string `json:"work_order_id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TaxRate     string `json:"tax_rate"`
	TotalAmount string `json:"total_amount"`
}

type WorkOrderResponse struct {
	ID          string                  `json:"id"`
	CustomerID  string                  `json:"customer_id"`
	LocationID  string                  `json:"location_id"`
	Status      string                  `json:"status"`
	Description string                  `json:"description"`
	TotalAmount string                  `json:"total_amount"`
	StartedAt   *string                 `json:"started_at"`
	CompletedAt *string                 `json:"completed_at"`
	InvoiceID   *string                 `json:"invoice_id"`
	Items       []WorkOrderItemResponse `json:"items"`
	CreatedAt   string                  `json:"created_at"`
}

// --- Interface ---

type WorkOrderService interface {
	CreateWorkOrder(ctx context.Context, tenantID uuid.UUID, req CreateWorkOrderRequest) (WorkOrderResponse, error)
	GetWorkOrder(ctx context.Context, tenantID uuid.UUID, id string) (WorkOrderResponse, error)
	UpdateWorkOrderStatus(ctx context.Context, tenantID uuid.UUID, id string, status string) (WorkOrderResponse, error)
	DeleteWorkOrder(ctx context.Context, tenantID uuid.UUID, id string) error
	AddItem(ctx context.Context, tenantID uuid.UUID, workOrderID string, req AddWorkOrderItemRequest) (WorkOrderItemResponse, error)
	RemoveItem(ctx context.Context, tenantID uuid.UUID, workOrderID, itemID string) error
}

type workOrderService struct {
	workOrderRepo repository.WorkOrderRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
	events        EventPublisher
}

func NewWorkOrderService(
	workOrderRepo repository.WorkOrderRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) WorkOrderService {
	return &workOrderService{
		workOrderRepo: workOrderRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		events:        events,
	}
}

// workOrderTransitions maps a target status to the statuses it may be reached from.
// Completed and Cancelled are final.
var workOrderTransitions = map[string][]string{
	model.WorkOrderInProgress: {model.WorkOrderDraft, model.WorkOrderOnHold},
	model.WorkOrderOnHold:     {model.WorkOrderInProgress},
	model.WorkOrderCompleted:  {model.WorkOrderInProgress},
	model.WorkOrderCancelled:  {model.WorkOrderDraft, model.WorkOrderInProgress, model.WorkOrderOnHold},
}

// --- Implementation ---

func (s *workOrderService) CreateWorkOrder(ctx context.Context, tenantID uuid.UUID, req CreateWorkOrderRequest) (WorkOrderResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return WorkOrderResponse{}, err
	}

	wo := model.WorkOrder{
		Status:      model.WorkOrderDraft,
		Description: req.Description,
		TotalAmount: decimal.Zero,
	}
	wo.ID = uuid.New()

	var err error
	if wo.CustomerID, err = parseID("customer_id", req.CustomerID); err != nil {
		return WorkOrderResponse{}, err
	}
	if wo.LocationID, err = parseID("location_id", req.LocationID); err != nil {
		return WorkOrderResponse{}, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.workOrderRepo.Create(txCtx, tenantID, &wo); err != nil {
			return fmt.Errorf("failed to create work order: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionCreateWorkOrder, wo.ID.String(), wo.Description, req)
	})
	if err != nil {
		return WorkOrderResponse{}, err
	}

	resp := toWorkOrderResponse(wo)
	s.events.Publish(tenantID, EventWorkOrderChanged, resp)
	return resp, nil
}

func (s *workOrderService) GetWorkOrder(ctx context.Context, tenantID uuid.UUID, id string) (WorkOrderResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return WorkOrderResponse{}, err
	}
	woID, err := parseID("id", id)
	if err != nil {
		return WorkOrderResponse{}, err
	}

	wo, err := s.workOrderRepo.FindByID(ctx, tenantID, woID)
	if err != nil {
		return WorkOrderResponse{}, err
	}
	return toWorkOrderResponse(*wo), nil
}

// UpdateWorkOrderStatus moves the work order along its lifecycle. StartedAt and CompletedAt are
// stamped on the first entry into InProgress and Completed and never overwritten.
func (s *workOrderService) UpdateWorkOrderStatus(ctx context.Context, tenantID uuid.UUID, id string, status string) (WorkOrderResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return WorkOrderResponse{}, err
	}
	woID, err := parseID("id", id)
	if err != nil {
		return WorkOrderResponse{}, err
	}

	sources, ok := workOrderTransitions[status]
	if !ok && status != model.WorkOrderDraft {
		return WorkOrderResponse{}, apperror.Validation("status", "unknown work order status")
	}

	var wo *model.WorkOrder
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		wo, findErr = s.workOrderRepo.FindByIDForUpdate(txCtx, tenantID, woID)
		if findErr != nil {
			return findErr
		}

		if !containsStatus(sources, wo.Status) {
			expected := "none"
			if len(sources) > 0 {
				expected = strings.Join(sources, " or ")
			}
			return &apperror.StateError{Expected: expected, Actual: wo.Status}
		}

		previous := wo.Status
		now := time.Now().UTC()
		wo.Status = status
		if status == model.WorkOrderInProgress && wo.StartedAt == nil {
			wo.StartedAt = &now
		}
		if status == model.WorkOrderCompleted && wo.CompletedAt == nil {
			wo.CompletedAt = &now
		}

		if err := s.workOrderRepo.UpdateLifecycle(txCtx, tenantID, wo); err != nil {
			return fmt.Errorf("failed to update work order: %w", err)
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionUpdateWorkOrderStatus, wo.ID.String(), wo.Description, map[string]string{
			"from": previous,
			"to":   status,
		})
	})
	if err != nil {
		return WorkOrderResponse{}, err
	}

	resp := toWorkOrderResponse(*wo)
	s.events.Publish(tenantID, EventWorkOrderChanged, resp)
	return resp, nil
}

func (s *workOrderService) DeleteWorkOrder(ctx context.Context, tenantID uuid.UUID, id string) error {
	if err := tenant.Check(tenantID); err != nil {
		return err
	}
	woID, err := parseID("id", id)
	if err != nil {
		return err
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		wo, err := s.workOrderRepo.FindByIDForUpdate(txCtx, tenantID, woID)
		if err != nil {
			return err
		}
		if wo.InvoiceID != nil {
			return &apperror.StateError{Expected: "not invoiced", Actual: "invoiced"}
		}

		if err := s.workOrderRepo.SoftDelete(txCtx, tenantID, woID); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionDeleteWorkOrder, woID.String(), wo.Description, nil)
	})
}

// AddItem validates the line through the ledger, appends it and recomputes the work order total
// in the same transaction.
func (s *workOrderService) AddItem(ctx context.Context, tenantID uuid.UUID, workOrderID string, req AddWorkOrderItemRequest) (WorkOrderItemResponse, error) {
	if err := tenant.Check(tenantID); err != nil {
		return WorkOrderItemResponse{}, err
	}
	woID, err := parseID("work_order_id", workOrderID)
	if err != nil {
		return WorkOrderItemResponse{}, err
	}

	item := model.WorkOrderItem{WorkOrderID: woID, Description: req.Description, TaxRate: decimal.Zero}
	item.ID = uuid.New()

	if item.Quantity, err = parseDecimal("quantity", req.Quantity); err != nil {
		return WorkOrderItemResponse{}, err
	}
	if item.UnitPrice, err = parseDecimal("unit_price", req.UnitPrice); err != nil {
		return WorkOrderItemResponse{}, err
	}
	if req.TaxRate != "" {
		if item.TaxRate, err = parseDecimal("tax_rate", req.TaxRate); err != nil {
			return WorkOrderItemResponse{}, err
		}
	}
	total, err := ledger.ItemTotal(item.Quantity, item.UnitPrice, item.TaxRate)
	if err != nil {
		return WorkOrderItemResponse{}, err
	}
	item.TotalAmount = ledger.Round(total)

	var wo *model.WorkOrder
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		wo, findErr = s.workOrderRepo.FindByIDForUpdate(txCtx, tenantID, woID)
		if findErr != nil {
			return findErr
		}

		if err := s.workOrderRepo.CreateItem(txCtx, tenantID, &item); err != nil {
			return fmt.Errorf("failed to add work order item: %w", err)
		}
		wo.Items = append(wo.Items, item)

		if err := s.recomputeTotal(txCtx, tenantID, wo); err != nil {
			return err
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionAddWorkOrderItem, wo.ID.String(), item.Description, req)
	})
	if err != nil {
		return WorkOrderItemResponse{}, err
	}

	s.events.Publish(tenantID, EventWorkOrderChanged, toWorkOrderResponse(*wo))
	return toWorkOrderItemResponse(item), nil
}

// RemoveItem soft-deletes one item of the work order and recomputes the total.
func (s *workOrderService) RemoveItem(ctx context.Context, tenantID uuid.UUID, workOrderID, itemID string) error {
	if err := tenant.Check(tenantID); err != nil {
		return err
	}
	woID, err := parseID("work_order_id", workOrderID)
	if err != nil {
		return err
	}
	itmID, err := parseID("item_id", itemID)
	if err != nil {
		return err
	}

	var wo *model.WorkOrder
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		wo, findErr = s.workOrderRepo.FindByIDForUpdate(txCtx, tenantID, woID)
		if findErr != nil {
			return findErr
		}

		remaining := make([]model.WorkOrderItem, 0, len(wo.Items))
		var removed *model.WorkOrderItem
		for i := range wo.Items {
			if wo.Items[i].ID == itmID {
				removed = &wo.Items[i]
				continue
			}
			remaining = append(remaining, wo.Items[i])
		}
		if removed == nil {
			return apperror.NotFound("work order item", itmID)
		}

		if err := s.workOrderRepo.SoftDeleteItem(txCtx, tenantID, woID, itmID); err != nil {
			return err
		}
		description := removed.Description
		wo.Items = remaining

		if err := s.recomputeTotal(txCtx, tenantID, wo); err != nil {
			return err
		}

		return writeAudit(txCtx, s.auditRepo, tenantID, model.ActionRemoveWorkOrderItem, wo.ID.String(), description, map[string]string{
			"item_id": itmID.String(),
		})
	})
	if err != nil {
		return err
	}

	s.events.Publish(tenantID, EventWorkOrderChanged, toWorkOrderResponse(*wo))
	return nil
}

// --- Helpers ---

func (s *workOrderService) recomputeTotal(ctx context.Context, tenantID uuid.UUID, wo *model.WorkOrder) error {
	totals, err := ledger.AggregateTotals(workOrderLines(wo.Items))
	if err != nil {
		return err
	}

	wo.TotalAmount = totals.Rounded().Total
	if err := s.workOrderRepo.UpdateTotal(ctx, tenantID, wo.ID, wo.TotalAmount); err != nil {
		return fmt.Errorf("failed to update work order total: %w", err)
	}
	return nil
}

func workOrderLines(items []model.WorkOrderItem) []ledger.Line {
	lines := make([]ledger.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, ledger.Line{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			TaxRate:   it.TaxRate,
			Deleted:   it.IsDeleted,
		})
	}
	return lines
}

// --- Mapping ---

func toWorkOrderItemResponse(it model.WorkOrderItem) WorkOrderItemResponse {
	return WorkOrderItemResponse{
		ID:          it.ID.String(),
		WorkOrderID: it.WorkOrderID.String(),
		Description: it.Description,
		Quantity:    it.Quantity.String(),
		UnitPrice:   it.UnitPrice.StringFixed(2),
		TaxRate:     it.TaxRate.String(),
		TotalAmount: it.TotalAmount.StringFixed(2),
	}
}

func toWorkOrderResponse(wo model.WorkOrder) WorkOrderResponse {
	items := make([]WorkOrderItemResponse, 0, len(wo.Items))
	for _, it := range wo.Items {
		if it.IsDeleted {
			continue
		}
		items = append(items, toWorkOrderItemResponse(it))
	}

	return WorkOrderResponse{
		ID:          wo.ID.String(),
		CustomerID:  wo.CustomerID.String(),
		LocationID:  wo.LocationID.String(),
		Status:      wo.Status,
		Description: wo.Description,
		TotalAmount: wo.TotalAmount.StringFixed(2),
		StartedAt:   timeString(wo.StartedAt),
		CompletedAt: timeString(wo.CompletedAt),
		InvoiceID:   idString(wo.InvoiceID),
		Items:       items,
		CreatedAt:   wo.CreatedAt.Format(timeLayout),
	}
}
