package handler

import (
	"net/http"

	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	workOrderService service.WorkOrderService
}

func NewWorkOrderHandler(workOrderService service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderService: workOrderService}
}

func (h *WorkOrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	workOrders := router.Group("/api/work-orders")
	{
		workOrders.POST("", h.CreateWorkOrder)
		workOrders.GET("/:id", h.GetWorkOrder)
		workOrders.PATCH("/:id/status", h.UpdateWorkOrderStatus)
		workOrders.DELETE("/:id", h.DeleteWorkOrder)
		workOrders.POST("/:id/items", h.AddItem)
		workOrders.DELETE("/:id/items/:itemId", h.RemoveItem)
	}
}

// CreateWorkOrder opens a draft work order
// @Summary      Create work order
// @Tags         work-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateWorkOrderRequest  true  "Create Work Order Payload"
// @Success      201      {object}  response.Response{data=service.WorkOrderResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	wo, err := h.workOrderService.CreateWorkOrder(c.Request.Context(), tenantID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, wo))
}

// GetWorkOrder returns a work order with its live items
// @Summary      Get work order
// @Tags         work-orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Work Order ID"
// @Success      200  {object}  response.Response{data=service.WorkOrderResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	wo, err := h.workOrderService.GetWorkOrder(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, wo))
}

// UpdateWorkOrderStatus moves a work order through its lifecycle
// @Summary      Update work order status
// @Tags         work-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                                true  "Work Order ID"
// @Param        payload  body      service.UpdateWorkOrderStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=service.WorkOrderResponse}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateWorkOrderStatus(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	wo, err := h.workOrderService.UpdateWorkOrderStatus(c.Request.Context(), tenantID, c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, wo))
}

// DeleteWorkOrder soft-deletes a work order that has not been invoiced
// @Summary      Delete work order
// @Tags         work-orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Work Order ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /api/work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.workOrderService.DeleteWorkOrder(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Work order deleted"}))
}

// AddItem appends a line item and recomputes the work order total
// @Summary      Add work order item
// @Tags         work-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Work Order ID"
// @Param        payload  body      service.AddWorkOrderItemRequest  true  "Item Payload"
// @Success      201      {object}  response.Response{data=service.WorkOrderItemResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/work-orders/{id}/items [post]
func (h *WorkOrderHandler) AddItem(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req service.AddWorkOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	item, err := h.workOrderService.AddItem(c.Request.Context(), tenantID, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// RemoveItem soft-deletes a line item and recomputes the work order total
// @Summary      Remove work order item
// @Tags         work-orders
// @Security     BearerAuth
// @Produce      json
// @Param        id      path      string  true  "Work Order ID"
// @Param        itemId  path      string  true  "Item ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/work-orders/{id}/items/{itemId} [delete]
func (h *WorkOrderHandler) RemoveItem(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.workOrderService.RemoveItem(c.Request.Context(), tenantID, c.Param("id"), c.Param("itemId")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Item removed"}))
}
