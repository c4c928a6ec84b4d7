package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qrobotics/storefront-api/internal/service"
	"github.com/qrobotics/storefront-api/internal/utils"
)

// OrderHandler handles order HTTP endpoints.
type OrderHandler struct {
	orderService *service.OrderService
	env          string
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService *service.OrderService, env string) *OrderHandler {
	return &OrderHandler{orderService: orderService, env: env}
}

// ListOrders handles GET /v1/admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Orders retrieved", orders)
}

// GetOrder handles GET /v1/admin/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Order retrieved", order)
}

// UpdateOrderStatus handles PUT /v1/admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid order ID")
		return
	}

	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		utils.RespondError(c, err, h.env)
		return
	}
	utils.Success(c, 200, "Order updated successfully", nil)
}
