package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"qr-dine/models"
	"qr-dine/stores"
)

type OrderController struct {
	orderStore *stores.OrderStore
}

func NewOrderController(orderStore *stores.OrderStore) *OrderController {
	return &OrderController{orderStore: orderStore}
}

// @Summary Get all orders
// @Description Get the live order list, newest first (Admin). The list is kept fresh by the change-feed subscription; pass refresh=true to force a refetch.
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param refresh query bool false "Force a refetch from the store"
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	if c.Query("refresh") == "true" {
		if err := ctrl.orderStore.FetchOrders(c.Request.Context()); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch orders: " + err.Error()})
			return
		}
	}

	c.JSON(200, gin.H{
		"success":    true,
		"message":    "Orders retrieved",
		"data":       ctrl.orderStore.Orders(),
		"is_loading": ctrl.orderStore.IsLoading(),
		"error":      ctrl.orderStore.Err(),
	})
}

// @Summary Get order by ID
// @Description Look up an order in the local cache (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, ok := ctrl.orderStore.GetOrderByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Update order status
// @Description Move an order along Pending → Preparing → Served, or cancel it from Pending/Preparing (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	err := ctrl.orderStore.UpdateOrderStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrUnknownStatus):
			c.JSON(400, gin.H{"success": false, "message": "Unknown order status: " + req.Status})
		case errors.Is(err, stores.ErrIllegalTransition):
			c.JSON(409, gin.H{"success": false, "message": "Illegal status transition"})
		case errors.Is(err, stores.ErrOrderNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found or not in an updatable state"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order status: " + err.Error()})
		}
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data":    gin.H{"id": id, "status": req.Status},
	})
}
