package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablehost/gin-booking-api/internal/services"
)

// OrderController handles HTTP requests for kitchen orders
type OrderController interface {
	// GetAllOrders retrieves all orders
	GetAllOrders(ctx *gin.Context)
	// CreateOrder places a new order with its line items
	CreateOrder(ctx *gin.Context)
	// UpdateOrderStatus overwrites the status of an order
	UpdateOrderStatus(ctx *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// CreateOrderRequest is the order payload. The total is trusted as sent.
type CreateOrderRequest struct {
	ReservationID uint                      `json:"reservation_id" binding:"required"`
	UserID        uint                      `json:"user_id" binding:"required"`
	RestaurantID  uint                      `json:"restaurant_id" binding:"required"`
	Total         float64                   `json:"total" binding:"required"`
	Items         []services.OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest carries the new status value
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description List every order, unfiltered
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} map[string]string
// @Router /api/orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// CreateOrder godoc
// @Summary Create an order
// @Description Persist an order and its line items atomically, then notify the kitchen
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := c.service.CreateOrder(services.CreateOrderInput{
		ReservationID: req.ReservationID,
		UserID:        req.UserID,
		RestaurantID:  req.RestaurantID,
		Total:         req.Total,
		Items:         req.Items,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Order created successfully",
		"order_id": order.ID,
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Overwrite the status of an order and notify the owning customer
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body UpdateOrderStatusRequest true "Status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/orders/{id}/status [put]
func (c *orderController) UpdateOrderStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := c.service.UpdateOrderStatus(id, req.Status); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
