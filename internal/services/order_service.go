package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tablehost/gin-booking-api/internal/models"
	"github.com/tablehost/gin-booking-api/internal/realtime"
)

// OrderItemInput is one requested line item. Price is the menu price the
// caller saw; it is persisted as given rather than re-read from the menu.
type OrderItemInput struct {
	MenuItemID uint    `json:"menu_item_id" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required"`
	Price      float64 `json:"price"`
}

// CreateOrderInput carries a new kitchen order. Total is trusted as sent
// and not checked against the item subtotals.
type CreateOrderInput struct {
	ReservationID uint
	UserID        uint
	RestaurantID  uint
	Total         float64
	Items         []OrderItemInput
}

// OrderService manages the kitchen order lifecycle
type OrderService interface {
	// GetAllOrders retrieves all orders
	GetAllOrders() ([]models.Order, error)
	// CreateOrder persists an order with its line items atomically
	CreateOrder(input CreateOrderInput) (*models.Order, error)
	// UpdateOrderStatus overwrites the status of an existing order
	UpdateOrderStatus(orderID uint, status string) (*models.Order, error)
}

type orderService struct {
	db        *gorm.DB
	publisher Publisher
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, publisher Publisher) OrderService {
	return &orderService{db: db, publisher: publisher}
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder writes the order header and every line item in one
// transaction: if an item insert fails no reader ever observes the order.
// The kitchen topic is notified once the commit has gone through.
func (s *orderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	order := models.Order{
		ReservationID: input.ReservationID,
		UserID:        input.UserID,
		RestaurantID:  input.RestaurantID,
		Total:         input.Total,
		Status:        models.OrderPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range input.Items {
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				Price:      item.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(realtime.KitchenTopic(order.RestaurantID), EventNewOrder, NewOrderEvent{
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Items:        input.Items,
		Total:        order.Total,
	})

	return &order, nil
}

// UpdateOrderStatus overwrites the status unconditionally; there is no
// legality check against the pending/preparing/ready/served ordering. The
// event goes to the owning customer's personal topic, not the kitchen.
func (s *orderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Order not found")
		}
		return nil, err
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status

	s.publisher.Publish(realtime.UserTopic(order.UserID), EventOrderStatusUpdated, OrderStatusUpdatedEvent{
		OrderID: order.ID,
		Status:  order.Status,
	})

	return &order, nil
}
