package models

import (
	"time"
)

// Order statuses in kitchen lifecycle order. Status updates overwrite
// unconditionally; there is no legality check against this ordering.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
)

type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReservationID uint      `gorm:"index;not null" json:"reservation_id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	RestaurantID  uint      `gorm:"index;not null" json:"restaurant_id"`
	Total         float64   `gorm:"not null" json:"total"`
	Status        string    `gorm:"default:'pending'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderItem captures quantity and the menu price at order time. The price
// is copied, not re-derived, so later menu edits never rewrite history.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index;not null" json:"order_id"`
	MenuItemID uint    `gorm:"not null" json:"menu_item_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      float64 `gorm:"not null" json:"price"`
}
