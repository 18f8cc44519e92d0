package models

import (
	"time"
)

// Restaurant is the root of a tenant partition: tables, reservations,
// menu items and orders all hang off exactly one restaurant.
type Restaurant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `gorm:"not null" json:"address"`
	Cuisine      string    `json:"cuisine"`
	Description  string    `json:"description"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	OpeningHours string    `json:"opening_hours"`
	CreatedAt    time.Time `json:"-"`
}
