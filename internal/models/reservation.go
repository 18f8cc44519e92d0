package models

import (
	"time"
)

// Reservation statuses. confirmed is the initial state; cancelled and
// completed are terminal. Transitions are not guarded (see update handler).
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Reservation holds one table for one exact (date, time) slot. The slot is
// matched by string equality only: there is no duration reasoning, so
// "18:00" and "18:30" never conflict even for a two-hour sitting.
//
// The composite unique index backstops the availability check: if two
// creates race for the same slot, the second insert fails at the store
// instead of producing a duplicate row.
type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TableID         uint      `gorm:"not null;uniqueIndex:idx_reservation_slot" json:"table_id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	RestaurantID    uint      `gorm:"index;not null" json:"restaurant_id"`
	ReservationDate string    `gorm:"not null;uniqueIndex:idx_reservation_slot" json:"reservation_date"`
	ReservationTime string    `gorm:"not null;uniqueIndex:idx_reservation_slot" json:"reservation_time"`
	Guests          int       `gorm:"not null" json:"guests"`
	Status          string    `gorm:"default:'confirmed'" json:"status"`
	SpecialRequests string    `json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
}
