package models

type MenuItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RestaurantID uint    `gorm:"index;not null" json:"restaurant_id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Category     string  `json:"category"`
	// plain bool on purpose: a default-valued gorm tag would rewrite an
	// explicit false on insert
	IsAvailable bool `json:"is_available"`
}
