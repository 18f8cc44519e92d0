package models

// Table statuses. The status column is advisory display state only: the
// authoritative double-booking check is computed from reservation rows,
// so a table marked "available" can still be booked out for a given slot.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

type Table struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"index;not null" json:"restaurant_id"`
	TableNumber  string `gorm:"not null" json:"table_number"`
	Capacity     int    `gorm:"not null" json:"capacity"`
	Status       string `gorm:"default:'available'" json:"status"`
}

// TableName avoids the reserved SQL keyword "table".
func (Table) TableName() string {
	return "dining_tables"
}
