package services

// Event names published by the service layer.
const (
	EventNewReservation     = "new_reservation"
	EventNewOrder           = "new_order"
	EventOrderStatusUpdated = "order_status_updated"
)

// Publisher fans a named event out to every subscriber of a topic. The
// realtime hub implements it. Services publish only after the triggering
// write has committed; a delivery failure never rolls the write back.
type Publisher interface {
	Publish(topic string, event string, data interface{})
}

// NewReservationEvent goes to the restaurant staff topic when a booking
// is created.
type NewReservationEvent struct {
	ReservationID uint   `json:"reservation_id"`
	RestaurantID  uint   `json:"restaurant_id"`
	UserName      string `json:"user_name"`
	Guests        int    `json:"guests"`
	Time          string `json:"time"`
	Date          string `json:"date"`
}

// NewOrderEvent goes to the kitchen topic when an order is placed. Items
// echo the request payload so the kitchen display needs no extra read.
type NewOrderEvent struct {
	OrderID      uint             `json:"order_id"`
	RestaurantID uint             `json:"restaurant_id"`
	Items        []OrderItemInput `json:"items"`
	Total        float64          `json:"total"`
}

// OrderStatusUpdatedEvent goes to the owning customer's personal topic,
// not the restaurant or kitchen.
type OrderStatusUpdatedEvent struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}
