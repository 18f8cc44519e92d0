package realtime

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Topic names. Three families, parameterized by id: staff dashboards watch
// restaurant_<id>, kitchen displays watch kitchen_<id>, and each customer
// watches their personal user_<id> feed.

// RestaurantTopic returns the staff dashboard topic for a restaurant
func RestaurantTopic(restaurantID uint) string {
	return fmt.Sprintf("restaurant_%d", restaurantID)
}

// KitchenTopic returns the kitchen display topic for a restaurant
func KitchenTopic(restaurantID uint) string {
	return fmt.Sprintf("kitchen_%d", restaurantID)
}

// UserTopic returns the personal feed topic for a user
func UserTopic(userID uint) string {
	return fmt.Sprintf("user_%d", userID)
}

// Conn is one subscribed connection. *websocket.Conn satisfies it; tests
// substitute fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Envelope is the outbound wire shape for every published event.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub maps topic names to the set of currently subscribed connections and
// fans published events out to them. Membership is in-memory and process
// local: it starts empty on boot and subscribers rejoin after reconnect.
// Delivery is at-most-once and best effort; a failed write drops the
// connection from every topic and is never retried.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[Conn]bool
}

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Conn]bool),
	}
}

// Join subscribes conn to topic. There is no authorization binding a
// connection to the id it asks for; any connection may join any topic.
func (h *Hub) Join(topic string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[topic] == nil {
		h.rooms[topic] = make(map[Conn]bool)
	}
	h.rooms[topic][conn] = true

	log.WithField("topic", topic).Debug("Connection joined topic")
}

// Remove drops conn from every topic it joined. Called on disconnect.
func (h *Hub) Remove(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, members := range h.rooms {
		if members[conn] {
			delete(members, conn)
			if len(members) == 0 {
				delete(h.rooms, topic)
			}
		}
	}
}

// Publish delivers the named event to every connection currently in topic.
// Callers invoke it only after the triggering write has committed, so an
// event never describes state that was rolled back. A write failure closes
// and evicts the connection; it does not affect the triggering request.
func (h *Hub) Publish(topic string, event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	envelope := Envelope{Event: event, Data: data}
	for conn := range h.rooms[topic] {
		if err := conn.WriteJSON(envelope); err != nil {
			log.WithFields(logrus.Fields{
				"topic": topic,
				"event": event,
			}).WithError(err).Warn("Dropping subscriber after failed write")
			conn.Close()
			delete(h.rooms[topic], conn)
		}
	}

	log.WithFields(logrus.Fields{
		"topic": topic,
		"event": event,
	}).Debug("Event published")
}

// Subscribers reports how many connections are currently in topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[topic])
}
