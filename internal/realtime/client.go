package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// join actions accepted on the websocket. There is no leave action;
// membership lasts until the connection drops.
const (
	ActionJoinRestaurant = "join_restaurant"
	ActionJoinKitchen    = "join_kitchen"
	ActionJoinUser       = "join_user"
)

// joinRequest is the inbound message shape. restaurant_id applies to the
// restaurant and kitchen actions, user_id to join_user.
type joinRequest struct {
	Action       string `json:"action"`
	RestaurantID uint   `json:"restaurant_id"`
	UserID       uint   `json:"user_id"`
}

// HandleWebSocket upgrades GET /ws and serves the join protocol until the
// client disconnects. Event delivery happens out of band via Hub.Publish.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	connID := uuid.NewString()
	log.WithField("conn_id", connID).Info("Client connected")

	defer func() {
		h.Remove(conn)
		conn.Close()
		log.WithField("conn_id", connID).Info("Client disconnected")
	}()

	for {
		var req joinRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("conn_id", connID).WithError(err).Warn("Websocket read error")
			}
			return
		}

		switch req.Action {
		case ActionJoinRestaurant:
			h.Join(RestaurantTopic(req.RestaurantID), conn)
			log.WithFields(logrus.Fields{
				"conn_id":       connID,
				"restaurant_id": req.RestaurantID,
			}).Info("Client joined restaurant room")
		case ActionJoinKitchen:
			h.Join(KitchenTopic(req.RestaurantID), conn)
			log.WithFields(logrus.Fields{
				"conn_id":       connID,
				"restaurant_id": req.RestaurantID,
			}).Info("Client joined kitchen room")
		case ActionJoinUser:
			h.Join(UserTopic(req.UserID), conn)
			log.WithFields(logrus.Fields{
				"conn_id": connID,
				"user_id": req.UserID,
			}).Info("Client joined user room")
		default:
			log.WithFields(logrus.Fields{
				"conn_id": connID,
				"action":  req.Action,
			}).Warn("Unknown websocket action")
		}
	}
}
