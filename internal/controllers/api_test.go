package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tablehost/gin-booking-api/internal/database"
	"github.com/tablehost/gin-booking-api/internal/models"
	"github.com/tablehost/gin-booking-api/internal/realtime"
	"github.com/tablehost/gin-booking-api/internal/services"
)

// recordingConn collects events delivered through the hub
type recordingConn struct {
	events []realtime.Envelope
}

func (r *recordingConn) WriteJSON(v interface{}) error {
	env, ok := v.(realtime.Envelope)
	if !ok {
		return errors.New("unexpected payload type")
	}
	r.events = append(r.events, env)
	return nil
}

func (r *recordingConn) Close() error { return nil }

type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
	hub    *realtime.Hub
}

func setupTestAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hub := realtime.NewHub()

	authController := NewAuthController(services.NewAuthService(db, "test-jwt-secret-key-32-characters"))
	restaurantController := NewRestaurantController(services.NewRestaurantService(db))
	reservationController := NewReservationController(services.NewReservationService(db, hub))
	orderController := NewOrderController(services.NewOrderService(db, hub))

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/login", authController.Login)
		api.GET("/restaurants", restaurantController.GetAllRestaurants)
		api.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
		api.GET("/restaurants/:id/tables", restaurantController.GetTables)
		api.GET("/restaurants/:id/menu", restaurantController.GetMenu)
		api.GET("/reservations", reservationController.GetAllReservations)
		api.POST("/reservations", reservationController.CreateReservation)
		api.PUT("/reservations/:id", reservationController.UpdateReservation)
		api.GET("/orders", orderController.GetAllOrders)
		api.POST("/orders", orderController.CreateOrder)
		api.PUT("/orders/:id/status", orderController.UpdateOrderStatus)
	}

	return &testAPI{router: router, db: db, hub: hub}
}

func (a *testAPI) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) seedUser(t *testing.T, email, password, name, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{Email: email, Password: string(hash), Name: name, Role: role}
	require.NoError(t, a.db.Create(&user).Error)
	return &user
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLoginEndpoint(t *testing.T) {
	api := setupTestAPI(t)
	api.seedUser(t, "customer@example.com", "customer123", "Demo Customer", models.RoleCustomer)

	t.Run("valid credentials", func(t *testing.T) {
		w := api.request(t, "POST", "/api/login", gin.H{"email": "customer@example.com", "password": "customer123"})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "Demo Customer", user["name"])
		assert.Equal(t, models.RoleCustomer, user["role"])
		assert.Contains(t, body["token"].(string), ".")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := api.request(t, "POST", "/api/login", gin.H{"email": "customer@example.com", "password": "wrong"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		w := api.request(t, "POST", "/api/login", gin.H{"email": "customer@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRestaurantEndpoints(t *testing.T) {
	api := setupTestAPI(t)
	restaurant := models.Restaurant{Name: "Kebab Haus", Address: "Karl-Marx-Str. 45, Berlin", Cuisine: "Turkish"}
	require.NoError(t, api.db.Create(&restaurant).Error)
	require.NoError(t, api.db.Create(&models.Table{RestaurantID: restaurant.ID, TableNumber: "1", Capacity: 2, Status: models.TableAvailable}).Error)
	require.NoError(t, api.db.Create(&models.MenuItem{RestaurantID: restaurant.ID, Name: "Doener", Price: 6.50, IsAvailable: true}).Error)
	require.NoError(t, api.db.Create(&models.MenuItem{RestaurantID: restaurant.ID, Name: "Ayran", Price: 2.00, IsAvailable: false}).Error)

	t.Run("list and get", func(t *testing.T) {
		w := api.request(t, "GET", "/api/restaurants", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = api.request(t, "GET", fmt.Sprintf("/api/restaurants/%d", restaurant.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Kebab Haus", decodeBody(t, w)["name"])

		w = api.request(t, "GET", "/api/restaurants/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("menu filters unavailable items", func(t *testing.T) {
		w := api.request(t, "GET", fmt.Sprintf("/api/restaurants/%d/menu", restaurant.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var menu []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
		require.Len(t, menu, 1)
		assert.Equal(t, "Doener", menu[0]["name"])
	})

	t.Run("tables", func(t *testing.T) {
		w := api.request(t, "GET", fmt.Sprintf("/api/restaurants/%d/tables", restaurant.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var tables []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tables))
		require.Len(t, tables, 1)
		assert.Equal(t, models.TableAvailable, tables[0]["status"])
	})
}

func TestReservationEndpoints(t *testing.T) {
	api := setupTestAPI(t)
	user := api.seedUser(t, "alice@example.com", "pw", "Alice", models.RoleCustomer)

	staff := &recordingConn{}
	api.hub.Join(realtime.RestaurantTopic(1), staff)

	payload := gin.H{
		"table_id":      2,
		"restaurant_id": 1,
		"user_id":       user.ID,
		"date":          "2024-06-01",
		"time":          "19:00",
		"guests":        4,
	}

	w := api.request(t, "POST", "/api/reservations", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	reservationID := created["id"].(float64)
	assert.NotZero(t, reservationID)

	// Staff dashboard got exactly one new_reservation event
	require.Len(t, staff.events, 1)
	assert.Equal(t, "new_reservation", staff.events[0].Event)

	t.Run("double booking rejected", func(t *testing.T) {
		w := api.request(t, "POST", "/api/reservations", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Table is already reserved for this time", decodeBody(t, w)["error"])
	})

	t.Run("bad date format rejected", func(t *testing.T) {
		bad := gin.H{"table_id": 3, "restaurant_id": 1, "date": "June 1st", "time": "19:00", "guests": 2}
		w := api.request(t, "POST", "/api/reservations", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		path := fmt.Sprintf("/api/reservations/%.0f", reservationID)
		w := api.request(t, "PUT", path, gin.H{"special_requests": "window seat"})
		require.Equal(t, http.StatusOK, w.Code)

		var stored models.Reservation
		require.NoError(t, api.db.First(&stored, uint(reservationID)).Error)
		assert.Equal(t, models.ReservationConfirmed, stored.Status)
		assert.Equal(t, "window seat", stored.SpecialRequests)
	})

	t.Run("update unknown id", func(t *testing.T) {
		w := api.request(t, "PUT", "/api/reservations/9999", gin.H{"status": "cancelled"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderFlowEndToEnd(t *testing.T) {
	api := setupTestAPI(t)
	user := api.seedUser(t, "alice@example.com", "pw", "Alice", models.RoleCustomer)

	kitchen := &recordingConn{}
	otherKitchen := &recordingConn{}
	customer := &recordingConn{}
	api.hub.Join(realtime.KitchenTopic(1), kitchen)
	api.hub.Join(realtime.KitchenTopic(6), otherKitchen)
	api.hub.Join(realtime.UserTopic(user.ID), customer)

	// Book table 2 for 2024-06-01 19:00
	w := api.request(t, "POST", "/api/reservations", gin.H{
		"table_id": 2, "restaurant_id": 1, "user_id": user.ID,
		"date": "2024-06-01", "time": "19:00", "guests": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reservationID := decodeBody(t, w)["id"].(float64)

	// Order two items against the reservation
	w = api.request(t, "POST", "/api/orders", gin.H{
		"reservation_id": reservationID,
		"user_id":        user.ID,
		"restaurant_id":  1,
		"total":          24.00,
		"items": []gin.H{
			{"menu_item_id": 1, "quantity": 2, "price": 5.50},
			{"menu_item_id": 3, "quantity": 1, "price": 13.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["order_id"].(float64)

	// Kitchen 1 saw the order, kitchen 6 saw nothing
	require.Len(t, kitchen.events, 1)
	assert.Equal(t, "new_order", kitchen.events[0].Event)
	assert.Empty(t, otherKitchen.events)

	// Move the order to preparing
	w = api.request(t, "PUT", fmt.Sprintf("/api/orders/%.0f/status", orderID), gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code)

	// The status event lands on the customer's personal topic, not the kitchen
	require.Len(t, customer.events, 1)
	assert.Equal(t, "order_status_updated", customer.events[0].Event)
	data := customer.events[0].Data.(services.OrderStatusUpdatedEvent)
	assert.Equal(t, uint(orderID), data.OrderID)
	assert.Equal(t, "preparing", data.Status)
	assert.Len(t, kitchen.events, 1, "kitchen receives no status event")

	t.Run("status update for unknown order", func(t *testing.T) {
		w := api.request(t, "PUT", "/api/orders/9999/status", gin.H{"status": "ready"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("order listing includes the order", func(t *testing.T) {
		w := api.request(t, "GET", "/api/orders", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var orders []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		assert.Equal(t, "preparing", orders[0]["status"])
	})
}
