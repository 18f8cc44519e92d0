package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablehost/gin-booking-api/internal/models"
)

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	restaurant := models.Restaurant{Name: "Pizza Napoli", Address: "Ludwigstr. 12, Munich", Cuisine: "Italian"}
	require.NoError(t, db.Create(&restaurant).Error)

	found, err := service.GetRestaurantByID(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Napoli", found.Name)

	_, err = service.GetRestaurantByID(9999)
	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestGetTablesScopedToRestaurant(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	require.NoError(t, db.Create(&models.Table{RestaurantID: 1, TableNumber: "1", Capacity: 2, Status: models.TableAvailable}).Error)
	require.NoError(t, db.Create(&models.Table{RestaurantID: 1, TableNumber: "2", Capacity: 4, Status: models.TableReserved}).Error)
	require.NoError(t, db.Create(&models.Table{RestaurantID: 2, TableNumber: "1", Capacity: 6, Status: models.TableAvailable}).Error)

	tables, err := service.GetTables(1)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	for _, table := range tables {
		assert.Equal(t, uint(1), table.RestaurantID)
	}
}

func TestGetMenuExcludesUnavailableItems(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	available := models.MenuItem{RestaurantID: 1, Name: "House Salad", Price: 7.90, IsAvailable: true}
	unavailable := models.MenuItem{RestaurantID: 1, Name: "Seasonal Dessert", Price: 6.00, IsAvailable: false}
	otherRestaurant := models.MenuItem{RestaurantID: 2, Name: "Soup", Price: 5.50, IsAvailable: true}
	require.NoError(t, db.Create(&available).Error)
	require.NoError(t, db.Create(&unavailable).Error)
	require.NoError(t, db.Create(&otherRestaurant).Error)

	menu, err := service.GetMenu(1)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "House Salad", menu[0].Name)
}
