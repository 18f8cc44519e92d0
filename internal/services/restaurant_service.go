package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tablehost/gin-booking-api/internal/models"
)

// RestaurantService provides the read-only restaurant, table and menu surface
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(id uint) (*models.Restaurant, error)
	// GetTables retrieves all tables of a restaurant
	GetTables(restaurantID uint) ([]models.Table, error)
	// GetMenu retrieves the available menu items of a restaurant
	GetMenu(restaurantID uint) ([]models.MenuItem, error)
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Restaurant not found")
		}
		return nil, err
	}
	return &restaurant, nil
}

func (s *restaurantService) GetTables(restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Where("restaurant_id = ?", restaurantID).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// GetMenu returns available items only; items with is_available = false
// never reach the listing.
func (s *restaurantService) GetMenu(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
