package database

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tablehost/gin-booking-api/internal/models"
)

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Table{},
		&models.Reservation{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// Seed populates demo users, restaurants, tables and menus. It runs once at
// startup, before the server accepts requests, and is idempotent: a second
// run against a seeded store is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "admin@restaurant.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return seedDemoCustomer(db)
	}

	log.Info("Database is empty, seeding initial data")

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    "admin@restaurant.com",
		Password: string(adminHash),
		Name:     "Restaurant Admin",
		Role:     models.RoleRestaurantAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	restaurants := []models.Restaurant{
		{
			Name:         "Fine Dining Restaurant",
			Address:      "123 Main Street, City Center, Berlin",
			Cuisine:      "International",
			Description:  "A premium dining experience with world-class cuisine",
			Phone:        "+49-30-123456",
			Email:        "info@finedining.com",
			OpeningHours: "11:00 AM - 11:00 PM",
		},
		{
			Name:         "Kebab Haus",
			Address:      "Karl-Marx-Str. 45, Neukoelln, Berlin",
			Cuisine:      "Turkish",
			Description:  "Authentic doener and Turkish grill specialties",
			Phone:        "+49-30-987654",
			Email:        "info@kebabhaus.de",
			OpeningHours: "10:00 AM - 2:00 AM",
		},
		{
			Name:         "Pizza Napoli",
			Address:      "Ludwigstr. 12, Altstadt, Munich",
			Cuisine:      "Italian",
			Description:  "Wood-fired pizzas and classic Italian dishes",
			Phone:        "+49-89-555555",
			Email:        "info@pizzanapoli.de",
			OpeningHours: "12:00 PM - 12:00 AM",
		},
		{
			Name:         "Sushi Meister",
			Address:      "Koenigsallee 99, Stadtmitte, Duesseldorf",
			Cuisine:      "Japanese",
			Description:  "Fresh sushi and Japanese cuisine in the heart of Duesseldorf",
			Phone:        "+49-211-333333",
			Email:        "info@sushimeister.de",
			OpeningHours: "11:30 AM - 10:30 PM",
		},
		{
			Name:         "Bavarian Braeuhaus",
			Address:      "Marienplatz 1, Innenstadt, Munich",
			Cuisine:      "German",
			Description:  "Traditional Bavarian food and beer garden",
			Phone:        "+49-89-777777",
			Email:        "info@brauhaus.de",
			OpeningHours: "10:00 AM - 1:00 AM",
		},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}

	for _, r := range restaurants {
		tables := []models.Table{
			{RestaurantID: r.ID, TableNumber: "1", Capacity: 2, Status: models.TableAvailable},
			{RestaurantID: r.ID, TableNumber: "2", Capacity: 4, Status: models.TableReserved},
			{RestaurantID: r.ID, TableNumber: "3", Capacity: 6, Status: models.TableAvailable},
			{RestaurantID: r.ID, TableNumber: "4", Capacity: 2, Status: models.TableOccupied},
			{RestaurantID: r.ID, TableNumber: "5", Capacity: 8, Status: models.TableAvailable},
		}
		for i := range tables {
			if err := db.Create(&tables[i]).Error; err != nil {
				return err
			}
		}

		menu := []models.MenuItem{
			{RestaurantID: r.ID, Name: "Soup of the Day", Description: "Seasonal, ask your waiter", Price: 5.50, Category: "Starters", IsAvailable: true},
			{RestaurantID: r.ID, Name: "House Salad", Description: "Mixed greens with vinaigrette", Price: 7.90, Category: "Starters", IsAvailable: true},
			{RestaurantID: r.ID, Name: "Chef's Special", Description: "Signature main course", Price: 18.50, Category: "Mains", IsAvailable: true},
			{RestaurantID: r.ID, Name: "Seasonal Dessert", Description: "Changes weekly", Price: 6.00, Category: "Desserts", IsAvailable: false},
		}
		for i := range menu {
			if err := db.Create(&menu[i]).Error; err != nil {
				return err
			}
		}

		log.WithFields(logrus.Fields{
			"restaurant_id": r.ID,
			"name":          r.Name,
		}).Debug("Seeded restaurant")
	}

	log.Info("Database seeded successfully")
	return seedDemoCustomer(db)
}

// seedDemoCustomer keeps the demo customer account present even on stores
// that were seeded by an older build without it.
func seedDemoCustomer(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "customer@example.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customer := models.User{
		Email:    "customer@example.com",
		Password: string(hash),
		Name:     "Demo Customer",
		Role:     models.RoleCustomer,
	}
	return db.Create(&customer).Error
}
