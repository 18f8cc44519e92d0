package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/tablehost/gin-booking-api/docs" // Import generated docs
	"github.com/tablehost/gin-booking-api/internal/config"
	"github.com/tablehost/gin-booking-api/internal/controllers"
	"github.com/tablehost/gin-booking-api/internal/database"
	"github.com/tablehost/gin-booking-api/internal/middleware"
	"github.com/tablehost/gin-booking-api/internal/realtime"
	"github.com/tablehost/gin-booking-api/internal/services"
)

var (
	db                    *gorm.DB
	hub                   *realtime.Hub
	authController        controllers.AuthController
	restaurantController  controllers.RestaurantController
	reservationController controllers.ReservationController
	orderController       controllers.OrderController
	configuration         *config.Config
)

// @title Restaurant Booking API
// @version 1.0
// @description Restaurant booking backend with real-time reservation and kitchen order updates
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection, schema and seed data before the
	// server accepts any request
	setupDatabase(configuration)

	// Initialize the notification hub, services and controllers
	hub = realtime.NewHub()
	authController = controllers.NewAuthController(services.NewAuthService(db, configuration.JWTSecret))
	restaurantController = controllers.NewRestaurantController(services.NewRestaurantService(db))
	reservationController = controllers.NewReservationController(services.NewReservationService(db, hub))
	orderController = controllers.NewOrderController(services.NewOrderService(db, hub))

	// Initialize Gin router
	router := setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects to the store, migrates the schema and seeds demo
// data. This replaces the lazy seed-on-first-request of earlier builds.
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.Seed(db))
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Real-time channel: clients join restaurant/kitchen/user topics here
	router.GET("/ws", hub.HandleWebSocket)

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

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-booking-api",
	})
}
