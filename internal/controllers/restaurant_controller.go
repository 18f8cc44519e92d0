package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tablehost/gin-booking-api/internal/services"
)

// RestaurantController handles HTTP requests for restaurants, tables and menus
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(ctx *gin.Context)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(ctx *gin.Context)
	// GetTables retrieves the tables of a restaurant
	GetTables(ctx *gin.Context)
	// GetMenu retrieves the available menu items of a restaurant
	GetMenu(ctx *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// parseIDParam reads a numeric path parameter
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description List every restaurant profile
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} map[string]string
// @Router /api/restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurants)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant profile
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} map[string]string
// @Router /api/restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurant)
}

// GetTables godoc
// @Summary Get restaurant tables
// @Description List the tables of a restaurant with their display status
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} models.Table
// @Failure 400 {object} map[string]string
// @Router /api/restaurants/{id}/tables [get]
func (c *restaurantController) GetTables(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tables, err := c.service.GetTables(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tables)
}

// GetMenu godoc
// @Summary Get restaurant menu
// @Description List the currently available menu items of a restaurant
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} models.MenuItem
// @Failure 400 {object} map[string]string
// @Router /api/restaurants/{id}/menu [get]
func (c *restaurantController) GetMenu(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	items, err := c.service.GetMenu(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}
