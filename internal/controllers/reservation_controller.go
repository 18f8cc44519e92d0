package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tablehost/gin-booking-api/internal/services"
)

// ReservationController handles HTTP requests for reservations
type ReservationController interface {
	// GetAllReservations retrieves all reservations
	GetAllReservations(ctx *gin.Context)
	// CreateReservation books a table for an exact date/time slot
	CreateReservation(ctx *gin.Context)
	// UpdateReservation applies a partial patch to a reservation
	UpdateReservation(ctx *gin.Context)
}

type reservationController struct {
	service services.ReservationService
}

// NewReservationController creates a new instance of ReservationController
func NewReservationController(service services.ReservationService) ReservationController {
	return &reservationController{service: service}
}

// CreateReservationRequest is the booking payload. user_id is optional;
// without it the first user in the store owns the booking.
type CreateReservationRequest struct {
	TableID         uint   `json:"table_id" binding:"required"`
	RestaurantID    uint   `json:"restaurant_id" binding:"required"`
	UserID          uint   `json:"user_id"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateReservationRequest carries the patchable fields. Absent fields are
// left untouched.
type UpdateReservationRequest struct {
	Status          *string `json:"status"`
	SpecialRequests *string `json:"special_requests"`
}

// GetAllReservations godoc
// @Summary Get all reservations
// @Description List every reservation, unfiltered
// @Tags reservations
// @Produce json
// @Success 200 {array} models.Reservation
// @Failure 500 {object} map[string]string
// @Router /api/reservations [get]
func (c *reservationController) GetAllReservations(ctx *gin.Context) {
	reservations, err := c.service.GetAllReservations()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reservations)
}

// CreateReservation godoc
// @Summary Create a reservation
// @Description Book a table for an exact date/time slot; fails when the slot is taken
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body CreateReservationRequest true "Reservation"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/reservations [post]
func (c *reservationController) CreateReservation(ctx *gin.Context) {
	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}
	if req.Guests <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Guests must be positive"})
		return
	}

	reservation, err := c.service.CreateReservation(services.CreateReservationInput{
		TableID:         req.TableID,
		UserID:          req.UserID,
		RestaurantID:    req.RestaurantID,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Reservation created successfully",
		"id":      reservation.ID,
	})
}

// UpdateReservation godoc
// @Summary Update a reservation
// @Description Patch status and/or special requests; unspecified fields stay unchanged
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param patch body UpdateReservationRequest true "Patch"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/reservations/{id} [put]
func (c *reservationController) UpdateReservation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := c.service.UpdateReservation(id, services.ReservationPatch{
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Reservation updated successfully"})
}
