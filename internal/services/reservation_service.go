package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tablehost/gin-booking-api/internal/models"
	"github.com/tablehost/gin-booking-api/internal/realtime"
)

// CreateReservationInput carries the fields of a booking request. UserID
// zero means "no user supplied"; the first user in the store then owns the
// booking, which matches the demo login-less flow.
type CreateReservationInput struct {
	TableID         uint
	UserID          uint
	RestaurantID    uint
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// ReservationPatch applies partial-update semantics: only non-nil fields
// are written, everything else is left untouched.
type ReservationPatch struct {
	Status          *string
	SpecialRequests *string
}

// ReservationService manages the booking lifecycle
type ReservationService interface {
	// GetAllReservations retrieves all reservations
	GetAllReservations() ([]models.Reservation, error)
	// IsAvailable reports whether a table is free for the exact (date, time) slot
	IsAvailable(tableID uint, date, timeSlot string) (bool, error)
	// CreateReservation books a table, failing with ConflictError when the
	// slot is taken
	CreateReservation(input CreateReservationInput) (*models.Reservation, error)
	// UpdateReservation applies a partial patch to an existing reservation
	UpdateReservation(id uint, patch ReservationPatch) error
}

type reservationService struct {
	db        *gorm.DB
	publisher Publisher
}

// NewReservationService creates a new instance of ReservationService
func NewReservationService(db *gorm.DB, publisher Publisher) ReservationService {
	return &reservationService{db: db, publisher: publisher}
}

func (s *reservationService) GetAllReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// IsAvailable matches the slot by exact string equality, with no status
// filter: a reservation of any status, cancelled included, blocks the slot.
// That carries over the reference behavior unchanged; restricting the check
// to confirmed rows would be a semantic change, not a cleanup.
func (s *reservationService) IsAvailable(tableID uint, date, timeSlot string) (bool, error) {
	count, err := countSlot(s.db, tableID, date, timeSlot)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func countSlot(tx *gorm.DB, tableID uint, date, timeSlot string) (int64, error) {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("table_id = ? AND reservation_date = ? AND reservation_time = ?", tableID, date, timeSlot).
		Count(&count).Error
	return count, err
}

func (s *reservationService) CreateReservation(input CreateReservationInput) (*models.Reservation, error) {
	owner, err := s.resolveOwner(input.UserID)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		TableID:         input.TableID,
		UserID:          owner.ID,
		RestaurantID:    input.RestaurantID,
		ReservationDate: input.Date,
		ReservationTime: input.Time,
		Guests:          input.Guests,
		Status:          models.ReservationConfirmed,
		SpecialRequests: input.SpecialRequests,
	}

	// Check and insert run in one transaction; the unique slot index turns
	// any race the check misses into ErrDuplicatedKey instead of a second row.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		count, err := countSlot(tx, input.TableID, input.Date, input.Time)
		if err != nil {
			return err
		}
		if count > 0 {
			return models.NewConflictError("Table is already reserved for this time")
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Table is already reserved for this time")
		}
		return nil, err
	}

	s.publisher.Publish(realtime.RestaurantTopic(reservation.RestaurantID), EventNewReservation, NewReservationEvent{
		ReservationID: reservation.ID,
		RestaurantID:  reservation.RestaurantID,
		UserName:      owner.Name,
		Guests:        reservation.Guests,
		Time:          reservation.ReservationTime,
		Date:          reservation.ReservationDate,
	})

	return &reservation, nil
}

// UpdateReservation writes only the patched fields. No event is emitted on
// update; only creation notifies the restaurant topic. Status values are
// not validated against a transition table, so any string can be written.
func (s *reservationService) UpdateReservation(id uint, patch ReservationPatch) error {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Reservation not found")
		}
		return err
	}

	updates := map[string]interface{}{}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.SpecialRequests != nil {
		updates["special_requests"] = *patch.SpecialRequests
	}
	if len(updates) == 0 {
		return nil
	}

	return s.db.Model(&reservation).Updates(updates).Error
}

// resolveOwner returns the requesting user, or the first user in the store
// when the request carries no user id.
func (s *reservationService) resolveOwner(userID uint) (*models.User, error) {
	var user models.User
	if userID != 0 {
		if err := s.db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("User not found")
			}
			return nil, err
		}
		return &user, nil
	}

	if err := s.db.Order("id").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("No user found")
		}
		return nil, err
	}
	return &user, nil
}
