package services

import (
	"errors"
	"fmt"
	"time"

	"elysianshores/models"
	"elysianshores/utils"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("Booking not found")

// NoRoomsLeftError reports the first exhausted night that sank a confirm
// batch. Its message is part of the REST contract.
type NoRoomsLeftError struct {
	RoomTypeID string
	Day        time.Time
}

func (e *NoRoomsLeftError) Error() string {
	return fmt.Sprintf("No %s rooms left on %s", e.RoomTypeID, e.Day.Format(utils.DateLayout))
}

type BookingItem struct {
	TypeID   string    `json:"type_id"`
	Checkin  time.Time `json:"checkin"`
	Checkout time.Time `json:"checkout"`
	Guests   int       `json:"guests"`
}

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Confirm books every item or none. Each covered night's availability row is
// decremented with a guarded update inside one transaction, so a sold-out
// night anywhere in the batch rolls the whole request back.
func (s *BookingService) Confirm(userID uint, items []BookingItem) ([]models.Booking, error) {
	created := make([]models.Booking, 0, len(items))

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := decrementNights(tx, item.TypeID, item.Checkin, item.Checkout); err != nil {
				return err
			}

			booking := models.Booking{
				UserID:       userID,
				RoomTypeID:   item.TypeID,
				CheckinDate:  item.Checkin.UTC(),
				CheckoutDate: item.Checkout.UTC(),
				Guests:       item.Guests,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
			created = append(created, booking)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListForUser returns all bookings owned by the user, oldest first.
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Where("user_id = ?", userID).Order("id").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Cancel deletes the user's booking and gives each covered night its room
// back. Availability rows that no longer exist (outside the seeded window)
// are skipped rather than recreated.
func (s *BookingService) Cancel(userID uint, bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Where("id = ? AND user_id = ?", bookingID, userID).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking: %w", err)
		}

		err = utils.EachDay(booking.CheckinDate, booking.CheckoutDate.AddDate(0, 0, -1), func(day time.Time) error {
			return tx.Model(&models.RoomAvailability{}).
				Where("room_type_id = ? AND date = ?", booking.RoomTypeID, day).
				UpdateColumn("remaining", gorm.Expr("remaining + 1")).Error
		})
		if err != nil {
			return fmt.Errorf("failed to restore availability: %w", err)
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}

// WipeAll clears the bookings table and reports how many rows went. Used by
// the wipe-bookings maintenance binary only.
func (s *BookingService) WipeAll() (int64, error) {
	res := s.DB.Where("1 = 1").Delete(&models.Booking{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to wipe bookings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func decrementNights(tx *gorm.DB, typeID string, checkin, checkout time.Time) error {
	nights := utils.Nights(checkin, checkout)
	if nights <= 0 {
		return &NoRoomsLeftError{RoomTypeID: typeID, Day: utils.DateOnly(checkin)}
	}

	return utils.EachDay(checkin, utils.DateOnly(checkout).AddDate(0, 0, -1), func(day time.Time) error {
		// guarded decrement: zero rows touched means the night is missing or
		// sold out, either way the batch dies here
		res := tx.Model(&models.RoomAvailability{}).
			Where("room_type_id = ? AND date = ? AND remaining >= 1", typeID, day).
			UpdateColumn("remaining", gorm.Expr("remaining - 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to update availability: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return &NoRoomsLeftError{RoomTypeID: typeID, Day: day}
		}
		return nil
	})
}
