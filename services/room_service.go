package services

import (
	"fmt"
	"time"

	"elysianshores/models"
	"elysianshores/utils"

	"gorm.io/gorm"
)

type RoomFilter struct {
	Checkin  time.Time
	Checkout time.Time
	Guests   int
}

// RoomListing is one filtered search result: a room type and the worst-case
// remaining count over the requested night range.
type RoomListing struct {
	TypeID      string `json:"type_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Remaining   int    `json:"remaining"`
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Filter returns, per room type with capacity >= guests, the minimum
// remaining count across the nights [checkin, checkout). A type is included
// only when every night in the range has an availability row; a zero-night
// range therefore matches nothing.
func (s *RoomService) Filter(f RoomFilter) ([]RoomListing, error) {
	nights := utils.Nights(f.Checkin, f.Checkout)
	if nights <= 0 {
		return []RoomListing{}, nil
	}

	type row struct {
		TypeID      string
		Type        string
		Description string
		Remaining   int
		DaysCount   int
	}

	var rows []row
	err := s.DB.Model(&models.RoomAvailability{}).
		Select(
			"room_types.id AS type_id, "+
				"room_types.name AS type, "+
				"room_types.description AS description, "+
				"MIN(room_availabilities.remaining) AS remaining, "+
				"COUNT(room_availabilities.id) AS days_count",
		).
		Joins("JOIN room_types ON room_types.id = room_availabilities.room_type_id").
		Where("room_availabilities.date >= ? AND room_availabilities.date < ?",
			utils.DateOnly(f.Checkin), utils.DateOnly(f.Checkout)).
		Where("room_types.capacity >= ?", f.Guests).
		Group("room_types.id, room_types.name, room_types.description").
		Order("room_types.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter rooms: %w", err)
	}

	listings := make([]RoomListing, 0, len(rows))
	for _, r := range rows {
		// a gap anywhere in the range disqualifies the type
		if r.DaysCount != nights {
			continue
		}
		listings = append(listings, RoomListing{
			TypeID:      r.TypeID,
			Type:        r.Type,
			Description: r.Description,
			Remaining:   r.Remaining,
		})
	}
	return listings, nil
}
