package services

import (
	"fmt"
	"time"

	"elysianshores/models"
	"elysianshores/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedRoomType is one (id, name, description, capacity) entry of the fixed
// room catalog.
type SeedRoomType struct {
	ID          string
	Name        string
	Description string
	Capacity    int
}

// RoomCatalog is the hotel's fixed inventory. IDs are stable slugs; the
// client's price table is keyed by the same slugs.
var RoomCatalog = []SeedRoomType{
	{
		ID:   "room_1",
		Name: "Classic Room",
		Description: "A cozy retreat with sea-breeze tones and warm wood accents.\n" +
			"• Queen bed\n• Garden view\n• Rainfall shower\n• Complimentary breakfast",
		Capacity: 20,
	},
	{
		ID:   "room_2",
		Name: "Deluxe Suite",
		Description: "Spacious living with a private balcony over the lagoon.\n" +
			"• King bed\n• Lagoon-view balcony\n• Soaking tub\n• Evening turndown service",
		Capacity: 10,
	},
	{
		ID:   "room_3",
		Name: "Executive Suite",
		Description: "The top floor, end to end: panoramic ocean views and a lounge of your own.\n" +
			"• King bed\n• Panoramic ocean view\n• Private lounge\n• Butler service",
		Capacity: 5,
	},
}

// Seed window, inclusive on both ends.
var (
	SeedStart = time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)
	SeedEnd   = time.Date(2025, time.July, 30, 0, 0, 0, 0, time.UTC)
)

// SeedService fills the room catalog and the per-day availability counters.
// Both phases are upserts on their natural keys, so re-running a seed is safe
// and always leaves remaining == capacity for the whole window.
type SeedService struct {
	DB *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{DB: db}
}

// SeedRoomTypes creates or updates every catalog entry by id.
func (s *SeedService) SeedRoomTypes() error {
	for _, rt := range RoomCatalog {
		row := models.RoomType{
			ID:          rt.ID,
			Name:        rt.Name,
			Description: rt.Description,
			Capacity:    rt.Capacity,
		}
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "capacity"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("failed to upsert room type %s: %w", rt.ID, err)
		}
	}
	return nil
}

// SeedAvailability upserts one (roomTypeId, date) row per catalog entry per
// day of [SeedStart, SeedEnd], resetting remaining to the type's capacity.
// This is a full reset, not a delta.
func (s *SeedService) SeedAvailability() error {
	for _, rt := range RoomCatalog {
		err := utils.EachDay(SeedStart, SeedEnd, func(day time.Time) error {
			row := models.RoomAvailability{
				RoomTypeID: rt.ID,
				Date:       day,
				Remaining:  rt.Capacity,
			}
			return s.DB.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "room_type_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"remaining"}),
			}).Create(&row).Error
		})
		if err != nil {
			return fmt.Errorf("failed to upsert availability for %s: %w", rt.ID, err)
		}
	}
	return nil
}
