package services

import (
	"testing"
	"time"

	"elysianshores/models"

	"github.com/stretchr/testify/require"
)

func filterOn(t *testing.T, svc *RoomService, checkin, checkout string, guests int) []RoomListing {
	t.Helper()
	ci, err := time.Parse("2006-01-02", checkin)
	require.NoError(t, err)
	co, err := time.Parse("2006-01-02", checkout)
	require.NoError(t, err)
	listings, err := svc.Filter(RoomFilter{Checkin: ci.UTC(), Checkout: co.UTC(), Guests: guests})
	require.NoError(t, err)
	return listings
}

func TestFilterReturnsAllTypesAtCapacity(t *testing.T) {
	db := seededDB(t)
	svc := NewRoomService(db)

	listings := filterOn(t, svc, "2025-06-01", "2025-06-04", 2)
	require.Len(t, listings, 3)
	require.Equal(t, "room_1", listings[0].TypeID)
	require.Equal(t, "Classic Room", listings[0].Type)
	require.Equal(t, 20, listings[0].Remaining)
	require.Equal(t, 10, listings[1].Remaining)
	require.Equal(t, 5, listings[2].Remaining)
}

func TestFilterGatesOnCapacity(t *testing.T) {
	db := seededDB(t)
	svc := NewRoomService(db)

	listings := filterOn(t, svc, "2025-06-01", "2025-06-03", 15)
	require.Len(t, listings, 1)
	require.Equal(t, "room_1", listings[0].TypeID)
}

func TestFilterReportsWorstNight(t *testing.T) {
	db := seededDB(t)
	svc := NewRoomService(db)

	// one drained night inside the range drags the whole range down
	day := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.RoomAvailability{}).
		Where("room_type_id = ? AND date = ?", "room_1", day).
		Update("remaining", 3).Error)

	listings := filterOn(t, svc, "2025-06-01", "2025-06-04", 1)
	require.Equal(t, 3, listings[0].Remaining)
}

func TestFilterExcludesTypesWithGaps(t *testing.T) {
	db := seededDB(t)
	svc := NewRoomService(db)

	day := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.
		Where("room_type_id = ? AND date = ?", "room_2", day).
		Delete(&models.RoomAvailability{}).Error)

	listings := filterOn(t, svc, "2025-06-01", "2025-06-04", 1)
	require.Len(t, listings, 2)
	for _, l := range listings {
		require.NotEqual(t, "room_2", l.TypeID)
	}
}

func TestFilterOutsideSeededWindowIsEmpty(t *testing.T) {
	db := seededDB(t)
	svc := NewRoomService(db)

	listings := filterOn(t, svc, "2026-01-01", "2026-01-05", 1)
	require.Empty(t, listings)
}

func TestFilterZeroNightRangeIsEmpty(t *testing.T) {
	db := seededDB(t)
	svc := NewRoomService(db)

	listings := filterOn(t, svc, "2025-06-01", "2025-06-01", 1)
	require.Empty(t, listings)

	// inverted range likewise
	listings = filterOn(t, svc, "2025-06-04", "2025-06-01", 1)
	require.Empty(t, listings)
}
