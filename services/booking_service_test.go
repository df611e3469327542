package services

import (
	"testing"
	"time"

	"elysianshores/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:       username,
		FullName:       "Test User",
		Email:          username + "@example.com",
		HashedPassword: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func remainingOn(t *testing.T, db *gorm.DB, typeID string, day time.Time) int {
	t.Helper()
	var row models.RoomAvailability
	require.NoError(t, db.Where("room_type_id = ? AND date = ?", typeID, day).First(&row).Error)
	return row.Remaining
}

func at17(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 17, 0, 0, 0, time.UTC)
}

func TestConfirmDecrementsEachNight(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	user := testUser(t, db, "alice")

	created, err := svc.Confirm(user.ID, []BookingItem{{
		TypeID:   "room_1",
		Checkin:  at17(2025, time.June, 1),
		Checkout: at17(2025, time.June, 4),
		Guests:   2,
	}})
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, user.ID, created[0].UserID)
	require.Equal(t, "room_1", created[0].RoomTypeID)

	// the three covered nights lose a room; the checkout day does not
	for d := 1; d <= 3; d++ {
		day := time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
		require.Equal(t, 19, remainingOn(t, db, "room_1", day))
	}
	require.Equal(t, 20, remainingOn(t, db, "room_1", time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)))
}

func TestConfirmIsAllOrNothing(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	user := testUser(t, db, "bob")

	// sell out the middle night of the stay
	midnight := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.RoomAvailability{}).
		Where("room_type_id = ? AND date = ?", "room_3", midnight).
		Update("remaining", 0).Error)

	_, err := svc.Confirm(user.ID, []BookingItem{{
		TypeID:   "room_3",
		Checkin:  at17(2025, time.June, 1),
		Checkout: at17(2025, time.June, 4),
		Guests:   1,
	}})
	require.Error(t, err)
	require.EqualError(t, err, "No room_3 rooms left on 2025-06-02")

	// first night's decrement rolled back, no booking row written
	require.Equal(t, 5, remainingOn(t, db, "room_3", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestConfirmRejectsZeroNightStay(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	user := testUser(t, db, "carol")

	_, err := svc.Confirm(user.ID, []BookingItem{{
		TypeID:   "room_1",
		Checkin:  at17(2025, time.June, 1),
		Checkout: at17(2025, time.June, 1),
		Guests:   1,
	}})
	require.Error(t, err)
}

func TestListForUserScopesToOwner(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")

	_, err := svc.Confirm(alice.ID, []BookingItem{{
		TypeID: "room_1", Checkin: at17(2025, time.June, 1), Checkout: at17(2025, time.June, 3), Guests: 2,
	}})
	require.NoError(t, err)
	_, err = svc.Confirm(bob.ID, []BookingItem{{
		TypeID: "room_2", Checkin: at17(2025, time.June, 5), Checkout: at17(2025, time.June, 6), Guests: 1,
	}})
	require.NoError(t, err)

	mine, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "room_1", mine[0].RoomTypeID)
}

func TestCancelRestoresAvailability(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	user := testUser(t, db, "alice")

	created, err := svc.Confirm(user.ID, []BookingItem{{
		TypeID: "room_2", Checkin: at17(2025, time.June, 10), Checkout: at17(2025, time.June, 12), Guests: 2,
	}})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(user.ID, created[0].ID))

	for d := 10; d <= 11; d++ {
		day := time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
		require.Equal(t, 10, remainingOn(t, db, "room_2", day))
	}

	remaining, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	// a second cancel of the same id is a not-found
	require.ErrorIs(t, svc.Cancel(user.ID, created[0].ID), ErrBookingNotFound)
}

func TestCancelRejectsForeignBooking(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")

	created, err := svc.Confirm(alice.ID, []BookingItem{{
		TypeID: "room_1", Checkin: at17(2025, time.June, 1), Checkout: at17(2025, time.June, 2), Guests: 1,
	}})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Cancel(bob.ID, created[0].ID), ErrBookingNotFound)

	// untouched: still owned and still decremented
	mine, err := svc.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestWipeAll(t *testing.T) {
	db := seededDB(t)
	svc := NewBookingService(db)
	user := testUser(t, db, "alice")

	_, err := svc.Confirm(user.ID, []BookingItem{
		{TypeID: "room_1", Checkin: at17(2025, time.June, 1), Checkout: at17(2025, time.June, 2), Guests: 1},
		{TypeID: "room_2", Checkin: at17(2025, time.June, 1), Checkout: at17(2025, time.June, 2), Guests: 1},
	})
	require.NoError(t, err)

	count, err := svc.WipeAll()
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	var left int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&left).Error)
	require.Zero(t, left)
}
