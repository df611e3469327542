package models

import "time"

// RoomAvailability holds the count of unbooked rooms of one type on one
// calendar day. Date is stored at UTC midnight; (RoomTypeID, Date) is the
// upsert key used by the seeder.
type RoomAvailability struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomTypeID string    `gorm:"column:room_type_id;size:64;not null;uniqueIndex:idx_room_type_date" json:"roomTypeId"`
	Date       time.Time `gorm:"not null;uniqueIndex:idx_room_type_date" json:"date"`
	Remaining  int       `gorm:"not null;default:0" json:"remaining"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"-"`
}
