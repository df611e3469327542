package models

import "time"

// Booking is a confirmed reservation. Checkin/checkout are stored as UTC
// instants pinned to the hotel's fixed 17:00:00Z check-in hour.
type Booking struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;column:user_id;not null" json:"userId"`
	RoomTypeID   string    `gorm:"column:room_type_id;size:64;not null" json:"roomTypeId"`
	CheckinDate  time.Time `gorm:"column:checkin_date;not null" json:"checkinDate"`
	CheckoutDate time.Time `gorm:"column:checkout_date;not null" json:"checkoutDate"`
	Guests       int       `gorm:"not null" json:"guests"`
	CreatedAt    time.Time `json:"createdAt"`

	User     User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID;references:ID" json:"-"`
}
