package models

// RoomType is static reference data keyed by a stable slug ("room_1", ...).
// Rows are maintained by the seed binary, not by the API.
type RoomType struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"uniqueIndex;size:150" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Capacity    int    `gorm:"not null" json:"capacity"`

	Availability []RoomAvailability `gorm:"foreignKey:RoomTypeID" json:"-"`
}
