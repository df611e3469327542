package models

import "time"

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;size:150" json:"username"`
	FullName       string `gorm:"size:255" json:"fullName"`
	Email          string `gorm:"uniqueIndex;size:150" json:"email"`
	HashedPassword string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
