package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser   = "user"
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:user" json:"role"`

	// Relations — preload only when needed
	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
	Cars     []Car     `gorm:"foreignKey:ClientID" json:"-"`
	Drivers  []Driver  `gorm:"foreignKey:ClientID" json:"-"`
}
