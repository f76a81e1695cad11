package entity

import (
	"gorm.io/gorm"
)

type Car struct {
	gorm.Model
	Brand        string  `gorm:"not null" json:"brand"`
	CarModel     string  `gorm:"column:model;not null" json:"model"`
	Year         int     `gorm:"not null" json:"year"`
	PricePerDay  float64 `gorm:"not null" json:"pricePerDay"`
	Seats        int     `gorm:"not null" json:"seats"`
	Transmission string  `gorm:"not null" json:"transmission"`
	FuelType     string  `gorm:"not null" json:"fuelType"`
	Available    bool    `gorm:"default:true" json:"available"`
	Location     string  `json:"location"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`

	// base64 image payload, same storage style as user avatars
	Image     []byte `json:"-" gorm:"column:image"`
	ImageType string `json:"-" gorm:"column:image_type"`

	ClientID uint `gorm:"not null;index" json:"clientId"`
	Client   User `json:"-"`

	Bookings []Booking `gorm:"foreignKey:CarID" json:"-"`
}
