package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the four booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	CarID uint `gorm:"not null;index" json:"carId"`
	Car   Car  `json:"-"`

	// nullable on purpose: deleting a driver detaches, it does not cascade
	DriverID *uint   `gorm:"index" json:"driverId,omitempty"`
	Driver   *Driver `json:"-"`

	StartDate  time.Time `gorm:"not null" json:"startDate"`
	EndDate    time.Time `gorm:"not null" json:"endDate"`
	TotalPrice float64   `gorm:"not null" json:"totalPrice"`
	Status     string    `gorm:"not null;default:pending" json:"status"`

	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
}
