package entity

import (
	"time"

	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	LicenseNumber string     `gorm:"uniqueIndex;not null" json:"licenseNumber"`
	Experience    int        `gorm:"not null" json:"experience"` // years
	Phone         string     `gorm:"not null" json:"phone"`
	Email         string     `json:"email"`
	LicenseType   string     `json:"licenseType"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
	VehicleTypes  string     `json:"vehicleTypes"`
	Skills        string     `json:"skills"`
	Languages     string     `json:"languages"`
	Availability  string     `json:"availability"`
	HourlyRate    float64    `gorm:"default:25" json:"hourlyRate"`
	ServiceAreas  string     `json:"serviceAreas"`

	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`

	Available bool `gorm:"default:true" json:"available"`

	ClientID uint `gorm:"not null;index" json:"clientId"`
	Client   User `json:"-"`
}
