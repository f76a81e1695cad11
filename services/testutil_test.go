package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"carrental/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. The DSN is named
// after the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Car{}, &entity.Driver{}, &entity.Booking{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func mustUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func mustCar(t *testing.T, db *gorm.DB, clientID uint, pricePerDay float64) *entity.Car {
	t.Helper()
	car := &entity.Car{
		Brand:        "Toyota",
		CarModel:     "Corolla",
		Year:         2022,
		PricePerDay:  pricePerDay,
		Seats:        5,
		Transmission: "automatic",
		FuelType:     "petrol",
		Available:    true,
		ClientID:     clientID,
	}
	if err := db.Create(car).Error; err != nil {
		t.Fatalf("create car: %v", err)
	}
	return car
}

func mustDriver(t *testing.T, db *gorm.DB, clientID uint, license string) *entity.Driver {
	t.Helper()
	d := &entity.Driver{
		Name:          "Test Driver",
		LicenseNumber: license,
		Experience:    5,
		Phone:         "+1-555-0100",
		HourlyRate:    25,
		Available:     true,
		ClientID:      clientID,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create driver: %v", err)
	}
	return d
}

// failDeletesOn makes every delete against the table error, driving the
// surrounding transaction into a rollback.
func failDeletesOn(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Delete().Before("gorm:delete").Register("fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errors.New("induced delete failure"))
		}
	})
	if err != nil {
		t.Fatalf("register delete callback: %v", err)
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
