package configs

import (
	"fmt"

	"carrental/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB() error {
	c := LoadConfig()

	var dialector gorm.Dialector
	switch c.DBDriver {
	case "postgres":
		dialector = postgres.Open(c.DBSource)
	case "sqlite":
		dialector = sqlite.Open(c.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Car{},
		&entity.Driver{},
		&entity.Booking{},
	)
}
