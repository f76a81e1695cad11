package configs

import (
	"carrental/entity"
	"carrental/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the platform administrator on first run. Skipped when the
// credentials are not configured or the account already exists.
func SeedAdmin(log logger.ILogger) error {
	db := DB()
	c := LoadConfig()

	if c.AdminEmail == "" || c.AdminPassword == "" {
		log.Warning("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("role = ?", entity.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: c.AdminUsername,
		Email:    c.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("admin account seeded", logger.String("username", admin.Username))
	return nil
}
