package services

import (
	"errors"

	"carrental/entity"
	"carrental/repository"

	"gorm.io/gorm"
)

// findActor re-reads the authenticated user from the database so every
// mutation is authorized against the current role, not the token's claim.
// A token whose account has since been deleted is rejected outright.
func findActor(repo *repository.UserRepository, id uint) (*entity.User, error) {
	actor, err := repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrForbidden
	}
	return actor, err
}
