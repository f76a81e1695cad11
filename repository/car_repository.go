package repository

import (
	"carrental/entity"

	"gorm.io/gorm"
)

type CarRepository struct {
	DB *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{DB: db}
}

func (r *CarRepository) Create(car *entity.Car) error {
	return r.DB.Create(car).Error
}

func (r *CarRepository) FindByID(id uint) (*entity.Car, error) {
	var car entity.Car
	if err := r.DB.First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarRepository) ListAvailable(limit int) ([]entity.Car, error) {
	var cars []entity.Car
	q := r.DB.Where("available = ?", true).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&cars).Error
	return cars, err
}

func (r *CarRepository) ListByClient(clientID uint) ([]entity.Car, error) {
	var cars []entity.Car
	err := r.DB.Where("client_id = ?", clientID).Order("id").Find(&cars).Error
	return cars, err
}

func (r *CarRepository) List() ([]entity.Car, error) {
	var cars []entity.Car
	err := r.DB.Order("id").Find(&cars).Error
	return cars, err
}

func (r *CarRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Car{}).Count(&count).Error
	return count, err
}

// IDsByClientTx lists the ids of a client's cars inside the caller's
// transaction, for cascades that need to touch dependent bookings first.
func (r *CarRepository) IDsByClientTx(tx *gorm.DB, clientID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.Car{}).Where("client_id = ?", clientID).Pluck("id", &ids).Error
	return ids, err
}

func (r *CarRepository) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Car{}, id).Error
}

// DeleteByClientTx removes every car listed by a client, for the user
// deletion cascade.
func (r *CarRepository) DeleteByClientTx(tx *gorm.DB, clientID uint) error {
	return tx.Unscoped().Where("client_id = ?", clientID).Delete(&entity.Car{}).Error
}
