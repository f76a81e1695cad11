package repository

import (
	"errors"

	"carrental/entity"

	"gorm.io/gorm"
)

type DriverRepository struct {
	DB *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{DB: db}
}

func (r *DriverRepository) Create(driver *entity.Driver) error {
	return r.DB.Create(driver).Error
}

func (r *DriverRepository) FindByID(id uint) (*entity.Driver, error) {
	var driver entity.Driver
	if err := r.DB.First(&driver, id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

// FindByClient returns the client's driver profile, or nil when they have
// none. A client keeps at most one profile that matters here; the oldest wins.
func (r *DriverRepository) FindByClient(clientID uint) (*entity.Driver, error) {
	var driver entity.Driver
	err := r.DB.Where("client_id = ?", clientID).Order("id").First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) CountByLicense(licenseNumber string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Driver{}).Where("license_number = ?", licenseNumber).Count(&count).Error
	return count, err
}

func (r *DriverRepository) ListAvailable() ([]entity.Driver, error) {
	var drivers []entity.Driver
	err := r.DB.Where("available = ?", true).Order("id").Find(&drivers).Error
	return drivers, err
}

func (r *DriverRepository) List() ([]entity.Driver, error) {
	var drivers []entity.Driver
	err := r.DB.Order("id").Find(&drivers).Error
	return drivers, err
}

func (r *DriverRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Driver{}).Count(&count).Error
	return count, err
}

func (r *DriverRepository) IDsByClientTx(tx *gorm.DB, clientID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.Driver{}).Where("client_id = ?", clientID).Pluck("id", &ids).Error
	return ids, err
}

func (r *DriverRepository) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Driver{}, id).Error
}

func (r *DriverRepository) DeleteByClientTx(tx *gorm.DB, clientID uint) error {
	return tx.Unscoped().Where("client_id = ?", clientID).Delete(&entity.Driver{}).Error
}
