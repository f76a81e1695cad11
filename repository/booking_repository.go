package repository

import (
	"carrental/entity"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) FindByID(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListForUser(userID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// ListForDriver returns the bookings assigned to a driver, soonest first.
func (r *BookingRepository) ListForDriver(driverID uint) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("driver_id = ?", driverID).Order("start_date ASC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) List() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Booking{}).Count(&count).Error
	return count, err
}

func (r *BookingRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Booking{}).Where("id = ?", id).Update("status", status).Error
}

func (r *BookingRepository) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Booking{}, id).Error
}

func (r *BookingRepository) DeleteByCarTx(tx *gorm.DB, carID uint) error {
	return tx.Unscoped().Where("car_id = ?", carID).Delete(&entity.Booking{}).Error
}

func (r *BookingRepository) DeleteByCarIDsTx(tx *gorm.DB, carIDs []uint) error {
	if len(carIDs) == 0 {
		return nil
	}
	return tx.Unscoped().Where("car_id IN ?", carIDs).Delete(&entity.Booking{}).Error
}

func (r *BookingRepository) DeleteByUserTx(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.Booking{}).Error
}

// DetachDriverTx nulls driver_id on a driver's bookings so their history
// survives the driver's removal.
func (r *BookingRepository) DetachDriverTx(tx *gorm.DB, driverID uint) error {
	return tx.Model(&entity.Booking{}).Where("driver_id = ?", driverID).
		Update("driver_id", nil).Error
}

func (r *BookingRepository) DetachDriverIDsTx(tx *gorm.DB, driverIDs []uint) error {
	if len(driverIDs) == 0 {
		return nil
	}
	return tx.Model(&entity.Booking{}).Where("driver_id IN ?", driverIDs).
		Update("driver_id", nil).Error
}
