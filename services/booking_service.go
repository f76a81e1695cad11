package services

import (
	"errors"
	"time"

	"carrental/entity"
	"carrental/pkg/authz"
	"carrental/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService struct {
	DB         *gorm.DB
	Repo       *repository.BookingRepository
	CarRepo    *repository.CarRepository
	DriverRepo *repository.DriverRepository
	UserRepo   *repository.UserRepository
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:         db,
		Repo:       repository.NewBookingRepository(db),
		CarRepo:    repository.NewCarRepository(db),
		DriverRepo: repository.NewDriverRepository(db),
		UserRepo:   repository.NewUserRepository(db),
	}
}

type CreateBookingInput struct {
	CarID           uint
	DriverID        uint // 0 = no driver requested
	StartDate       time.Time
	EndDate         time.Time
	PickupLocation  string
	DropoffLocation string
}

// TotalPrice is the daily rate times the whole-day length of the half-open
// range [start, end). Fractional day counts truncate toward zero.
func TotalPrice(pricePerDay float64, start, end time.Time) float64 {
	days := int(end.Sub(start).Hours() / 24)
	return pricePerDay * float64(days)
}

// Create validates the rental window, prices it and persists one pending
// booking. Overlapping bookings of the same car are deliberately not checked;
// see DESIGN.md.
func (s *BookingService) Create(renterID uint, in CreateBookingInput) (*entity.Booking, error) {
	if !in.EndDate.After(in.StartDate) {
		return nil, ErrInvalidDateRange
	}

	car, err := s.CarRepo.FindByID(in.CarID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		Reference:       uuid.NewString(),
		UserID:          renterID,
		CarID:           car.ID,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		TotalPrice:      TotalPrice(car.PricePerDay, in.StartDate, in.EndDate),
		Status:          entity.BookingPending,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
	}
	if in.DriverID != 0 {
		id := in.DriverID
		booking.DriverID = &id
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListForUser(userID uint) ([]entity.Booking, error) {
	return s.Repo.ListForUser(userID)
}

// UpdateStatus moves a booking through its lifecycle. Only the owner of the
// assigned driver profile may do this; there is no admin override.
func (s *BookingService) UpdateStatus(actorID, bookingID uint, status string) error {
	if !entity.ValidBookingStatus(status) {
		return ErrInvalidStatus
	}

	booking, err := s.Repo.FindByID(bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	actorDriver, err := s.DriverRepo.FindByClient(actorID)
	if err != nil {
		return err
	}
	if !authz.CanUpdateBookingStatus(actorDriver, booking) {
		return ErrForbidden
	}

	return s.Repo.UpdateStatus(booking.ID, status)
}

// Delete removes a booking. No cascades, a booking is a leaf.
func (s *BookingService) Delete(actorID, bookingID uint) error {
	actor, err := findActor(s.UserRepo, actorID)
	if err != nil {
		return err
	}

	booking, err := s.Repo.FindByID(bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !authz.CanDeleteBooking(actor, booking) {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteTx(tx, booking.ID)
	})
}
