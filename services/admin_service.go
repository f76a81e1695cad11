package services

import (
	"errors"

	"carrental/entity"
	"carrental/pkg/authz"
	"carrental/repository"

	"gorm.io/gorm"
)

type AdminService struct {
	DB          *gorm.DB
	UserRepo    *repository.UserRepository
	CarRepo     *repository.CarRepository
	DriverRepo  *repository.DriverRepository
	BookingRepo *repository.BookingRepository
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{
		DB:          db,
		UserRepo:    repository.NewUserRepository(db),
		CarRepo:     repository.NewCarRepository(db),
		DriverRepo:  repository.NewDriverRepository(db),
		BookingRepo: repository.NewBookingRepository(db),
	}
}

type DashboardCounts struct {
	Users    int64 `json:"users"`
	Cars     int64 `json:"cars"`
	Drivers  int64 `json:"drivers"`
	Bookings int64 `json:"bookings"`
}

func (s *AdminService) Dashboard() (*DashboardCounts, error) {
	var out DashboardCounts
	var err error
	if out.Users, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if out.Cars, err = s.CarRepo.Count(); err != nil {
		return nil, err
	}
	if out.Drivers, err = s.DriverRepo.Count(); err != nil {
		return nil, err
	}
	if out.Bookings, err = s.BookingRepo.Count(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) ListUsers() ([]entity.User, error)       { return s.UserRepo.List() }
func (s *AdminService) ListCars() ([]entity.Car, error)         { return s.CarRepo.List() }
func (s *AdminService) ListDrivers() ([]entity.Driver, error)   { return s.DriverRepo.List() }
func (s *AdminService) ListBookings() ([]entity.Booking, error) { return s.BookingRepo.List() }

// DeleteUser removes an account together with everything it owns, in one
// transaction. The per-resource cascade rules compose: bookings on the user's
// cars are deleted with the cars, bookings assigned to the user's drivers are
// detached, the user's own bookings are deleted, then cars, drivers and
// finally the user.
func (s *AdminService) DeleteUser(actorID, targetID uint) error {
	actor, err := findActor(s.UserRepo, actorID)
	if err != nil {
		return err
	}

	target, err := s.UserRepo.FindByID(targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !authz.CanDeleteUser(actor, target) {
		// surface the precise reason so the UI can say why
		if actor.Role != entity.RoleAdmin {
			return ErrForbidden
		}
		if target.ID == actor.ID {
			return ErrSelfDelete
		}
		return ErrAdminProtected
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		carIDs, err := s.CarRepo.IDsByClientTx(tx, target.ID)
		if err != nil {
			return err
		}
		if err := s.BookingRepo.DeleteByCarIDsTx(tx, carIDs); err != nil {
			return err
		}

		driverIDs, err := s.DriverRepo.IDsByClientTx(tx, target.ID)
		if err != nil {
			return err
		}
		if err := s.BookingRepo.DetachDriverIDsTx(tx, driverIDs); err != nil {
			return err
		}

		if err := s.BookingRepo.DeleteByUserTx(tx, target.ID); err != nil {
			return err
		}
		if err := s.CarRepo.DeleteByClientTx(tx, target.ID); err != nil {
			return err
		}
		if err := s.DriverRepo.DeleteByClientTx(tx, target.ID); err != nil {
			return err
		}
		return s.UserRepo.DeleteTx(tx, target.ID)
	})
}
