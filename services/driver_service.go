package services

import (
	"errors"
	"time"

	"carrental/entity"
	"carrental/pkg/authz"
	"carrental/repository"

	"gorm.io/gorm"
)

type DriverService struct {
	DB          *gorm.DB
	Repo        *repository.DriverRepository
	BookingRepo *repository.BookingRepository
	UserRepo    *repository.UserRepository
}

func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{
		DB:          db,
		Repo:        repository.NewDriverRepository(db),
		BookingRepo: repository.NewBookingRepository(db),
		UserRepo:    repository.NewUserRepository(db),
	}
}

type CreateDriverInput struct {
	Name                  string
	LicenseNumber         string
	Experience            int
	Phone                 string
	Email                 string
	LicenseType           string
	LicenseExpiry         *time.Time
	VehicleTypes          string
	Skills                string
	Languages             string
	Availability          string
	HourlyRate            float64
	ServiceAreas          string
	EmergencyContactName  string
	EmergencyContactPhone string
}

func (s *DriverService) Create(clientID uint, in CreateDriverInput) (*entity.Driver, error) {
	actor, err := findActor(s.UserRepo, clientID)
	if err != nil {
		return nil, err
	}
	if !authz.CanListVehicles(actor.Role) {
		return nil, ErrForbidden
	}

	count, err := s.Repo.CountByLicense(in.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrLicenseTaken
	}

	if in.HourlyRate <= 0 {
		in.HourlyRate = 25
	}

	driver := &entity.Driver{
		Name:                  in.Name,
		LicenseNumber:         in.LicenseNumber,
		Experience:            in.Experience,
		Phone:                 in.Phone,
		Email:                 in.Email,
		LicenseType:           in.LicenseType,
		LicenseExpiry:         in.LicenseExpiry,
		VehicleTypes:          in.VehicleTypes,
		Skills:                in.Skills,
		Languages:             in.Languages,
		Availability:          in.Availability,
		HourlyRate:            in.HourlyRate,
		ServiceAreas:          in.ServiceAreas,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		Available:             true,
		ClientID:              clientID,
	}
	if err := s.Repo.Create(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) ListAvailable() ([]entity.Driver, error) {
	return s.Repo.ListAvailable()
}

// Dashboard returns the client's driver profile and the bookings assigned to
// it, soonest start first.
func (s *DriverService) Dashboard(clientID uint) (*entity.Driver, []entity.Booking, error) {
	driver, err := s.Repo.FindByClient(clientID)
	if err != nil {
		return nil, nil, err
	}
	if driver == nil {
		return nil, nil, ErrNotFound
	}

	bookings, err := s.BookingRepo.ListForDriver(driver.ID)
	if err != nil {
		return nil, nil, err
	}
	return driver, bookings, nil
}

// Delete detaches the driver from their bookings (keeping booking history)
// and removes the profile, atomically.
func (s *DriverService) Delete(actorID, driverID uint) error {
	actor, err := findActor(s.UserRepo, actorID)
	if err != nil {
		return err
	}

	driver, err := s.Repo.FindByID(driverID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !authz.CanDeleteDriver(actor, driver) {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.BookingRepo.DetachDriverTx(tx, driver.ID); err != nil {
			return err
		}
		return s.Repo.DeleteTx(tx, driver.ID)
	})
}
