package services

import (
	"context"
	"errors"

	"carrental/entity"
	"carrental/pkg/authz"
	"carrental/repository"

	"gorm.io/gorm"
)

// Geocoder resolves a free-text location to coordinates. Implementations must
// return a usable fallback coordinate instead of failing.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64)
}

type CarService struct {
	DB          *gorm.DB
	Repo        *repository.CarRepository
	BookingRepo *repository.BookingRepository
	UserRepo    *repository.UserRepository
	Geo         Geocoder
}

func NewCarService(db *gorm.DB, geo Geocoder) *CarService {
	return &CarService{
		DB:          db,
		Repo:        repository.NewCarRepository(db),
		BookingRepo: repository.NewBookingRepository(db),
		UserRepo:    repository.NewUserRepository(db),
		Geo:         geo,
	}
}

type CreateCarInput struct {
	Brand        string
	Model        string
	Year         int
	PricePerDay  float64
	Seats        int
	Transmission string
	FuelType     string
	Location     string
	Image        []byte
	ImageType    string
}

// Create lists a car for the client and resolves its location up front so the
// tracking view never has to geocode per request. The listing role is checked
// against the database, not the token.
func (s *CarService) Create(ctx context.Context, clientID uint, in CreateCarInput) (*entity.Car, error) {
	actor, err := findActor(s.UserRepo, clientID)
	if err != nil {
		return nil, err
	}
	if !authz.CanListVehicles(actor.Role) {
		return nil, ErrForbidden
	}

	lat, lng := s.Geo.Geocode(ctx, in.Location)

	car := &entity.Car{
		Brand:        in.Brand,
		CarModel:     in.Model,
		Year:         in.Year,
		PricePerDay:  in.PricePerDay,
		Seats:        in.Seats,
		Transmission: in.Transmission,
		FuelType:     in.FuelType,
		Available:    true,
		Location:     in.Location,
		Latitude:     lat,
		Longitude:    lng,
		Image:        in.Image,
		ImageType:    in.ImageType,
		ClientID:     clientID,
	}
	if err := s.Repo.Create(car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) Get(id uint) (*entity.Car, error) {
	car, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return car, err
}

func (s *CarService) ListAvailable(limit int) ([]entity.Car, error) {
	return s.Repo.ListAvailable(limit)
}

func (s *CarService) ListForClient(clientID uint) ([]entity.Car, error) {
	return s.Repo.ListByClient(clientID)
}

// Delete removes a car and every booking referencing it, atomically.
func (s *CarService) Delete(actorID, carID uint) error {
	actor, err := findActor(s.UserRepo, actorID)
	if err != nil {
		return err
	}

	car, err := s.Repo.FindByID(carID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !authz.CanDeleteCar(actor, car) {
		return ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.BookingRepo.DeleteByCarTx(tx, car.ID); err != nil {
			return err
		}
		return s.Repo.DeleteTx(tx, car.ID)
	})
}
