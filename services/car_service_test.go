package services

import (
	"context"
	"errors"
	"testing"

	"carrental/entity"
)

type stubGeo struct {
	lat, lng float64
}

func (s stubGeo) Geocode(_ context.Context, _ string) (float64, float64) {
	return s.lat, s.lng
}

func TestCreateCarGeocodesLocation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarService(db, stubGeo{lat: 48.8566, lng: 2.3522})
	client := mustUser(t, db, "client1", entity.RoleClient)

	car, err := svc.Create(context.Background(), client.ID, CreateCarInput{
		Brand:        "Renault",
		Model:        "Clio",
		Year:         2021,
		PricePerDay:  35,
		Seats:        5,
		Transmission: "manual",
		FuelType:     "petrol",
		Location:     "Paris",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if car.Latitude != 48.8566 || car.Longitude != 2.3522 {
		t.Errorf("coordinates = (%v, %v), want (48.8566, 2.3522)", car.Latitude, car.Longitude)
	}
	if !car.Available {
		t.Error("new car should be available")
	}
	if car.ClientID != client.ID {
		t.Errorf("ClientID = %d, want %d", car.ClientID, client.ID)
	}
}

// Listing is authorized against the stored role, so a token minted for a
// role the account no longer holds (or an account that no longer exists)
// cannot create cars.
func TestCreateCarChecksStoredRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarService(db, stubGeo{})

	renter := mustUser(t, db, "renter1", entity.RoleUser)
	admin := mustUser(t, db, "boss", entity.RoleAdmin)

	if _, err := svc.Create(context.Background(), renter.ID, CreateCarInput{Brand: "Fiat", Model: "500"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("renter create: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(context.Background(), 999, CreateCarInput{Brand: "Fiat", Model: "500"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("deleted account create: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(context.Background(), admin.ID, CreateCarInput{Brand: "Fiat", Model: "500"}); err != nil {
		t.Fatalf("admin create: %v", err)
	}

	var count int64
	db.Model(&entity.Car{}).Count(&count)
	if count != 1 {
		t.Errorf("cars = %d, want 1 (only the admin's)", count)
	}
}

func TestDeleteCarCascadesBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarService(db, stubGeo{})
	bookings := NewBookingService(db)

	client := mustUser(t, db, "client1", entity.RoleClient)
	renter := mustUser(t, db, "renter1", entity.RoleUser)
	car := mustCar(t, db, client.ID, 50)
	other := mustCar(t, db, client.ID, 60)

	for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		if _, err := bookings.Create(renter.ID, CreateBookingInput{
			CarID:     car.ID,
			StartDate: date(t, d),
			EndDate:   date(t, d).AddDate(0, 0, 2),
		}); err != nil {
			t.Fatalf("Create booking: %v", err)
		}
	}
	if _, err := bookings.Create(renter.ID, CreateBookingInput{
		CarID:     other.ID,
		StartDate: date(t, "2024-01-01"),
		EndDate:   date(t, "2024-01-02"),
	}); err != nil {
		t.Fatalf("Create booking: %v", err)
	}

	if err := svc.Delete(client.ID, car.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var carCount, bookingCount int64
	db.Model(&entity.Car{}).Count(&carCount)
	db.Model(&entity.Booking{}).Count(&bookingCount)
	if carCount != 1 {
		t.Errorf("cars left = %d, want 1", carCount)
	}
	if bookingCount != 1 {
		t.Errorf("bookings left = %d, want 1 (only the other car's)", bookingCount)
	}
}

func TestDeleteCarOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarService(db, stubGeo{})

	owner := mustUser(t, db, "owner", entity.RoleClient)
	other := mustUser(t, db, "other", entity.RoleClient)
	admin := mustUser(t, db, "boss", entity.RoleAdmin)

	car := mustCar(t, db, owner.ID, 50)
	if err := svc.Delete(other.ID, car.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("another client: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(owner.ID, car.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	car = mustCar(t, db, owner.ID, 50)
	if err := svc.Delete(admin.ID, car.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if err := svc.Delete(owner.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing car: err = %v, want ErrNotFound", err)
	}

	car = mustCar(t, db, owner.ID, 50)
	if err := svc.Delete(999, car.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("deleted account actor: err = %v, want ErrForbidden", err)
	}
}

// A failure mid-cascade leaves the car and all its bookings in place.
func TestDeleteCarRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarService(db, stubGeo{})
	bookings := NewBookingService(db)

	client := mustUser(t, db, "client1", entity.RoleClient)
	renter := mustUser(t, db, "renter1", entity.RoleUser)
	car := mustCar(t, db, client.ID, 50)

	for _, d := range []string{"2024-01-01", "2024-02-01"} {
		if _, err := bookings.Create(renter.ID, CreateBookingInput{
			CarID:     car.ID,
			StartDate: date(t, d),
			EndDate:   date(t, d).AddDate(0, 0, 2),
		}); err != nil {
			t.Fatalf("Create booking: %v", err)
		}
	}

	failDeletesOn(t, db, "cars")
	if err := svc.Delete(client.ID, car.ID); err == nil {
		t.Fatal("Delete should fail when the car row cannot be removed")
	}

	var carCount, bookingCount int64
	db.Model(&entity.Car{}).Count(&carCount)
	db.Model(&entity.Booking{}).Count(&bookingCount)
	if carCount != 1 {
		t.Errorf("cars left = %d, want 1", carCount)
	}
	if bookingCount != 2 {
		t.Errorf("bookings left = %d, want 2 (delete rolled back)", bookingCount)
	}
}
