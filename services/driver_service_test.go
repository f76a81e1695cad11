package services

import (
	"errors"
	"testing"

	"carrental/entity"
)

func TestCreateDriverLicenseUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)
	client := mustUser(t, db, "client1", entity.RoleClient)
	other := mustUser(t, db, "client2", entity.RoleClient)

	d, err := svc.Create(client.ID, CreateDriverInput{
		Name:          "Jane",
		LicenseNumber: "DL-3001",
		Experience:    3,
		Phone:         "+1-555-0101",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.HourlyRate != 25 {
		t.Errorf("HourlyRate default = %v, want 25", d.HourlyRate)
	}

	// the same license is rejected no matter who submits it
	_, err = svc.Create(other.ID, CreateDriverInput{
		Name:          "John",
		LicenseNumber: "DL-3001",
		Experience:    8,
		Phone:         "+1-555-0102",
	})
	if !errors.Is(err, ErrLicenseTaken) {
		t.Errorf("duplicate license: err = %v, want ErrLicenseTaken", err)
	}
}

func TestCreateDriverChecksStoredRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)

	renter := mustUser(t, db, "renter1", entity.RoleUser)

	// the stored role decides, not the token that routed the request here
	if _, err := svc.Create(renter.ID, CreateDriverInput{Name: "Jane", LicenseNumber: "DL-3101"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("renter create: err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(999, CreateDriverInput{Name: "Jane", LicenseNumber: "DL-3102"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("deleted account create: err = %v, want ErrForbidden", err)
	}

	var count int64
	db.Model(&entity.Driver{}).Count(&count)
	if count != 0 {
		t.Errorf("drivers = %d, want 0", count)
	}
}

func TestDeleteDriverDetachesBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)
	bookings := NewBookingService(db)

	client := mustUser(t, db, "client1", entity.RoleClient)
	renter := mustUser(t, db, "renter1", entity.RoleUser)
	car := mustCar(t, db, client.ID, 50)
	driver := mustDriver(t, db, client.ID, "DL-4001")

	ids := make([]uint, 0, 2)
	for _, d := range []string{"2024-01-01", "2024-02-01"} {
		b, err := bookings.Create(renter.ID, CreateBookingInput{
			CarID:     car.ID,
			DriverID:  driver.ID,
			StartDate: date(t, d),
			EndDate:   date(t, d).AddDate(0, 0, 2),
		})
		if err != nil {
			t.Fatalf("Create booking: %v", err)
		}
		ids = append(ids, b.ID)
	}

	if err := svc.Delete(client.ID, driver.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var driverCount int64
	db.Model(&entity.Driver{}).Count(&driverCount)
	if driverCount != 0 {
		t.Errorf("drivers left = %d, want 0", driverCount)
	}

	// bookings survive with driver detached
	for _, id := range ids {
		var b entity.Booking
		if err := db.First(&b, id).Error; err != nil {
			t.Fatalf("booking %d should survive: %v", id, err)
		}
		if b.DriverID != nil {
			t.Errorf("booking %d DriverID = %v, want nil", id, *b.DriverID)
		}
	}
}

func TestDeleteDriverOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)

	owner := mustUser(t, db, "owner", entity.RoleClient)
	other := mustUser(t, db, "other", entity.RoleClient)
	driver := mustDriver(t, db, owner.ID, "DL-5001")

	if err := svc.Delete(other.ID, driver.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("another client: err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(owner.ID, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing driver: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(999, driver.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("deleted account actor: err = %v, want ErrForbidden", err)
	}
}

// A failure removing the profile also rolls back the booking detach.
func TestDeleteDriverRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)
	bookings := NewBookingService(db)

	client := mustUser(t, db, "client1", entity.RoleClient)
	renter := mustUser(t, db, "renter1", entity.RoleUser)
	car := mustCar(t, db, client.ID, 50)
	driver := mustDriver(t, db, client.ID, "DL-4101")

	b, err := bookings.Create(renter.ID, CreateBookingInput{
		CarID:     car.ID,
		DriverID:  driver.ID,
		StartDate: date(t, "2024-01-01"),
		EndDate:   date(t, "2024-01-03"),
	})
	if err != nil {
		t.Fatalf("Create booking: %v", err)
	}

	failDeletesOn(t, db, "drivers")
	if err := svc.Delete(client.ID, driver.ID); err == nil {
		t.Fatal("Delete should fail when the driver row cannot be removed")
	}

	var got entity.Booking
	if err := db.First(&got, b.ID).Error; err != nil {
		t.Fatalf("booking lookup: %v", err)
	}
	if got.DriverID == nil || *got.DriverID != driver.ID {
		t.Errorf("DriverID = %v, want %d (detach rolled back)", got.DriverID, driver.ID)
	}
	var driverCount int64
	db.Model(&entity.Driver{}).Count(&driverCount)
	if driverCount != 1 {
		t.Errorf("drivers left = %d, want 1", driverCount)
	}
}

func TestDriverDashboard(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)
	bookings := NewBookingService(db)

	client := mustUser(t, db, "client1", entity.RoleClient)
	renter := mustUser(t, db, "renter1", entity.RoleUser)
	car := mustCar(t, db, client.ID, 50)
	driver := mustDriver(t, db, client.ID, "DL-6001")
	stranger := mustUser(t, db, "noprofile", entity.RoleClient)

	if _, err := bookings.Create(renter.ID, CreateBookingInput{
		CarID:     car.ID,
		DriverID:  driver.ID,
		StartDate: date(t, "2024-05-01"),
		EndDate:   date(t, "2024-05-03"),
	}); err != nil {
		t.Fatalf("Create booking: %v", err)
	}
	// unrelated booking without a driver
	if _, err := bookings.Create(renter.ID, CreateBookingInput{
		CarID:     car.ID,
		StartDate: date(t, "2024-06-01"),
		EndDate:   date(t, "2024-06-02"),
	}); err != nil {
		t.Fatalf("Create booking: %v", err)
	}

	got, assigned, err := svc.Dashboard(client.ID)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.ID != driver.ID {
		t.Errorf("driver = %d, want %d", got.ID, driver.ID)
	}
	if len(assigned) != 1 {
		t.Errorf("assigned bookings = %d, want 1", len(assigned))
	}

	if _, _, err := svc.Dashboard(stranger.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("no profile: err = %v, want ErrNotFound", err)
	}
}
