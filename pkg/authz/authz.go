// Package authz holds the authorization rules for every mutating operation.
// Handlers must call these immediately before the mutation — never rely on a
// check done earlier in the request.
package authz

import (
	"carrental/entity"
)

// CanDeleteUser allows admins to remove accounts, but an admin can never
// remove themself or another admin.
func CanDeleteUser(actor, target *entity.User) bool {
	if actor.Role != entity.RoleAdmin {
		return false
	}
	if target.ID == actor.ID {
		return false
	}
	return target.Role != entity.RoleAdmin
}

// CanDeleteCar: admin, or the client who listed it.
func CanDeleteCar(actor *entity.User, car *entity.Car) bool {
	return actor.Role == entity.RoleAdmin || car.ClientID == actor.ID
}

// CanDeleteDriver: admin, or the client who listed the driver.
func CanDeleteDriver(actor *entity.User, driver *entity.Driver) bool {
	return actor.Role == entity.RoleAdmin || driver.ClientID == actor.ID
}

// CanDeleteBooking: admin, or the renter who made it.
func CanDeleteBooking(actor *entity.User, b *entity.Booking) bool {
	return actor.Role == entity.RoleAdmin || b.UserID == actor.ID
}

// CanListVehicles reports whether a role may create cars and drivers.
func CanListVehicles(role string) bool {
	return role == entity.RoleClient || role == entity.RoleAdmin
}

// CanUpdateBookingStatus allows only the assigned driver's owner to move a
// booking through its lifecycle. actorDriver is the actor's own driver
// profile (nil when they have none). There is no admin override here.
func CanUpdateBookingStatus(actorDriver *entity.Driver, b *entity.Booking) bool {
	if actorDriver == nil || b.DriverID == nil {
		return false
	}
	return *b.DriverID == actorDriver.ID
}
