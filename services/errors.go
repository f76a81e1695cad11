package services

import "errors"

// Expected failures, reported to callers distinctly. Controllers map each to
// its own HTTP status; anything else is an internal error and rolls back the
// surrounding transaction.
var (
	// validation
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidRole      = errors.New("invalid role")

	// conflicts
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")
	ErrLicenseTaken  = errors.New("driver with this license number already exists")

	// lookups
	ErrNotFound    = errors.New("not found")
	ErrCarNotFound = errors.New("car not found")

	// authorization
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrSelfDelete         = errors.New("you cannot delete your own account")
	ErrAdminProtected     = errors.New("cannot delete admin accounts")
)
