package services

import "errors"

// Sentinel errors returned by the services. Handlers map them to HTTP
// status codes; anything else is treated as a server error.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidDate     = errors.New("invalid date format")
	ErrDateRange       = errors.New("end date cannot be before start date")
	ErrLeaveNotFound   = errors.New("leave not found")
	ErrLeaveNotPending = errors.New("leave is not pending")
	ErrNoFields        = errors.New("no fields to update")
	ErrInvalidStatus   = errors.New("invalid status")
)
