package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrEventNotBookable  = errors.New("event is not open for booking")
	ErrHasActiveBookings = errors.New("cannot delete event with existing bookings")
)

var (
	ErrEmailTaken = errors.New("user already exists with this email")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence failure")
)
