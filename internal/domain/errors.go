package domain

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrOwnerMismatch      = errors.New("owner mismatch for booking")
	ErrBookingNotAccepted = errors.New("booking must be accepted before payment")
	ErrBookingFinalized   = errors.New("booking is already finalized")
	ErrSignatureMismatch  = errors.New("invalid payment signature")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrValidation = errors.New("validation error")
)
