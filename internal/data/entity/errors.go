package entity

import "errors"

var (
	// Auth errors
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountDisabled    = errors.New("account is suspended or banned")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUnknownAirport    = errors.New("unknown airport code")
	ErrBookingNotPayable = errors.New("booking is not eligible for payment")
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// Payment errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotRefundable       = errors.New("only completed transactions can be refunded")
	ErrPaymentDeclined     = errors.New("payment was declined")
	ErrProviderUnavailable = errors.New("payment provider error")

	// General errors
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("support ticket not found")
	ErrValidation     = errors.New("validation failed")
	ErrForbidden      = errors.New("forbidden operation")
)
