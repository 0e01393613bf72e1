package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// CanTransitionTo enforces the booking state machine: a pending booking may
// confirm, cancel or expire; a confirmed booking may only cancel (refund).
// Everything else is rejected.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled || next == BookingStatusExpired
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled
	default:
		return false
	}
}

type TripType string

const (
	TripTypeOneway    TripType = "oneway"
	TripTypeRoundtrip TripType = "roundtrip"
)

type Booking struct {
	Base
	PNR           string        `db:"pnr"`
	UserID        uuid.UUID     `db:"user_id"`
	Guest         bool          `db:"guest"`
	Status        BookingStatus `db:"status"`
	FromCode      string        `db:"from_code"`
	ToCode        string        `db:"to_code"`
	DepartureDate time.Time     `db:"departure_date"`
	ReturnDate    *time.Time    `db:"return_date"`
	TripType      TripType      `db:"trip_type"`
	TotalAmount   float64       `db:"total_amount"`
	Currency      string        `db:"currency"`
	ContactEmail  string        `db:"contact_email"`
	TermsAccepted bool          `db:"terms_accepted"`
	TicketURL     *string       `db:"ticket_url"`
}
