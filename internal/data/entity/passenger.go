package entity

import (
	"github.com/google/uuid"
)

// Passenger belongs to exactly one booking and is created in the same
// logical operation as the booking row.
type Passenger struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	Title     UserTitle `db:"title"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
}
