package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
)

func ticketBooking() *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PNR:           "AB12CD",
		UserID:        uuid.New(),
		Status:        entity.BookingStatusConfirmed,
		FromCode:      "LHR",
		ToCode:        "JFK",
		DepartureDate: now.Add(14 * 24 * time.Hour),
		TripType:      entity.TripTypeOneway,
		TotalAmount:   30,
		Currency:      "USD",
		ContactEmail:  "alice@example.com",
		TermsAccepted: true,
	}
}

func ticketPassengers(bookingID uuid.UUID) []entity.Passenger {
	return []entity.Passenger{
		{BookingID: bookingID, Title: "Mr", FirstName: "Alice", LastName: "Nguyen"},
		{BookingID: bookingID, Title: "Ms", FirstName: "Bob", LastName: "Nguyen"},
	}
}

func TestGenerateTicketWritesPDF(t *testing.T) {
	dir := t.TempDir()
	svc := NewTicketService(dir, "http://localhost:8080", repository.NewAirportDirectory(), zap.NewNop())

	booking := ticketBooking()
	publicURL, path, err := svc.Generate(booking, ticketPassengers(booking.ID))
	require.NoError(t, err)

	assert.Equal(t, "/tickets/AB12CD.pdf", publicURL)
	assert.Equal(t, filepath.Join(dir, "AB12CD.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateTicketRoundtrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewTicketService(dir, "http://localhost:8080", repository.NewAirportDirectory(), zap.NewNop())

	booking := ticketBooking()
	returnDate := booking.DepartureDate.Add(7 * 24 * time.Hour)
	booking.ReturnDate = &returnDate
	booking.TripType = entity.TripTypeRoundtrip

	_, path, err := svc.Generate(booking, ticketPassengers(booking.ID))
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGenerateTicketCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tickets")
	svc := NewTicketService(dir, "http://localhost:8080", repository.NewAirportDirectory(), zap.NewNop())

	booking := ticketBooking()
	_, path, err := svc.Generate(booking, ticketPassengers(booking.ID))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, booking.PNR+".pdf"), path)
}
