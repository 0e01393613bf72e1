package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/gateway"
)

// recordingMailer captures outgoing emails instead of delivering them.
type recordingMailer struct {
	mu      sync.Mutex
	booking []gateway.BookingEmail
	payment []gateway.BookingEmail
}

func (m *recordingMailer) SendBookingConfirmation(email gateway.BookingEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.booking = append(m.booking, email)
	return nil
}

func (m *recordingMailer) SendPaymentConfirmation(email gateway.BookingEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payment = append(m.payment, email)
	return nil
}

func TestCreateBookingSendsAcknowledgementEmail(t *testing.T) {
	repo := newTestRepo()
	mailer := &recordingMailer{}
	mail := NewMailService(mailer, "http://localhost:8080", zap.NewNop())
	svc := NewBookingService(repo, mail, 15, "USD", zap.NewNop())
	ctx := context.Background()

	resp, err := svc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)
	svc.(*bookingService).mailWG.Wait()

	require.Len(t, mailer.booking, 1)
	assert.Empty(t, mailer.payment)

	sent := mailer.booking[0]
	assert.Equal(t, "alice@example.com", sent.To)
	assert.Equal(t, resp.PNR, sent.PNR)
	assert.Equal(t, "LHR", sent.FromAirport)
	assert.Equal(t, "JFK", sent.ToAirport)
	assert.Equal(t, 2, sent.Passengers)
	assert.Equal(t, 30.0, sent.Amount)
	assert.Empty(t, sent.TicketPath)
	assert.Contains(t, sent.LookupURL, "pnr="+resp.PNR)
	assert.Contains(t, sent.LookupURL, "guest-booking-lookup")
}

func TestSendPaymentConfirmationAttachesTicket(t *testing.T) {
	mailer := &recordingMailer{}
	mail := NewMailService(mailer, "http://localhost:8080", zap.NewNop())

	booking := &entity.Booking{
		PNR:           "AB12CD",
		FromCode:      "LHR",
		ToCode:        "JFK",
		DepartureDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount:   15,
		Currency:      "USD",
		ContactEmail:  "alice@example.com",
	}
	passengers := []entity.Passenger{
		{Title: entity.TitleMs, FirstName: "Alice", LastName: "Nguyen"},
	}

	require.NoError(t, mail.SendPaymentConfirmation(booking, passengers, "/tmp/AB12CD.pdf"))

	require.Len(t, mailer.payment, 1)
	assert.Empty(t, mailer.booking)
	assert.Equal(t, "Alice Nguyen", mailer.payment[0].Name)
	assert.Equal(t, "/tmp/AB12CD.pdf", mailer.payment[0].TicketPath)
}
