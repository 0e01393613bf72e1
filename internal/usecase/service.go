package usecase

import (
	"time"

	"go.uber.org/zap"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/gateway"
	"flight-booking/pkg/utils"
)

// timeNow is swapped in tests that pin the clock.
var timeNow = time.Now

// Service bundles every usecase behind one handle for wiring.
type Service struct {
	Auth    AuthService
	Booking BookingService
	Payment PaymentService
	Flight  FlightService
	Support SupportService
	Ticket  TicketService
	Mail    MailService
}

// Gateways carries the external clients the services depend on.
type Gateways struct {
	Payment PaymentGateways
	Amadeus gateway.AmadeusClient
	Mailer  gateway.Mailer
}

func NewService(repo *repository.Repository, gateways Gateways, config *utils.Config, log *zap.Logger) *Service {
	ticket := NewTicketService(config.Ticket.Dir, config.App.PublicURL, repo.Airports, log)
	mail := NewMailService(gateways.Mailer, config.App.PublicURL, log)
	tokenTTL := time.Duration(config.Auth.TokenExpiryHours) * time.Hour

	return &Service{
		Auth:    NewAuthService(repo, tokenTTL, log),
		Booking: NewBookingService(repo, mail, config.Booking.UnitPrice, config.Booking.Currency, log),
		Payment: NewPaymentService(repo, gateways.Payment, ticket, mail, config.Payment.DemoMode, log),
		Flight:  NewFlightService(repo, gateways.Amadeus, log),
		Support: NewSupportService(repo, log),
		Ticket:  ticket,
		Mail:    mail,
	}
}
