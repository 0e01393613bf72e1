package usecase

import (
	"net/url"

	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/gateway"
)

type MailService interface {
	// SendBookingConfirmation acknowledges a freshly created booking that
	// still awaits payment.
	SendBookingConfirmation(booking *entity.Booking, passengers []entity.Passenger) error
	// SendPaymentConfirmation follows a captured payment and attaches the
	// e-ticket at ticketPath.
	SendPaymentConfirmation(booking *entity.Booking, passengers []entity.Passenger, ticketPath string) error
}

type mailService struct {
	mailer    gateway.Mailer
	publicURL string
	log       *zap.Logger
}

func NewMailService(mailer gateway.Mailer, publicURL string, log *zap.Logger) MailService {
	return &mailService{
		mailer:    mailer,
		publicURL: publicURL,
		log:       log.With(zap.String("service", "mail")),
	}
}

func (s *mailService) buildEmail(booking *entity.Booking, passengers []entity.Passenger, ticketPath string) gateway.BookingEmail {
	name := booking.ContactEmail
	if len(passengers) > 0 {
		name = passengers[0].FirstName + " " + passengers[0].LastName
	}

	query := url.Values{
		"pnr":   {booking.PNR},
		"email": {booking.ContactEmail},
	}

	return gateway.BookingEmail{
		To:          booking.ContactEmail,
		Name:        name,
		PNR:         booking.PNR,
		FromAirport: booking.FromCode,
		ToAirport:   booking.ToCode,
		Departure:   booking.DepartureDate.Format("Mon, 02 Jan 2006"),
		Passengers:  len(passengers),
		Amount:      booking.TotalAmount,
		Currency:    booking.Currency,
		LookupURL:   s.publicURL + "/guest-booking-lookup?" + query.Encode(),
		TicketPath:  ticketPath,
	}
}

func (s *mailService) SendBookingConfirmation(booking *entity.Booking, passengers []entity.Passenger) error {
	return s.mailer.SendBookingConfirmation(s.buildEmail(booking, passengers, ""))
}

func (s *mailService) SendPaymentConfirmation(booking *entity.Booking, passengers []entity.Passenger, ticketPath string) error {
	return s.mailer.SendPaymentConfirmation(s.buildEmail(booking, passengers, ticketPath))
}
