package gateway

import (
	"bytes"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// BookingEmail carries everything the booking email templates need.
type BookingEmail struct {
	To          string
	Name        string
	PNR         string
	FromAirport string
	ToAirport   string
	Departure   string
	Passengers  int
	Amount      float64
	Currency    string
	LookupURL   string
	TicketPath  string
}

// Mailer sends the two booking lifecycle emails. The booking confirmation
// goes out when the booking is created and payment is still due; the payment
// confirmation goes out after capture, with the e-ticket attached.
type Mailer interface {
	SendBookingConfirmation(email BookingEmail) error
	SendPaymentConfirmation(email BookingEmail) error
}

var bookingCreatedTemplate = template.Must(template.New("booking-created").Parse(`
<h2>We received your booking</h2>
<p>Dear {{.Name}},</p>
<p>Your booking <strong>{{.PNR}}</strong> is reserved and awaiting payment.</p>
<table>
  <tr><td>Route</td><td>{{.FromAirport}} &rarr; {{.ToAirport}}</td></tr>
  <tr><td>Departure</td><td>{{.Departure}}</td></tr>
  <tr><td>Passengers</td><td>{{.Passengers}}</td></tr>
  <tr><td>Total due</td><td>{{printf "%.2f" .Amount}} {{.Currency}}</td></tr>
</table>
<p>Complete the payment to receive your e-ticket. You can review your booking
any time at <a href="{{.LookupURL}}">{{.LookupURL}}</a>.</p>
`))

var paymentConfirmedTemplate = template.Must(template.New("payment-confirmed").Parse(`
<h2>Your booking is confirmed</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for booking with us. Your reference is <strong>{{.PNR}}</strong>.</p>
<table>
  <tr><td>Route</td><td>{{.FromAirport}} &rarr; {{.ToAirport}}</td></tr>
  <tr><td>Departure</td><td>{{.Departure}}</td></tr>
  <tr><td>Passengers</td><td>{{.Passengers}}</td></tr>
  <tr><td>Total paid</td><td>{{printf "%.2f" .Amount}} {{.Currency}}</td></tr>
</table>
<p>You can review your booking any time at <a href="{{.LookupURL}}">{{.LookupURL}}</a>.</p>
<p>Your e-ticket is attached. Safe travels!</p>
`))

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewSMTPMailer(host string, port int, user, password, from string, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		log:    log.With(zap.String("gateway", "mailer")),
	}
}

func (m *smtpMailer) SendBookingConfirmation(email BookingEmail) error {
	subject := fmt.Sprintf("Booking received %s", email.PNR)
	return m.send("booking", bookingCreatedTemplate, subject, email, "")
}

func (m *smtpMailer) SendPaymentConfirmation(email BookingEmail) error {
	subject := fmt.Sprintf("Booking confirmation %s", email.PNR)
	return m.send("payment", paymentConfirmedTemplate, subject, email, email.TicketPath)
}

func (m *smtpMailer) send(kind string, tmpl *template.Template, subject string, email BookingEmail, attachment string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, email); err != nil {
		return fmt.Errorf("render %s email: %w", kind, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())
	if attachment != "" {
		msg.Attach(attachment)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("kind", kind),
			zap.String("pnr", email.PNR),
		)
		return fmt.Errorf("send %s email for %s: %w", kind, email.PNR, err)
	}

	m.log.Info("email sent",
		zap.String("kind", kind),
		zap.String("to", email.To),
		zap.String("pnr", email.PNR),
	)
	return nil
}

// logMailer is the fallback when SMTP is not configured. Bookings still
// confirm, the emails just land in the log instead of an inbox.
type logMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) Mailer {
	return &logMailer{log: log.With(zap.String("gateway", "mailer-log"))}
}

func (m *logMailer) SendBookingConfirmation(email BookingEmail) error {
	m.log.Info("booking email suppressed, smtp not configured",
		zap.String("to", email.To),
		zap.String("pnr", email.PNR),
		zap.String("lookup_url", email.LookupURL),
	)
	return nil
}

func (m *logMailer) SendPaymentConfirmation(email BookingEmail) error {
	m.log.Info("payment email suppressed, smtp not configured",
		zap.String("to", email.To),
		zap.String("pnr", email.PNR),
		zap.String("lookup_url", email.LookupURL),
	)
	return nil
}
