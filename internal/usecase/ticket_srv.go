package usecase

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
)

type TicketService interface {
	// Generate renders the e-ticket PDF for a paid booking and returns the
	// public URL it is served under plus the path on disk.
	Generate(booking *entity.Booking, passengers []entity.Passenger) (publicURL, filePath string, err error)
}

type ticketService struct {
	dir       string
	publicURL string
	airports  airportLookup
	log       *zap.Logger
}

type airportLookup interface {
	ByCode(code string) (entity.Airport, bool)
}

func NewTicketService(dir, publicURL string, airports airportLookup, log *zap.Logger) TicketService {
	return &ticketService{
		dir:       dir,
		publicURL: publicURL,
		airports:  airports,
		log:       log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) lookupURL(booking *entity.Booking) string {
	query := url.Values{
		"pnr":   {booking.PNR},
		"email": {booking.ContactEmail},
	}
	return s.publicURL + "/guest-booking-lookup?" + query.Encode()
}

func (s *ticketService) airportLine(code string) string {
	if airport, ok := s.airports.ByCode(code); ok {
		return fmt.Sprintf("%s - %s, %s", airport.Code, airport.Name, airport.City)
	}
	return code
}

func (s *ticketService) Generate(booking *entity.Booking, passengers []entity.Passenger) (string, string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", "", fmt.Errorf("create tickets dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("E-Ticket %s", booking.PNR), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "E-Ticket / Itinerary Receipt")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Booking reference: %s", booking.PNR))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"From", s.airportLine(booking.FromCode)},
		{"To", s.airportLine(booking.ToCode)},
		{"Departure", booking.DepartureDate.Format("Mon, 02 Jan 2006")},
		{"Trip", string(booking.TripType)},
		{"Contact", booking.ContactEmail},
		{"Total paid", fmt.Sprintf("%.2f %s", booking.TotalAmount, booking.Currency)},
	}
	if booking.ReturnDate != nil {
		rows = append(rows[:3], append([][2]string{
			{"Return", booking.ReturnDate.Format("Mon, 02 Jan 2006")},
		}, rows[3:]...)...)
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 7, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Passengers")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range passengers {
		pdf.CellFormat(0, 7, fmt.Sprintf("%d. %s %s %s", i+1, p.Title, p.FirstName, p.LastName), "", 1, "L", false, 0, "")
	}

	// QR code linking back to the booking lookup page
	png, err := qrcode.Encode(s.lookupURL(booking), qrcode.Medium, 256)
	if err != nil {
		return "", "", fmt.Errorf("encode qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("lookup-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("lookup-qr", 160, 20, 35, 35, false, opts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Scan the QR code or visit the link in your confirmation email to review this booking.")

	filePath := filepath.Join(s.dir, booking.PNR+".pdf")
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		s.log.Error("Failed to write ticket pdf",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
		)
		return "", "", fmt.Errorf("write ticket pdf for %s: %w", booking.PNR, err)
	}

	s.log.Info("ticket generated",
		zap.String("pnr", booking.PNR),
		zap.String("path", filePath),
	)

	return "/tickets/" + booking.PNR + ".pdf", filePath, nil
}
