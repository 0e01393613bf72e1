package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type RouteResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PassengerResponse struct {
	ID        string           `json:"id"`
	Title     entity.UserTitle `json:"title"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email,omitempty"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	PNR           string               `json:"pnr"`
	Status        entity.BookingStatus `json:"status"`
	Route         RouteResponse        `json:"route"`
	TripType      entity.TripType      `json:"trip_type"`
	DepartureDate string               `json:"departure_date"`
	ReturnDate    string               `json:"return_date,omitempty"`
	Passengers    []PassengerResponse  `json:"passengers,omitempty"`
	TotalAmount   float64              `json:"total_amount"`
	Currency      string               `json:"currency"`
	ContactEmail  string               `json:"contact_email"`
	Guest         bool                 `json:"guest"`
	TicketURL     string               `json:"ticket_url,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func PassengerToResponse(p *entity.Passenger) PassengerResponse {
	return PassengerResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

func BookingToResponse(booking *entity.Booking, passengers []entity.Passenger) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID.String(),
		PNR:           booking.PNR,
		Status:        booking.Status,
		Route:         RouteResponse{From: booking.FromCode, To: booking.ToCode},
		TripType:      booking.TripType,
		DepartureDate: booking.DepartureDate.Format("2006-01-02"),
		TotalAmount:   booking.TotalAmount,
		Currency:      booking.Currency,
		ContactEmail:  booking.ContactEmail,
		Guest:         booking.Guest,
		CreatedAt:     booking.CreatedAt,
	}
	if booking.ReturnDate != nil {
		resp.ReturnDate = booking.ReturnDate.Format("2006-01-02")
	}
	if booking.TicketURL != nil {
		resp.TicketURL = *booking.TicketURL
	}
	for i := range passengers {
		resp.Passengers = append(resp.Passengers, PassengerToResponse(&passengers[i]))
	}
	return resp
}
