package wire

import (
	"github.com/go-chi/chi/v5"

	"flight-booking/internal/adaptor"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// Reference data and offer search are public.
	r.Get("/api/airports", flightHandler.ListAirports)
	r.Get("/api/airports/{code}", flightHandler.GetAirport)
	r.Get("/api/flights/search", flightHandler.SearchOffers)
}
