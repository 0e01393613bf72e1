package response

import "flight-booking/internal/gateway"

type FlightOfferResponse struct {
	ID            string  `json:"id"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time,omitempty"`
	Carrier       string  `json:"carrier,omitempty"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
}

// Helper converters
func OffersToResponse(offers []gateway.FlightOffer) []FlightOfferResponse {
	out := make([]FlightOfferResponse, len(offers))
	for i, o := range offers {
		out[i] = FlightOfferResponse{
			ID:            o.ID,
			From:          o.From,
			To:            o.To,
			DepartureDate: o.DepartureDate,
			DepartureTime: o.DepartureTime,
			Carrier:       o.Carrier,
			Price:         o.Price,
			Currency:      o.Currency,
		}
	}
	return out
}
