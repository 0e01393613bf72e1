package response

import "flight-booking/internal/data/entity"

type AirportResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

// Helper converters
func AirportToResponse(a entity.Airport) AirportResponse {
	return AirportResponse{
		Code:    a.Code,
		Name:    a.Name,
		City:    a.City,
		Country: a.Country,
		Region:  a.Region,
	}
}

func AirportsToResponse(airports []entity.Airport) []AirportResponse {
	out := make([]AirportResponse, len(airports))
	for i, a := range airports {
		out[i] = AirportToResponse(a)
	}
	return out
}
