package adaptor

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

// ListAirports handles GET /api/airports
func (h *FlightHandler) ListAirports(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	resp := h.service.ListAirports(r.Context(), r.URL.Query().Get("q"), limit)
	utils.ResponseSuccess(w, "Airports retrieved", resp)
}

// GetAirport handles GET /api/airports/{code}
func (h *FlightHandler) GetAirport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAirport(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		handleServiceError(w, h.log, err, "get airport")
		return
	}
	utils.ResponseSuccess(w, "Airport retrieved", resp)
}

// SearchOffers handles GET /api/flights/search
func (h *FlightHandler) SearchOffers(w http.ResponseWriter, r *http.Request) {
	adults, _ := strconv.Atoi(r.URL.Query().Get("adults"))
	req := request.SearchOffersRequest{
		From:          r.URL.Query().Get("from"),
		To:            r.URL.Query().Get("to"),
		DepartureDate: r.URL.Query().Get("departure_date"),
		Adults:        adults,
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.SearchOffers(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search offers")
		return
	}

	utils.ResponseSuccess(w, "Offers retrieved", resp)
}
