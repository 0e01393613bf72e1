package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func parsePagination(r *http.Request) request.PaginatedRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	return request.PaginatedRequest{Page: page, PerPage: perPage}
}

func (h *BookingHandler) create(w http.ResponseWriter, r *http.Request, userID *uuid.UUID) {
	var req request.CreateBookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", resp)
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}
	h.create(w, r, &userID)
}

// CreateGuest handles POST /api/guest-bookings
func (h *BookingHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, nil)
}

// GuestLookup handles GET /api/guest-booking-lookup
func (h *BookingHandler) GuestLookup(w http.ResponseWriter, r *http.Request) {
	pnr := r.URL.Query().Get("pnr")
	email := r.URL.Query().Get("email")
	if pnr == "" || email == "" {
		utils.ResponseBadRequest(w, "pnr and email query parameters are required", nil)
		return
	}

	resp, err := h.service.GetByPNRAndEmail(r.Context(), pnr, email)
	if err != nil {
		handleServiceError(w, h.log, err, "guest booking lookup")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", resp)
}

// List handles GET /api/bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}

	resp, err := h.service.ListByUser(r.Context(), userID, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}
	role, _ := utils.GetUserRoleFromContext(r.Context())

	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking id", nil)
		return
	}

	resp, err := h.service.GetByID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", resp)
}
