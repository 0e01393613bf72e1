package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

type AdminHandler struct {
	users    usecase.AuthService
	bookings usecase.BookingService
	payments usecase.PaymentService
	support  usecase.SupportService
	log      *zap.Logger
}

func NewAdminHandler(users usecase.AuthService, bookings usecase.BookingService, payments usecase.PaymentService, support usecase.SupportService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		users:    users,
		bookings: bookings,
		payments: payments,
		support:  support,
		log:      log,
	}
}

// UpdateUserStatus handles PATCH /api/admin/users/{id}/status
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	var req request.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.users.AdminUpdateUserStatus(r.Context(), userID, entity.UserStatus(req.Status))
	if err != nil {
		handleServiceError(w, h.log, err, "admin update user status")
		return
	}

	utils.ResponseSuccess(w, "User status updated", resp)
}

// ListBookings handles GET /api/admin/bookings
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.bookings.AdminList(r.Context(), r.URL.Query().Get("status"), parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list bookings")
		return
	}
	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/{id}/status
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking id", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.bookings.AdminUpdateStatus(r.Context(), bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		handleServiceError(w, h.log, err, "admin update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", resp)
}

// ListTransactions handles GET /api/admin/transactions
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payments.AdminList(r.Context(), r.URL.Query().Get("status"), parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list transactions")
		return
	}
	utils.ResponseSuccess(w, "Transactions retrieved", resp)
}

// RefundTransaction handles POST /api/admin/transactions/{id}/refund
func (h *AdminHandler) RefundTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid transaction id", nil)
		return
	}

	var req request.RefundRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.payments.Refund(r.Context(), transactionID, req.Reason)
	if err != nil {
		handleServiceError(w, h.log, err, "refund transaction")
		return
	}

	utils.ResponseSuccess(w, "Transaction refunded", resp)
}

// ListTickets handles GET /api/admin/support/tickets
func (h *AdminHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.support.AdminList(r.Context(), r.URL.Query().Get("status"), parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err, "admin list support tickets")
		return
	}
	utils.ResponseSuccess(w, "Support tickets retrieved", resp)
}

// UpdateTicket handles PATCH /api/admin/support/tickets/{id}
func (h *AdminHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ticket id", nil)
		return
	}

	var req request.UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.support.AdminUpdate(r.Context(), ticketID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "admin update support ticket")
		return
	}

	utils.ResponseSuccess(w, "Support ticket updated", resp)
}
