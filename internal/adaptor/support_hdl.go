package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

type SupportHandler struct {
	service usecase.SupportService
	log     *zap.Logger
}

func NewSupportHandler(service usecase.SupportService, log *zap.Logger) *SupportHandler {
	return &SupportHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/support/tickets
func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}

	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateTicket(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create support ticket")
		return
	}

	utils.ResponseCreated(w, "Support ticket created", resp)
}

// List handles GET /api/support/tickets
func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}

	resp, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list support tickets")
		return
	}

	utils.ResponseSuccess(w, "Support tickets retrieved", resp)
}

// Get handles GET /api/support/tickets/{id}
func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}
	role, _ := utils.GetUserRoleFromContext(r.Context())

	ticketID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ticket id", nil)
		return
	}

	resp, err := h.service.GetByID(r.Context(), userID, role, ticketID)
	if err != nil {
		handleServiceError(w, h.log, err, "get support ticket")
		return
	}

	utils.ResponseSuccess(w, "Support ticket retrieved", resp)
}
