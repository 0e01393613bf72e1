package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// Process handles POST /api/payments
func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req request.ProcessPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.ProcessPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, "Payment captured", resp)
}

// CreateStripeIntent handles POST /api/payments/stripe/intent
func (h *PaymentHandler) CreateStripeIntent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStripeIntentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateStripeIntent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create stripe intent")
		return
	}

	utils.ResponseCreated(w, "Payment intent created", resp)
}

// StripeConfig handles GET /api/payments/stripe/config
func (h *PaymentHandler) StripeConfig(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Stripe configuration", h.service.StripeConfig())
}

// CreatePayPalOrder handles POST /api/payments/paypal/order
func (h *PaymentHandler) CreatePayPalOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePayPalOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreatePayPalOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create paypal order")
		return
	}

	utils.ResponseCreated(w, "PayPal order created", resp)
}

// History handles GET /api/payments/history
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "authentication required")
		return
	}

	resp, err := h.service.History(r.Context(), userID, parsePagination(r))
	if err != nil {
		handleServiceError(w, h.log, err, "payment history")
		return
	}

	utils.ResponseSuccess(w, "Transactions retrieved", resp)
}
