package adaptor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Flight  *FlightHandler
	Support *SupportHandler
	Admin   *AdminHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, health *HealthHandler, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Flight:  NewFlightHandler(service.Flight, log),
		Support: NewSupportHandler(service.Support, log),
		Admin:   NewAdminHandler(service.Auth, service.Booking, service.Payment, service.Support, log),
		Health:  health,
	}
}

// handleServiceError maps domain errors onto HTTP statuses. Anything not
// recognized is a 500 and the message stays generic.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, entity.ErrInvalidCredentials), errors.Is(err, entity.ErrInvalidToken):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, entity.ErrAccountDisabled), errors.Is(err, entity.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())
	case errors.Is(err, entity.ErrBookingNotFound),
		errors.Is(err, entity.ErrTransactionNotFound),
		errors.Is(err, entity.ErrTicketNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrUnknownAirport):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, entity.ErrDuplicateEmail):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, entity.ErrBookingNotPayable),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrNotRefundable):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, entity.ErrPaymentDeclined):
		utils.ResponseUnprocessable(w, err.Error())
	case errors.Is(err, entity.ErrProviderUnavailable):
		utils.ResponseServiceUnavailable(w, err.Error(), nil)
	default:
		log.Error("unhandled service error", zap.Error(err), zap.String("operation", op))
		utils.ResponseInternalError(w, "internal server error")
	}
}
