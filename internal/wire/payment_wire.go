package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Capture endpoints stay public so guest checkouts can pay. The booking
	// id is the capability.
	r.Post("/api/payments", paymentHandler.Process)
	r.Post("/api/payments/stripe/intent", paymentHandler.CreateStripeIntent)
	r.Get("/api/payments/stripe/config", paymentHandler.StripeConfig)
	r.Post("/api/payments/paypal/order", paymentHandler.CreatePayPalOrder)

	// Protected routes
	auth := middleware.Auth(repo.Tokens, repo.User, log)
	r.With(auth).Get("/api/payments/history", paymentHandler.History)
}
