package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.Auth(repo.Tokens, repo.User, log)
	admin := middleware.Admin()

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth, admin)

		r.Patch("/users/{id}/status", adminHandler.UpdateUserStatus)

		r.Get("/bookings", adminHandler.ListBookings)
		r.Patch("/bookings/{id}/status", adminHandler.UpdateBookingStatus)

		r.Get("/transactions", adminHandler.ListTransactions)
		r.Post("/transactions/{id}/refund", adminHandler.RefundTransaction)

		r.Get("/support/tickets", adminHandler.ListTickets)
		r.Patch("/support/tickets/{id}", adminHandler.UpdateTicket)
	})
}
