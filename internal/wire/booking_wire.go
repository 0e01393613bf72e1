package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Guest checkout needs no session.
	r.Post("/api/guest-bookings", bookingHandler.CreateGuest)
	r.Get("/api/guest-booking-lookup", bookingHandler.GuestLookup)

	// Protected routes
	auth := middleware.Auth(repo.Tokens, repo.User, log)
	r.With(auth).Post("/api/bookings", bookingHandler.Create)
	r.With(auth).Get("/api/bookings", bookingHandler.List)
	r.With(auth).Get("/api/bookings/{id}", bookingHandler.Get)
}
