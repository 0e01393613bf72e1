package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	auth := middleware.Auth(repo.Tokens, repo.User, log)
	r.With(auth).Post("/api/auth/logout", authHandler.Logout)
	r.With(auth).Get("/api/auth/me", authHandler.Profile)
}
