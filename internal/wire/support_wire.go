package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
)

func wireSupport(
	r chi.Router,
	supportHandler *adaptor.SupportHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.Auth(repo.Tokens, repo.User, log)
	r.With(auth).Post("/api/support/tickets", supportHandler.Create)
	r.With(auth).Get("/api/support/tickets", supportHandler.List)
	r.With(auth).Get("/api/support/tickets/{id}", supportHandler.Get)
}
