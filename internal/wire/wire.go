package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring connects repositories, gateways, services and handlers into one
// router.
func Wiring(repo *repository.Repository, gateways usecase.Gateways, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, gateways, config, logger)
	health := adaptor.NewHealthHandler(repo, config.App.Name, logger)
	handler := adaptor.NewHandler(service, health, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	wireAuth(r, handler.Auth, repo, logger)
	wireFlight(r, handler.Flight)
	wireBooking(r, handler.Booking, repo, logger)
	wirePayment(r, handler.Payment, repo, logger)
	wireSupport(r, handler.Support, repo, logger)
	wireAdmin(r, handler.Admin, repo, logger)

	// Health endpoints, also aliased under /api for clients that expect
	// every route below that prefix.
	r.Get("/health", handler.Health.Liveness)
	r.Get("/health/database", handler.Health.Database)
	r.Get("/api/health", handler.Health.Liveness)
	r.Get("/api/health/database", handler.Health.Database)

	// Generated e-tickets are served as plain static files.
	ticketServer := http.StripPrefix("/tickets/", http.FileServer(http.Dir(config.Ticket.Dir)))
	r.Get("/tickets/*", ticketServer.ServeHTTP)

	return r
}
