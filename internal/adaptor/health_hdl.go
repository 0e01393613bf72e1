package adaptor

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"flight-booking/internal/data/repository"
	"flight-booking/pkg/utils"
)

type HealthHandler struct {
	repo    *repository.Repository
	appName string
	log     *zap.Logger
}

func NewHealthHandler(repo *repository.Repository, appName string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		repo:    repo,
		appName: appName,
		log:     log,
	}
}

// Liveness handles GET /health
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "ok", map[string]string{
		"service": h.appName,
		"store":   h.repo.Mode,
	})
}

// Database handles GET /health/database
func (h *HealthHandler) Database(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		h.log.Warn("database health check failed", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "database unreachable", map[string]string{
			"store": h.repo.Mode,
		})
		return
	}

	utils.ResponseSuccess(w, "ok", map[string]string{
		"store": h.repo.Mode,
	})
}
