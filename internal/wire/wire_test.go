package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/gateway"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	log := zap.NewNop()
	repo := repository.NewMemoryRepository(168*time.Hour, log)
	gateways := usecase.Gateways{
		Payment: usecase.PaymentGateways{
			Card:   gateway.NewSimulatedCardProcessor(1.0, 0, log),
			Stripe: gateway.NewDemoStripeGateway(log),
			PayPal: gateway.NewDemoPayPalGateway(log),
		},
		Amadeus: gateway.NewDemoAmadeusGateway(15, "USD"),
		Mailer:  gateway.NewLogMailer(log),
	}
	config := &utils.Config{
		App:     utils.AppConfig{Name: "flight-booking", PublicURL: "http://localhost:8080"},
		Auth:    utils.AuthConfig{TokenExpiryHours: 168},
		Booking: utils.BookingConfig{UnitPrice: 15, Currency: "USD"},
		Payment: utils.PaymentConfig{DemoMode: true, CardSuccessRate: 1.0},
		Ticket:  utils.TicketConfig{Dir: t.TempDir()},
	}
	return Wiring(repo, gateways, config, log)
}

func TestHealthRoutesServedWithAndWithoutAPIPrefix(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/health", "/api/health", "/health/database", "/api/health/database"} {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/api/admin/users/" + uuid.NewString() + "/status"},
		{http.MethodPatch, "/api/admin/bookings/" + uuid.NewString() + "/status"},
		{http.MethodGet, "/api/admin/transactions"},
	}
	for _, p := range paths {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.path)
	}
}
