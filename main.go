package main

import (
	"context"
	"errors"
	"log"
	"time"

	"go.uber.org/zap"

	"flight-booking/cmd"
	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/gateway"
	"flight-booking/internal/usecase"
	"flight-booking/internal/wire"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("payment_demo", config.Payment.DemoMode),
	)

	repos := selectStore(config, logger)

	if err := seedUsers(repos, config, logger); err != nil {
		logger.Fatal("Failed to seed users", zap.Error(err))
	}

	gateways := buildGateways(config, logger)

	app := wire.Wiring(repos, gateways, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))
	cmd.APIServer(app.Router, config.App.Port)
}

// selectStore picks the backing store exactly once at startup. Postgres
// failing to come up degrades to the memory store instead of crashing, and
// the choice never changes while the process lives.
func selectStore(config *utils.Config, logger *zap.Logger) *repository.Repository {
	tokenTTL := time.Duration(config.Auth.TokenExpiryHours) * time.Hour

	if config.Store.Driver == repository.ModeMemory {
		logger.Info("Using in-memory store")
		return repository.NewMemoryRepository(tokenTTL, logger)
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Warn("Database unreachable, falling back to in-memory store",
			zap.Error(err),
		)
		return repository.NewMemoryRepository(tokenTTL, logger)
	}

	logger.Info("Database connected successfully")
	return repository.NewRepository(db, tokenTTL, logger)
}

// seedUsers makes sure the admin account and the shared guest account exist.
func seedUsers(repos *repository.Repository, config *utils.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminHash, err := utils.HashPassword(config.Auth.AdminPassword)
	if err != nil {
		return err
	}

	seeds := []entity.User{
		{
			Email:        usecase.NormalizeEmail(config.Auth.AdminEmail),
			PasswordHash: adminHash,
			FirstName:    "Onboard",
			LastName:     "Admin",
			Title:        entity.TitleMr,
			Role:         entity.RoleAdmin,
			Status:       entity.UserStatusActive,
		},
		{
			Email:        entity.GuestEmail,
			PasswordHash: "!",
			FirstName:    "Guest",
			LastName:     "Checkout",
			Title:        entity.TitleMr,
			Role:         entity.RoleCustomer,
			Status:       entity.UserStatusActive,
		},
	}

	for _, seed := range seeds {
		existing, err := repos.User.FindByEmail(ctx, seed.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		now := time.Now()
		seed.Base = entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
		if err := repos.User.Create(ctx, &seed); err != nil {
			if errors.Is(err, entity.ErrDuplicateEmail) {
				continue
			}
			return err
		}
		logger.Info("seeded user", zap.String("email", seed.Email), zap.String("role", string(seed.Role)))
	}

	return nil
}

// buildGateways resolves demo versus live providers once, from configuration
// alone.
func buildGateways(config *utils.Config, logger *zap.Logger) usecase.Gateways {
	card := gateway.NewSimulatedCardProcessor(
		config.Payment.CardSuccessRate,
		time.Duration(config.Payment.CardDelayMs)*time.Millisecond,
		logger,
	)

	var stripe gateway.StripeClient
	var paypal gateway.PayPalClient
	var amadeus gateway.AmadeusClient

	if config.Payment.DemoMode {
		stripe = gateway.NewDemoStripeGateway(logger)
		paypal = gateway.NewDemoPayPalGateway(logger)
	} else {
		stripe = gateway.NewStripeGateway(config.Stripe.SecretKey, config.Stripe.PublishableKey, logger)
		paypal = gateway.NewPayPalGateway(config.PayPal.ClientID, config.PayPal.ClientSecret, config.PayPal.BaseURL, logger)
	}

	if config.Amadeus.ClientID != "" && config.Amadeus.ClientSecret != "" {
		amadeus = gateway.NewAmadeusGateway(config.Amadeus.ClientID, config.Amadeus.ClientSecret, config.Amadeus.BaseURL, logger)
	} else {
		amadeus = gateway.NewDemoAmadeusGateway(config.Booking.UnitPrice, config.Booking.Currency)
	}

	var mailer gateway.Mailer
	if config.Email.Host != "" {
		mailer = gateway.NewSMTPMailer(config.Email.Host, config.Email.Port, config.Email.User, config.Email.Password, config.Email.From, logger)
	} else {
		mailer = gateway.NewLogMailer(logger)
	}

	return usecase.Gateways{
		Payment: usecase.PaymentGateways{
			Card:   card,
			Stripe: stripe,
			PayPal: paypal,
		},
		Amadeus: amadeus,
		Mailer:  mailer,
	}
}
