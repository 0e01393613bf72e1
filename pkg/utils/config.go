package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Booking  BookingConfig
	Payment  PaymentConfig
	Stripe   StripeConfig
	PayPal   PayPalConfig
	Amadeus  AmadeusConfig
	Email    EmailConfig
	Ticket   TicketConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	PublicURL string
}

type StoreConfig struct {
	// Driver selects the backing store once at startup: "postgres" or
	// "memory". When postgres is unreachable at boot the server falls back
	// to memory and logs the degradation.
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AuthConfig struct {
	TokenExpiryHours int
	AdminEmail       string
	AdminPassword    string
}

type BookingConfig struct {
	UnitPrice float64
	Currency  string
}

type PaymentConfig struct {
	// DemoMode routes every provider through its simulated client. Resolved
	// once at startup, never inferred from missing credentials inside
	// request handling.
	DemoMode        bool
	CardSuccessRate float64
	CardDelayMs     int
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type TicketConfig struct {
	Dir string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "flight-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PUBLIC_URL", "http://localhost:8080")
	viper.SetDefault("STORE_DRIVER", "postgres")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 168)
	viper.SetDefault("ADMIN_EMAIL", "onboard@admin.com")
	viper.SetDefault("ADMIN_PASSWORD", "onboardadmin")
	viper.SetDefault("UNIT_PRICE", 15.0)
	viper.SetDefault("CURRENCY", "USD")
	viper.SetDefault("PAYMENT_DEMO_MODE", true)
	viper.SetDefault("CARD_SUCCESS_RATE", 0.95)
	viper.SetDefault("CARD_DELAY_MS", 2000)
	viper.SetDefault("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com")
	viper.SetDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")
	viper.SetDefault("TICKETS_DIR", "public/tickets")

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine, environment variables still apply.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
			PublicURL: viper.GetString("PUBLIC_URL"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			TokenExpiryHours: viper.GetInt("TOKEN_EXPIRY_HOURS"),
			AdminEmail:       viper.GetString("ADMIN_EMAIL"),
			AdminPassword:    viper.GetString("ADMIN_PASSWORD"),
		},
		Booking: BookingConfig{
			UnitPrice: viper.GetFloat64("UNIT_PRICE"),
			Currency:  viper.GetString("CURRENCY"),
		},
		Payment: PaymentConfig{
			DemoMode:        viper.GetBool("PAYMENT_DEMO_MODE"),
			CardSuccessRate: viper.GetFloat64("CARD_SUCCESS_RATE"),
			CardDelayMs:     viper.GetInt("CARD_DELAY_MS"),
		},
		Stripe: StripeConfig{
			SecretKey:      viper.GetString("STRIPE_SECRET_KEY"),
			PublishableKey: viper.GetString("STRIPE_PUBLISHABLE_KEY"),
		},
		PayPal: PayPalConfig{
			ClientID:     viper.GetString("PAYPAL_CLIENT_ID"),
			ClientSecret: viper.GetString("PAYPAL_CLIENT_SECRET"),
			BaseURL:      viper.GetString("PAYPAL_BASE_URL"),
		},
		Amadeus: AmadeusConfig{
			ClientID:     viper.GetString("AMADEUS_CLIENT_ID"),
			ClientSecret: viper.GetString("AMADEUS_CLIENT_SECRET"),
			BaseURL:      viper.GetString("AMADEUS_BASE_URL"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Ticket: TicketConfig{
			Dir: viper.GetString("TICKETS_DIR"),
		},
	}

	return config, nil
}
