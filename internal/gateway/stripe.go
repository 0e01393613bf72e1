package gateway

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
)

// StripeIntent is the slice of a payment intent the booking flow cares about.
type StripeIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

type StripeClient interface {
	Configured() bool
	PublishableKey() string
	CreateIntent(ctx context.Context, amount float64, currency, pnr string) (*StripeIntent, error)
	// VerifyIntent reports whether the intent has actually been paid,
	// confirming it first when Stripe left it one step short.
	VerifyIntent(ctx context.Context, intentID string) (bool, error)
}

type stripeGateway struct {
	api            *client.API
	publishableKey string
	log            *zap.Logger
}

func NewStripeGateway(secretKey, publishableKey string, log *zap.Logger) StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{
		api:            api,
		publishableKey: publishableKey,
		log:            log.With(zap.String("gateway", "stripe")),
	}
}

func (g *stripeGateway) Configured() bool {
	return true
}

func (g *stripeGateway) PublishableKey() string {
	return g.publishableKey
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount float64, currency, pnr string) (*StripeIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("pnr", pnr)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.log.Error("Failed to create payment intent", zap.Error(err), zap.String("pnr", pnr))
		return nil, fmt.Errorf("create stripe intent: %w", entity.ErrProviderUnavailable)
	}

	return &StripeIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

func (g *stripeGateway) VerifyIntent(ctx context.Context, intentID string) (bool, error) {
	intent, err := g.api.PaymentIntents.Get(intentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		g.log.Error("Failed to fetch payment intent", zap.Error(err), zap.String("intent_id", intentID))
		return false, fmt.Errorf("fetch stripe intent: %w", entity.ErrProviderUnavailable)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusRequiresAction:
		return true, nil
	case stripe.PaymentIntentStatusRequiresConfirmation:
		confirmed, err := g.api.PaymentIntents.Confirm(intentID, &stripe.PaymentIntentConfirmParams{
			Params: stripe.Params{Context: ctx},
		})
		if err != nil {
			g.log.Error("Failed to confirm payment intent", zap.Error(err), zap.String("intent_id", intentID))
			return false, fmt.Errorf("confirm stripe intent: %w", entity.ErrProviderUnavailable)
		}
		return confirmed.Status == stripe.PaymentIntentStatusSucceeded, nil
	default:
		return false, nil
	}
}

// demoStripeGateway fabricates intents locally so the checkout flow can be
// exercised without Stripe credentials.
type demoStripeGateway struct {
	log *zap.Logger
}

func NewDemoStripeGateway(log *zap.Logger) StripeClient {
	return &demoStripeGateway{log: log.With(zap.String("gateway", "stripe-demo"))}
}

func (g *demoStripeGateway) Configured() bool {
	return false
}

func (g *demoStripeGateway) PublishableKey() string {
	return "pk_demo"
}

func (g *demoStripeGateway) CreateIntent(_ context.Context, amount float64, currency, pnr string) (*StripeIntent, error) {
	id := fmt.Sprintf("pi_demo_%d", time.Now().UnixNano())
	g.log.Info("created demo payment intent",
		zap.String("intent_id", id),
		zap.Float64("amount", amount),
		zap.String("currency", currency),
		zap.String("pnr", pnr),
	)
	return &StripeIntent{
		ID:           id,
		ClientSecret: id + "_secret_demo",
		Status:       "requires_payment_method",
	}, nil
}

func (g *demoStripeGateway) VerifyIntent(_ context.Context, intentID string) (bool, error) {
	// Demo intents always verify, real-looking ones never reach here.
	return strings.HasPrefix(intentID, "pi_demo_"), nil
}
