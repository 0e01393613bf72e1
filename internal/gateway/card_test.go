package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
)

func TestSimulatedCardAlwaysApproves(t *testing.T) {
	p := NewSimulatedCardProcessor(1.0, 0, zap.NewNop())
	for i := 0; i < 20; i++ {
		result, err := p.Charge(context.Background(), CardCharge{Amount: 30, Currency: "USD", Last4: "4242"})
		require.NoError(t, err)
		assert.True(t, result.Approved)
		assert.Contains(t, result.Reference, "card_")
	}
}

func TestSimulatedCardAlwaysDeclines(t *testing.T) {
	p := NewSimulatedCardProcessor(0.0, 0, zap.NewNop())
	for i := 0; i < 20; i++ {
		result, err := p.Charge(context.Background(), CardCharge{Amount: 30, Currency: "USD", Last4: "4242"})
		assert.ErrorIs(t, err, entity.ErrPaymentDeclined)
		require.NotNil(t, result)
		assert.False(t, result.Approved)
	}
}

func TestSimulatedCardHonorsContext(t *testing.T) {
	p := NewSimulatedCardProcessor(1.0, time.Minute, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Charge(ctx, CardCharge{Amount: 30, Currency: "USD"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestDemoStripeGateway(t *testing.T) {
	g := NewDemoStripeGateway(zap.NewNop())
	ctx := context.Background()

	assert.False(t, g.Configured())
	assert.NotEmpty(t, g.PublishableKey())

	intent, err := g.CreateIntent(ctx, 30, "USD", "AB12CD")
	require.NoError(t, err)
	assert.Contains(t, intent.ID, "pi_demo_")
	assert.NotEmpty(t, intent.ClientSecret)

	paid, err := g.VerifyIntent(ctx, intent.ID)
	require.NoError(t, err)
	assert.True(t, paid)

	paid, err = g.VerifyIntent(ctx, "pi_live_unknown")
	require.NoError(t, err)
	assert.False(t, paid)
}

func TestDemoPayPalGateway(t *testing.T) {
	g := NewDemoPayPalGateway(zap.NewNop())
	ctx := context.Background()

	order, err := g.CreateOrder(ctx, 30, "USD", "AB12CD")
	require.NoError(t, err)
	assert.Contains(t, order.ID, "mock_order_")
	assert.Equal(t, "CREATED", order.Status)

	approved, err := g.VerifyOrder(ctx, order.ID, "payer")
	require.NoError(t, err)
	assert.True(t, approved)

	require.NoError(t, g.CaptureOrder(ctx, order.ID))

	// An order can only be captured once.
	assert.Error(t, g.CaptureOrder(ctx, order.ID))

	approved, err = g.VerifyOrder(ctx, order.ID, "payer")
	require.NoError(t, err)
	assert.False(t, approved)
}
