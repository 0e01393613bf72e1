package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
)

// CardCharge describes a direct card capture request. Numbers are already
// format-validated by the caller; the processor only decides approve/decline.
type CardCharge struct {
	Amount   float64
	Currency string
	Last4    string
}

// CardResult is what the processor reports back for a capture attempt.
type CardResult struct {
	Approved  bool
	Reference string
}

type CardProcessor interface {
	Charge(ctx context.Context, charge CardCharge) (*CardResult, error)
}

// SimulatedCardProcessor stands in for an acquiring bank. It sleeps to mimic
// network latency and approves a configurable fraction of charges.
type SimulatedCardProcessor struct {
	successRate float64
	delay       time.Duration

	mu  sync.Mutex // guards rng, charges can run concurrently
	rng *rand.Rand

	log *zap.Logger
}

func NewSimulatedCardProcessor(successRate float64, delay time.Duration, log *zap.Logger) *SimulatedCardProcessor {
	return &SimulatedCardProcessor{
		successRate: successRate,
		delay:       delay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         log.With(zap.String("gateway", "card")),
	}
}

func (p *SimulatedCardProcessor) Charge(ctx context.Context, charge CardCharge) (*CardResult, error) {
	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	p.mu.Lock()
	approved := p.rng.Float64() < p.successRate
	p.mu.Unlock()
	result := &CardResult{
		Approved:  approved,
		Reference: fmt.Sprintf("card_%d", time.Now().UnixNano()),
	}

	p.log.Info("simulated card charge",
		zap.Bool("approved", approved),
		zap.Float64("amount", charge.Amount),
		zap.String("last4", charge.Last4),
	)

	if !approved {
		return result, entity.ErrPaymentDeclined
	}
	return result, nil
}
