package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/gateway"
)

type paymentFixture struct {
	repo    *repository.Repository
	booking BookingService
	payment PaymentService
	dir     string
}

func newPaymentFixture(t *testing.T, successRate float64) *paymentFixture {
	t.Helper()
	log := zap.NewNop()
	repo := repository.NewMemoryRepository(168*time.Hour, log)
	dir := t.TempDir()

	ticket := NewTicketService(dir, "http://localhost:8080", repo.Airports, log)
	mail := NewMailService(gateway.NewLogMailer(log), "http://localhost:8080", log)

	gateways := PaymentGateways{
		Card:   gateway.NewSimulatedCardProcessor(successRate, 0, log),
		Stripe: gateway.NewDemoStripeGateway(log),
		PayPal: gateway.NewDemoPayPalGateway(log),
	}

	return &paymentFixture{
		repo:    repo,
		booking: newBookingService(repo),
		payment: NewPaymentService(repo, gateways, ticket, mail, true, log),
		dir:     dir,
	}
}

func (f *paymentFixture) pendingBooking(t *testing.T) string {
	t.Helper()
	resp, err := f.booking.CreateBooking(context.Background(), nil, validBookingReq())
	require.NoError(t, err)
	return resp.ID
}

func (f *paymentFixture) waitFulfillment() {
	f.payment.(*paymentService).fulfillWG.Wait()
}

func validCard() *request.CardDetails {
	return &request.CardDetails{
		Number:     "4242 4242 4242 4242",
		Expiry:     time.Now().Add(2 * 365 * 24 * time.Hour).Format("01/06"),
		CVV:        "123",
		HolderName: "Alice Nguyen",
		Country:    "United Kingdom",
	}
}

func TestValidateCard(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *request.CardDetails)
		ok     bool
	}{
		{"valid", func(c *request.CardDetails) {}, true},
		{"short number", func(c *request.CardDetails) { c.Number = "4242" }, false},
		{"letters in number", func(c *request.CardDetails) { c.Number = "4242abcd42424242" }, false},
		{"bad cvv", func(c *request.CardDetails) { c.CVV = "12" }, false},
		{"four digit cvv", func(c *request.CardDetails) { c.CVV = "1234" }, true},
		{"expired", func(c *request.CardDetails) { c.Expiry = "01/20" }, false},
		{"bad expiry format", func(c *request.CardDetails) { c.Expiry = "13/2026" }, false},
		{"missing holder", func(c *request.CardDetails) { c.HolderName = "  " }, false},
		{"missing country", func(c *request.CardDetails) { c.Country = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			tc.mutate(card)
			err := validateCard(card)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, entity.ErrValidation)
			}
		})
	}

	assert.ErrorIs(t, validateCard(nil), entity.ErrValidation)
}

func TestCardExpiryValidThroughEndOfMonth(t *testing.T) {
	card := validCard()
	card.Expiry = time.Now().UTC().Format("01/06") // expires this month
	assert.NoError(t, validateCard(card))
}

func TestProcessCardPaymentConfirmsBooking(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	resp, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Card:      validCard(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionStatusCompleted, resp.Transaction.Status)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Booking.Status)
	assert.Equal(t, 30.0, resp.Transaction.Amount)
	assert.Equal(t, "4242", resp.Transaction.Details["card_last4"])

	f.waitFulfillment()

	// Fulfillment wrote the ticket and stored its URL.
	booking, err := f.repo.Booking.FindByID(ctx, uuid.MustParse(bookingID))
	require.NoError(t, err)
	require.NotNil(t, booking.TicketURL)
	assert.Equal(t, "/tickets/"+booking.PNR+".pdf", *booking.TicketURL)

	_, err = os.Stat(filepath.Join(f.dir, booking.PNR+".pdf"))
	assert.NoError(t, err)
}

func TestProcessCardPaymentDeclined(t *testing.T) {
	f := newPaymentFixture(t, 0.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	_, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Card:      validCard(),
	})
	assert.ErrorIs(t, err, entity.ErrPaymentDeclined)

	// Booking stays payable and the failure is on record.
	booking, err := f.repo.Booking.FindByID(ctx, uuid.MustParse(bookingID))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)

	failed, err := f.repo.Transaction.FindAll(ctx, entity.TransactionStatusFailed, 10, 0)
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestProcessPaymentConcurrentCapturesSingleWinner(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
				BookingID: bookingID,
				Method:    "card",
				Card:      validCard(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, entity.ErrBookingNotPayable)
		}
	}
	assert.Equal(t, 1, succeeded)

	completed, err := f.repo.Transaction.FindAll(ctx, entity.TransactionStatusCompleted, 20, 0)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	f.waitFulfillment()
}

func TestProcessPaymentOnConfirmedBooking(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	_, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Card:      validCard(),
	})
	require.NoError(t, err)
	f.waitFulfillment()

	_, err = f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Card:      validCard(),
	})
	assert.ErrorIs(t, err, entity.ErrBookingNotPayable)
}

func TestProcessStripePaymentDemoFlow(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	intent, err := f.payment.CreateStripeIntent(ctx, &request.CreateStripeIntentRequest{BookingID: bookingID})
	require.NoError(t, err)
	assert.Contains(t, intent.IntentID, "pi_demo_")
	assert.NotEmpty(t, intent.ClientSecret)

	resp, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:       bookingID,
		Method:          "stripe",
		StripePaymentID: intent.IntentID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Booking.Status)
	f.waitFulfillment()
}

func TestProcessStripePaymentMissingIntent(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	bookingID := f.pendingBooking(t)

	_, err := f.payment.ProcessPayment(context.Background(), &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "stripe",
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestProcessPayPalPaymentDemoFlow(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	order, err := f.payment.CreatePayPalOrder(ctx, &request.CreatePayPalOrderRequest{BookingID: bookingID})
	require.NoError(t, err)
	assert.Contains(t, order.OrderID, "mock_order_")

	resp, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:     bookingID,
		Method:        "paypal",
		PayPalOrderID: order.OrderID,
		PayPalPayerID: "demo-payer",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Booking.Status)
	f.waitFulfillment()
}

func TestProcessPayPalUnknownOrderDeclined(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	bookingID := f.pendingBooking(t)

	_, err := f.payment.ProcessPayment(context.Background(), &request.ProcessPaymentRequest{
		BookingID:     bookingID,
		Method:        "paypal",
		PayPalOrderID: "mock_order_bogus",
		PayPalPayerID: "demo-payer",
	})
	assert.ErrorIs(t, err, entity.ErrPaymentDeclined)
}

func TestStripeConfigReportsDemoMode(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	cfg := f.payment.StripeConfig()
	assert.True(t, cfg.DemoMode)
	assert.NotEmpty(t, cfg.PublishableKey)
}

func TestRefundCompletedTransaction(t *testing.T) {
	f := newPaymentFixture(t, 1.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	resp, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Card:      validCard(),
	})
	require.NoError(t, err)
	f.waitFulfillment()

	transactionID := uuid.MustParse(resp.Transaction.ID)
	refunded, err := f.payment.Refund(ctx, transactionID, "schedule change")
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusRefunded, refunded.Status)
	assert.Equal(t, "schedule change", refunded.Details["refund_reason"])

	// Refund cancels the booking.
	booking, err := f.repo.Booking.FindByID(ctx, uuid.MustParse(bookingID))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)

	// A refunded transaction cannot be refunded twice.
	_, err = f.payment.Refund(ctx, transactionID, "")
	assert.ErrorIs(t, err, entity.ErrNotRefundable)
}

func TestRefundRequiresCompletedTransaction(t *testing.T) {
	f := newPaymentFixture(t, 0.0)
	ctx := context.Background()
	bookingID := f.pendingBooking(t)

	_, err := f.payment.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Card:      validCard(),
	})
	require.ErrorIs(t, err, entity.ErrPaymentDeclined)

	failed, err := f.repo.Transaction.FindAll(ctx, entity.TransactionStatusFailed, 10, 0)
	require.NoError(t, err)
	require.Len(t, failed, 1)

	_, err = f.payment.Refund(ctx, failed[0].ID, "")
	assert.ErrorIs(t, err, entity.ErrNotRefundable)

	_, err = f.payment.Refund(ctx, uuid.New(), "")
	assert.ErrorIs(t, err, entity.ErrTransactionNotFound)
}
