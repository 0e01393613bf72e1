package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/gateway"
)

type PaymentService interface {
	// ProcessPayment captures payment for a pending booking. It is callable
	// without a session so guest checkouts can pay.
	ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentResultResponse, error)
	CreateStripeIntent(ctx context.Context, req *request.CreateStripeIntentRequest) (*response.StripeIntentResponse, error)
	StripeConfig() *response.StripeConfigResponse
	CreatePayPalOrder(ctx context.Context, req *request.CreatePayPalOrderRequest) (*response.PayPalOrderResponse, error)
	History(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
	AdminList(ctx context.Context, status string, page request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error)
	Refund(ctx context.Context, transactionID uuid.UUID, reason string) (*response.TransactionResponse, error)
}

// PaymentGateways groups the provider clients the payment flow talks to.
type PaymentGateways struct {
	Card   gateway.CardProcessor
	Stripe gateway.StripeClient
	PayPal gateway.PayPalClient
}

type paymentService struct {
	repo      *repository.Repository
	gateways  PaymentGateways
	ticket    TicketService
	mailer    MailService
	demoMode  bool
	log       *zap.Logger
	fulfillWG *fulfillTracker
}

func NewPaymentService(
	repo *repository.Repository,
	gateways PaymentGateways,
	ticket TicketService,
	mailer MailService,
	demoMode bool,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo:      repo,
		gateways:  gateways,
		ticket:    ticket,
		mailer:    mailer,
		demoMode:  demoMode,
		log:       log.With(zap.String("service", "payment")),
		fulfillWG: newFulfillTracker(),
	}
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// validateCard enforces the same card format rules for demo and live mode.
func validateCard(card *request.CardDetails) error {
	if card == nil {
		return fmt.Errorf("%w: card details required", entity.ErrValidation)
	}

	number := strings.ReplaceAll(card.Number, " ", "")
	if !cardNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: card number must be 16 digits", entity.ErrValidation)
	}
	if !cvvPattern.MatchString(card.CVV) {
		return fmt.Errorf("%w: cvv must be 3 or 4 digits", entity.ErrValidation)
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return fmt.Errorf("%w: card holder name required", entity.ErrValidation)
	}
	if strings.TrimSpace(card.Country) == "" {
		return fmt.Errorf("%w: billing country required", entity.ErrValidation)
	}

	parts := strings.Split(card.Expiry, "/")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("%w: expiry must be MM/YY", entity.ErrValidation)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid expiry month", entity.ErrValidation)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("%w: invalid expiry year", entity.ErrValidation)
	}

	// Valid through the last day of the expiry month.
	expiry := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !expiry.After(time.Now()) {
		return fmt.Errorf("%w: card is expired", entity.ErrValidation)
	}

	return nil
}

func cardLast4(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

func (s *paymentService) loadPayableBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking id", entity.ErrValidation)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is %s", entity.ErrBookingNotPayable, booking.Status)
	}
	return booking, nil
}

func (s *paymentService) recordFailure(booking *entity.Booking, method entity.PaymentMethod, details map[string]string) {
	now := time.Now()
	failed := &entity.Transaction{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Amount:    booking.TotalAmount,
		Currency:  booking.Currency,
		Method:    method,
		Status:    entity.TransactionStatusFailed,
		Details:   details,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.Transaction.Create(ctx, failed); err != nil {
		s.log.Error("Failed to record failed transaction", zap.Error(err))
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentResultResponse, error) {
	booking, err := s.loadPayableBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	method := entity.PaymentMethod(req.Method)
	transaction := &entity.Transaction{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Amount:    booking.TotalAmount,
		Currency:  booking.Currency,
		Method:    method,
		Details:   map[string]string{},
	}

	switch method {
	case entity.PaymentMethodCard:
		if err := validateCard(req.Card); err != nil {
			return nil, err
		}
		last4 := cardLast4(req.Card.Number)
		transaction.Details["card_last4"] = last4

		result, err := s.gateways.Card.Charge(ctx, gateway.CardCharge{
			Amount:   booking.TotalAmount,
			Currency: booking.Currency,
			Last4:    last4,
		})
		if err != nil && !errors.Is(err, entity.ErrPaymentDeclined) {
			return nil, err
		}
		if result == nil || !result.Approved {
			s.recordFailure(booking, method, transaction.Details)
			return nil, entity.ErrPaymentDeclined
		}
		transaction.Details["reference"] = result.Reference

	case entity.PaymentMethodStripe:
		if req.StripePaymentID == "" {
			return nil, fmt.Errorf("%w: stripe_payment_id required", entity.ErrValidation)
		}
		paid, err := s.gateways.Stripe.VerifyIntent(ctx, req.StripePaymentID)
		if err != nil {
			return nil, err
		}
		if !paid {
			s.recordFailure(booking, method, map[string]string{"intent_id": req.StripePaymentID})
			return nil, entity.ErrPaymentDeclined
		}
		transaction.StripePaymentID = &req.StripePaymentID

	case entity.PaymentMethodPayPal:
		if req.PayPalOrderID == "" || req.PayPalPayerID == "" {
			return nil, fmt.Errorf("%w: paypal order and payer ids required", entity.ErrValidation)
		}
		approved, err := s.gateways.PayPal.VerifyOrder(ctx, req.PayPalOrderID, req.PayPalPayerID)
		if err != nil {
			return nil, err
		}
		if !approved {
			s.recordFailure(booking, method, map[string]string{"order_id": req.PayPalOrderID})
			return nil, entity.ErrPaymentDeclined
		}
		if err := s.gateways.PayPal.CaptureOrder(ctx, req.PayPalOrderID); err != nil {
			s.recordFailure(booking, method, map[string]string{"order_id": req.PayPalOrderID})
			return nil, err
		}
		transaction.PayPalOrderID = &req.PayPalOrderID
		transaction.PayPalPayerID = &req.PayPalPayerID

	default:
		return nil, fmt.Errorf("%w: unsupported payment method", entity.ErrValidation)
	}

	// Confirm conditionally so two concurrent captures of the same booking
	// cannot both win.
	moved, err := s.repo.Booking.TransitionStatus(ctx, booking.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, fmt.Errorf("%w: booking already processed", entity.ErrBookingNotPayable)
	}
	booking.Status = entity.BookingStatusConfirmed

	now := time.Now()
	transaction.Base = entity.Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	transaction.Status = entity.TransactionStatusCompleted
	if err := s.repo.Transaction.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	passengers, err := s.repo.Passenger.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load passengers for fulfillment", zap.Error(err))
		passengers = nil
	}

	s.log.Info("payment captured",
		zap.String("pnr", booking.PNR),
		zap.String("method", string(method)),
		zap.Float64("amount", booking.TotalAmount),
	)

	// Ticket and email are best effort, the payment is already captured.
	s.fulfillWG.Go(func() {
		s.fulfill(*booking, passengers)
	})

	resp := &response.PaymentResultResponse{
		Transaction: response.TransactionToResponse(transaction),
		Booking:     response.BookingToResponse(booking, passengers),
	}
	return resp, nil
}

// fulfill generates the e-ticket and sends the confirmation email on its own
// clock, detached from the request that paid.
func (s *paymentService) fulfill(booking entity.Booking, passengers []entity.Passenger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ticketPath := ""
	ticketURL, path, err := s.ticket.Generate(&booking, passengers)
	if err != nil {
		s.log.Error("Failed to generate ticket",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
		)
	} else {
		ticketPath = path
		if err := s.repo.Booking.SetTicketURL(ctx, booking.ID, ticketURL); err != nil {
			s.log.Error("Failed to store ticket url", zap.Error(err))
		}
		booking.TicketURL = &ticketURL
	}

	if err := s.mailer.SendPaymentConfirmation(&booking, passengers, ticketPath); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
		)
	}
}

func (s *paymentService) CreateStripeIntent(ctx context.Context, req *request.CreateStripeIntentRequest) (*response.StripeIntentResponse, error) {
	booking, err := s.loadPayableBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateways.Stripe.CreateIntent(ctx, booking.TotalAmount, booking.Currency, booking.PNR)
	if err != nil {
		return nil, err
	}

	return &response.StripeIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	}, nil
}

func (s *paymentService) StripeConfig() *response.StripeConfigResponse {
	return &response.StripeConfigResponse{
		PublishableKey: s.gateways.Stripe.PublishableKey(),
		DemoMode:       s.demoMode,
	}
}

func (s *paymentService) CreatePayPalOrder(ctx context.Context, req *request.CreatePayPalOrderRequest) (*response.PayPalOrderResponse, error) {
	booking, err := s.loadPayableBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	order, err := s.gateways.PayPal.CreateOrder(ctx, booking.TotalAmount, booking.Currency, booking.PNR)
	if err != nil {
		return nil, err
	}

	return &response.PayPalOrderResponse{
		OrderID:    order.ID,
		Status:     order.Status,
		ApproveURL: order.ApproveURL,
	}, nil
}

func (s *paymentService) History(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	transactions, err := s.repo.Transaction.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	total, err := s.repo.Transaction.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	items := make([]response.TransactionResponse, len(transactions))
	for i := range transactions {
		items[i] = response.TransactionToResponse(&transactions[i])
	}
	return response.NewPaginatedResponse(items, page.CurrentPage(), page.Limit(), total), nil
}

func (s *paymentService) AdminList(ctx context.Context, status string, page request.PaginatedRequest) (*response.PaginatedResponse[response.TransactionResponse], error) {
	transactionStatus := entity.TransactionStatus(status)
	transactions, err := s.repo.Transaction.FindAll(ctx, transactionStatus, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	total, err := s.repo.Transaction.CountAll(ctx, transactionStatus)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	items := make([]response.TransactionResponse, len(transactions))
	for i := range transactions {
		items[i] = response.TransactionToResponse(&transactions[i])
	}
	return response.NewPaginatedResponse(items, page.CurrentPage(), page.Limit(), total), nil
}

// Refund marks a completed transaction refunded and cancels its booking.
// No money moves, refunds at the provider are handled out of band.
func (s *paymentService) Refund(ctx context.Context, transactionID uuid.UUID, reason string) (*response.TransactionResponse, error) {
	transaction, err := s.repo.Transaction.FindByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	if transaction == nil {
		return nil, entity.ErrTransactionNotFound
	}
	if transaction.Status != entity.TransactionStatusCompleted {
		return nil, entity.ErrNotRefundable
	}

	if err := s.repo.Transaction.UpdateStatus(ctx, transactionID, entity.TransactionStatusRefunded, reason); err != nil {
		return nil, err
	}

	moved, err := s.repo.Booking.TransitionStatus(ctx, transaction.BookingID, entity.BookingStatusConfirmed, entity.BookingStatusCancelled)
	if err != nil {
		s.log.Error("Failed to cancel booking after refund",
			zap.Error(err),
			zap.String("booking_id", transaction.BookingID.String()),
		)
	} else if !moved {
		s.log.Warn("refunded transaction had no confirmed booking to cancel",
			zap.String("booking_id", transaction.BookingID.String()),
		)
	}

	s.log.Info("transaction refunded",
		zap.String("transaction_id", transactionID.String()),
		zap.String("reason", reason),
	)

	transaction.Status = entity.TransactionStatusRefunded
	if reason != "" {
		if transaction.Details == nil {
			transaction.Details = map[string]string{}
		}
		transaction.Details["refund_reason"] = reason
	}
	resp := response.TransactionToResponse(transaction)
	return &resp, nil
}
