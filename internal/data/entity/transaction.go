package entity

import (
	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodStripe PaymentMethod = "stripe"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction records a single payment attempt against a booking. A booking
// may accumulate several rows (failed retries); only a completed transaction
// is proof of payment.
type Transaction struct {
	Base
	BookingID       uuid.UUID         `db:"booking_id"`
	UserID          uuid.UUID         `db:"user_id"`
	Amount          float64           `db:"amount"`
	Currency        string            `db:"currency"`
	Method          PaymentMethod     `db:"payment_method"`
	Status          TransactionStatus `db:"status"`
	StripePaymentID *string           `db:"stripe_payment_id"`
	PayPalOrderID   *string           `db:"paypal_order_id"`
	PayPalPayerID   *string           `db:"paypal_payer_id"`
	Details         map[string]string `db:"payment_details"`
}
