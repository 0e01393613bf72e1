package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type TransactionResponse struct {
	ID        string                   `json:"id"`
	BookingID string                   `json:"booking_id"`
	Amount    float64                  `json:"amount"`
	Currency  string                   `json:"currency"`
	Method    entity.PaymentMethod     `json:"method"`
	Status    entity.TransactionStatus `json:"status"`
	Details   map[string]string        `json:"details,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

type PaymentResultResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Booking     BookingResponse     `json:"booking"`
}

type StripeIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type StripeConfigResponse struct {
	PublishableKey string `json:"publishable_key"`
	DemoMode       bool   `json:"demo_mode"`
}

type PayPalOrderResponse struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	ApproveURL string `json:"approve_url,omitempty"`
}

// Helper converters
func TransactionToResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID.String(),
		BookingID: t.BookingID.String(),
		Amount:    t.Amount,
		Currency:  t.Currency,
		Method:    t.Method,
		Status:    t.Status,
		Details:   t.Details,
		CreatedAt: t.CreatedAt,
	}
}
