package request

type CardDetails struct {
	Number     string `json:"number" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	HolderName string `json:"holder_name" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
}

type ProcessPaymentRequest struct {
	BookingID       string       `json:"booking_id" validate:"required,uuid"`
	Method          string       `json:"method" validate:"required,oneof=card paypal stripe"`
	Card            *CardDetails `json:"card,omitempty"`
	StripePaymentID string       `json:"stripe_payment_id,omitempty"`
	PayPalOrderID   string       `json:"paypal_order_id,omitempty"`
	PayPalPayerID   string       `json:"paypal_payer_id,omitempty"`
}

type CreateStripeIntentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type CreatePayPalOrderRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type RefundRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}
