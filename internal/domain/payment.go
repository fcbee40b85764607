package domain

// PaymentOrder is what the client needs to start a gateway checkout:
// the gateway order id, the amount in minor units, and the public key id.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// VerifyPaymentInput carries a gateway payment callback.
type VerifyPaymentInput struct {
	BookingID string
	OrderID   string
	PaymentID string
	Signature string
}
