package ports

import "context"

type GatewayOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
}

// PaymentGateway fronts the external payment processor: order creation and
// callback signature verification against the pre-shared secret.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
