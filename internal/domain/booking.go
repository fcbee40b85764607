package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Booking is owned by the account it was filed against (To); the tenant (From)
// only references it. PaymentStatus may leave pending only once the booking
// has been accepted.
type Booking struct {
	ID               string        `json:"id"`
	From             string        `json:"from"`
	To               string        `json:"to"`
	Date             string        `json:"date"`
	Time             string        `json:"time"`
	Price            float64       `json:"price"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	GatewayOrderID   string        `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string        `json:"gatewayPaymentId,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Finalized reports whether the lifecycle defines no further status
// transition out of the booking's current state.
func (b *Booking) Finalized() bool {
	return b.Status == BookingStatusRejected ||
		(b.Status == BookingStatusAccepted && b.PaymentStatus == PaymentStatusSuccess)
}

type CreateBookingInput struct {
	From  string
	To    string
	Date  string
	Time  string
	Price float64
}
