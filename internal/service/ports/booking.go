package ports

import (
	"context"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByParty(ctx context.Context, partyID string) ([]*domain.Booking, error)

	// Transition atomically moves the booking owned by ownerID into the given
	// (status, payment status) pair. With onlyPending set, the update applies
	// only while the booking is still pending; a booking that exists but did
	// not match the guard yields domain.ErrBookingFinalized.
	Transition(ctx context.Context, ownerID, bookingID string, status domain.BookingStatus, payStatus domain.PaymentStatus, onlyPending bool) (*domain.Booking, error)

	// SetGatewayOrder records the gateway order id on an accepted booking.
	SetGatewayOrder(ctx context.Context, bookingID, orderID string) error

	// MarkPaid atomically flips payment status to success and records the
	// gateway payment id, provided the booking is accepted with payment still
	// pending. The updated flag is false when the booking had already been
	// paid with the same payment id (idempotent redelivery).
	MarkPaid(ctx context.Context, bookingID, paymentID string) (b *domain.Booking, updated bool, err error)
}
