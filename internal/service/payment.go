package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const receiptPrefix = "renthub_rcpt_"

type PaymentService struct {
	bookingRepo ports.BookingRepo
	accountRepo ports.AccountRepo
	gateway     ports.PaymentGateway
	sink        ports.NotificationSink
	keyID       string
	currency    string
	logger      logger.Logger
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	accountRepo ports.AccountRepo,
	gateway ports.PaymentGateway,
	sink ports.NotificationSink,
	keyID, currency string,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		accountRepo: accountRepo,
		gateway:     gateway,
		sink:        sink,
		keyID:       keyID,
		currency:    currency,
		logger:      logger,
	}
}

// CreateOrder opens a gateway order for an accepted booking and records the
// order id on it. Payment status is untouched until the callback is verified.
func (s *PaymentService) CreateOrder(ctx context.Context, bookingID string) (*domain.PaymentOrder, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusAccepted {
		return nil, domain.ErrBookingNotAccepted
	}

	// Gateway works in minor units.
	amountMinor := int64(math.Round(booking.Price * 100))

	order, err := s.gateway.CreateOrder(ctx, amountMinor, s.currency, receiptPrefix+bookingID)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	if err := s.bookingRepo.SetGatewayOrder(ctx, bookingID, order.ID); err != nil {
		// The order now exists upstream but is not recorded locally; surfaced,
		// not retried.
		s.logger.Error("gateway order created but not recorded",
			logger.String("booking_id", bookingID),
			logger.String("order_id", order.ID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("record gateway order: %w", err)
	}

	s.logger.Info("gateway order created",
		logger.String("booking_id", bookingID),
		logger.String("order_id", order.ID),
		logger.Int64("amount", order.AmountMinor),
	)

	return &domain.PaymentOrder{
		OrderID:  order.ID,
		Amount:   order.AmountMinor,
		Currency: order.Currency,
		Key:      s.keyID,
	}, nil
}

// Verify validates the gateway callback signature, settles the booking and
// notifies both parties. Redelivered callbacks are a no-op returning the
// already-settled booking.
func (s *PaymentService) Verify(ctx context.Context, in domain.VerifyPaymentInput) (*domain.Booking, error) {
	if !s.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		return nil, domain.ErrSignatureMismatch
	}

	booking, updated, err := s.bookingRepo.MarkPaid(ctx, in.BookingID, in.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("mark booking paid: %w", err)
	}

	if !updated {
		s.logger.Info("duplicate payment callback ignored",
			logger.String("booking_id", in.BookingID),
			logger.String("payment_id", in.PaymentID),
		)
		return booking, nil
	}

	s.logger.Info("payment verified",
		logger.String("booking_id", booking.ID),
		logger.String("payment_id", in.PaymentID),
	)

	ownerMessage := "Payment received for a booking."
	tenant, tenantErr := s.accountRepo.GetByID(ctx, booking.From)
	if tenantErr == nil {
		ownerMessage = fmt.Sprintf("Payment received for a booking from %s.", tenant.Name)
	} else if !errors.Is(tenantErr, domain.ErrAccountNotFound) {
		s.logger.Error("failed to resolve tenant for payment notification",
			logger.String("account_id", booking.From),
			logger.String("error", tenantErr.Error()),
		)
	}

	if err := s.sink.Notify(ctx, booking.To, "Payment Received", ownerMessage, domain.NotificationSuccess); err != nil {
		s.logger.Error("failed to store owner payment notification",
			logger.String("account_id", booking.To),
			logger.String("error", err.Error()),
		)
	}

	if tenantErr == nil {
		if err := s.sink.Notify(ctx, booking.From, "Payment Successful",
			"Your payment was successful. Booking is confirmed.", domain.NotificationSuccess); err != nil {
			s.logger.Error("failed to store tenant payment notification",
				logger.String("account_id", booking.From),
				logger.String("error", err.Error()),
			)
		}
	}

	return booking, nil
}
