package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	accountRepo ports.AccountRepo
	sink        ports.NotificationSink
	// allowReacceptance keeps the historical unguarded accept/reject
	// transition; when false only pending bookings may move.
	allowReacceptance bool
	logger            logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	accountRepo ports.AccountRepo,
	sink ports.NotificationSink,
	allowReacceptance bool,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:       bookingRepo,
		accountRepo:       accountRepo,
		sink:              sink,
		allowReacceptance: allowReacceptance,
		logger:            logger,
	}
}

func (s *BookingService) Create(ctx context.Context, ownerID string, in domain.CreateBookingInput) (*domain.Booking, error) {
	if _, err := s.accountRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	// A booking is filed against the account that owns it.
	if in.To != ownerID {
		return nil, domain.ErrOwnerMismatch
	}

	if in.From == "" {
		return nil, fmt.Errorf("%w: from is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		From:          in.From,
		To:            in.To,
		Date:          in.Date,
		Time:          in.Time,
		Price:         in.Price,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("owner_id", ownerID),
		logger.String("tenant_id", in.From),
	)

	s.notify(ctx, ownerID, "New Booking Request",
		"You have a new booking request.", domain.NotificationInfo)
	s.notifyIfPresent(ctx, in.From, "Booking Request Sent",
		"Your booking request has been sent to the owner.", domain.NotificationInfo)

	return booking, nil
}

func (s *BookingService) Accept(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(
		ctx, ownerID, bookingID,
		domain.BookingStatusAccepted, domain.PaymentStatusPending,
		!s.allowReacceptance,
	)
	if err != nil {
		return nil, fmt.Errorf("accept booking: %w", err)
	}

	s.logger.Info("booking accepted",
		logger.String("booking_id", booking.ID),
		logger.String("owner_id", ownerID),
	)

	s.notifyIfPresent(ctx, booking.From, "Booking Accepted",
		"Your booking request was accepted. Please complete the payment to confirm.",
		domain.NotificationSuccess)

	return booking, nil
}

func (s *BookingService) Reject(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(
		ctx, ownerID, bookingID,
		domain.BookingStatusRejected, domain.PaymentStatusFailed,
		!s.allowReacceptance,
	)
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	s.logger.Info("booking rejected",
		logger.String("booking_id", booking.ID),
		logger.String("owner_id", ownerID),
	)

	s.notifyIfPresent(ctx, booking.From, "Booking Rejected",
		"The owner rejected your booking request.", domain.NotificationAlert)

	return booking, nil
}

func (s *BookingService) ListByParty(ctx context.Context, partyID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByParty(ctx, partyID)
}

// notify appends a notification for an account known to exist; a store
// failure is logged, it never fails the transition that already committed.
func (s *BookingService) notify(ctx context.Context, accountID, title, message string, typ domain.NotificationType) {
	if err := s.sink.Notify(ctx, accountID, title, message, typ); err != nil {
		s.logger.Error("failed to store notification",
			logger.String("account_id", accountID),
			logger.String("title", title),
			logger.String("error", err.Error()),
		)
	}
}

// notifyIfPresent notifies a secondary party only if its account exists;
// an absent account is skipped, not an error.
func (s *BookingService) notifyIfPresent(ctx context.Context, accountID, title, message string, typ domain.NotificationType) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.logger.Debug("notification skipped, account not found",
				logger.String("account_id", accountID),
			)
			return
		}
		s.logger.Error("failed to resolve account for notification",
			logger.String("account_id", accountID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notify(ctx, accountID, title, message, typ)
}
