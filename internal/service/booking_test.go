package service

import (
	"context"
	"testing"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T, allowReacceptance bool) (*BookingService, *mocks.MockBookingRepo, *mocks.MockAccountRepo, *mocks.MockNotificationSink) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	accountRepo := mocks.NewMockAccountRepo(t)
	sink := mocks.NewMockNotificationSink(t)
	svc := NewBookingService(bookingRepo, accountRepo, sink, allowReacceptance, newTestLogger(t))
	return svc, bookingRepo, accountRepo, sink
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, accountRepo, sink := newBookingService(t, true)

	owner := &domain.Account{ID: "o1", Name: "Olga"}
	tenant := &domain.Account{ID: "t1", Name: "Tim"}

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	accountRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tenant, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	sink.EXPECT().Notify(mock.Anything, "o1", "New Booking Request", mock.Anything, domain.NotificationInfo).Return(nil)
	sink.EXPECT().Notify(mock.Anything, "t1", "Booking Request Sent", mock.Anything, domain.NotificationInfo).Return(nil)

	booking, err := svc.Create(context.Background(), "o1", domain.CreateBookingInput{
		From:  "t1",
		To:    "o1",
		Date:  "2024-05-01",
		Time:  "10:00",
		Price: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, "t1", booking.From)
	assert.Equal(t, "o1", booking.To)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Create_OwnerMismatch(t *testing.T) {
	svc, _, accountRepo, _ := newBookingService(t, true)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)

	_, err := svc.Create(context.Background(), "o1", domain.CreateBookingInput{
		From: "t1",
		To:   "someone-else",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnerMismatch)
}

func TestBookingService_Create_OwnerNotFound(t *testing.T) {
	svc, _, accountRepo, _ := newBookingService(t, true)

	accountRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrAccountNotFound)

	_, err := svc.Create(context.Background(), "missing", domain.CreateBookingInput{
		From: "t1",
		To:   "missing",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestBookingService_Create_TenantAbsentIsSkipped(t *testing.T) {
	svc, bookingRepo, accountRepo, sink := newBookingService(t, true)

	accountRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Account{ID: "o1"}, nil)
	accountRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrAccountNotFound)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	// Only the owner is notified; the absent tenant is silently skipped.
	sink.EXPECT().Notify(mock.Anything, "o1", "New Booking Request", mock.Anything, domain.NotificationInfo).Return(nil)

	booking, err := svc.Create(context.Background(), "o1", domain.CreateBookingInput{
		From:  "ghost",
		To:    "o1",
		Date:  "2024-05-01",
		Time:  "10:00",
		Price: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
}

func TestBookingService_Accept_Success(t *testing.T) {
	svc, bookingRepo, accountRepo, sink := newBookingService(t, true)

	accepted := &domain.Booking{
		ID:            "b1",
		From:          "t1",
		To:            "o1",
		Status:        domain.BookingStatusAccepted,
		PaymentStatus: domain.PaymentStatusPending,
	}

	bookingRepo.EXPECT().
		Transition(mock.Anything, "o1", "b1", domain.BookingStatusAccepted, domain.PaymentStatusPending, false).
		Return(accepted, nil)
	accountRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Account{ID: "t1"}, nil)
	// The owner accepted; only the tenant is told.
	sink.EXPECT().Notify(mock.Anything, "t1", "Booking Accepted", mock.Anything, domain.NotificationSuccess).Return(nil)

	booking, err := svc.Accept(context.Background(), "o1", "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
}

func TestBookingService_Accept_NotFound(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t, true)

	bookingRepo.EXPECT().
		Transition(mock.Anything, "o1", "missing", domain.BookingStatusAccepted, domain.PaymentStatusPending, false).
		Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Accept(context.Background(), "o1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Accept_GuardRefusesFinalized(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t, false)

	bookingRepo.EXPECT().
		Transition(mock.Anything, "o1", "b1", domain.BookingStatusAccepted, domain.PaymentStatusPending, true).
		Return(nil, domain.ErrBookingFinalized)

	_, err := svc.Accept(context.Background(), "o1", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingFinalized)
}

func TestBookingService_Reject_Success(t *testing.T) {
	svc, bookingRepo, accountRepo, sink := newBookingService(t, true)

	rejected := &domain.Booking{
		ID:            "b1",
		From:          "t1",
		To:            "o1",
		Status:        domain.BookingStatusRejected,
		PaymentStatus: domain.PaymentStatusFailed,
	}

	bookingRepo.EXPECT().
		Transition(mock.Anything, "o1", "b1", domain.BookingStatusRejected, domain.PaymentStatusFailed, false).
		Return(rejected, nil)
	accountRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Account{ID: "t1"}, nil)
	sink.EXPECT().Notify(mock.Anything, "t1", "Booking Rejected", mock.Anything, domain.NotificationAlert).Return(nil)

	booking, err := svc.Reject(context.Background(), "o1", "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, booking.Status)
	// A rejected booking's payment is failed, immediately.
	assert.Equal(t, domain.PaymentStatusFailed, booking.PaymentStatus)
}

func TestBookingService_Reject_TenantAbsentIsSkipped(t *testing.T) {
	svc, bookingRepo, accountRepo, _ := newBookingService(t, true)

	rejected := &domain.Booking{
		ID:            "b1",
		From:          "ghost",
		To:            "o1",
		Status:        domain.BookingStatusRejected,
		PaymentStatus: domain.PaymentStatusFailed,
	}

	bookingRepo.EXPECT().
		Transition(mock.Anything, "o1", "b1", domain.BookingStatusRejected, domain.PaymentStatusFailed, false).
		Return(rejected, nil)
	accountRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrAccountNotFound)

	_, err := svc.Reject(context.Background(), "o1", "b1")

	require.NoError(t, err)
}

func TestBookingService_ListByParty(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t, true)

	bookings := []*domain.Booking{
		{ID: "b1", From: "t1", To: "o1", Status: domain.BookingStatusPending},
		{ID: "b2", From: "o1", To: "x1", Status: domain.BookingStatusAccepted},
	}
	bookingRepo.EXPECT().ListByParty(mock.Anything, "o1").Return(bookings, nil)

	result, err := svc.ListByParty(context.Background(), "o1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
