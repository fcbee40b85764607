package notification

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

func TestEmitter_Notify_AppendsRecord(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	accounts := mocks.NewMockAccountRepo(t)

	emitter, err := NewEmitter(repo, accounts, "", newTestLogger(t))
	require.NoError(t, err)

	var stored *domain.Notification
	repo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.Notification) {
			stored = n
		}).
		Return(nil)

	err = emitter.Notify(context.Background(), "t1", "Booking Accepted",
		"Your booking request was accepted.", domain.NotificationSuccess)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "t1", stored.AccountID)
	assert.Equal(t, "Booking Accepted", stored.Title)
	assert.Equal(t, domain.NotificationSuccess, stored.Type)
	assert.False(t, stored.IsRead)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestEmitter_Notify_AppendFailure(t *testing.T) {
	repo := mocks.NewMockNotificationRepo(t)
	accounts := mocks.NewMockAccountRepo(t)

	emitter, err := NewEmitter(repo, accounts, "", newTestLogger(t))
	require.NoError(t, err)

	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(domain.ErrAccountNotFound)

	err = emitter.Notify(context.Background(), "ghost", "Title", "Message", domain.NotificationInfo)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
