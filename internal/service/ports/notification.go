package ports

import (
	"context"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
)

type NotificationRepo interface {
	Append(ctx context.Context, n *domain.Notification) error
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, accountID, notificationID string) error
}

// NotificationSink is the write side used by the booking and payment
// services: append a notification record for the target account.
type NotificationSink interface {
	Notify(ctx context.Context, accountID, title, message string, typ domain.NotificationType) error
}
