package domain

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationAlert   NotificationType = "alert"
)

// Notification is append-only except for the read flag.
type Notification struct {
	ID        string           `json:"id"`
	AccountID string           `json:"-"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"created_at"`
}
