package domain

import "time"

// Account plays both marketplace roles: owner of products and bookings, and
// tenant referenced by id inside another account's booking. There is no
// separate tenant type.
type Account struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}
