package dto

import (
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
)

// Every response carries a message field plus a payload field.

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SignUpResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type ProductResponse struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"ownerId"`
	Name         string  `json:"name"`
	Src          string  `json:"src"`
	Location     string  `json:"location"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
	CreatedAt    string  `json:"created_at"`
}

type ProductEnvelope struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

type ProductsEnvelope struct {
	Message  string            `json:"message"`
	Products []ProductResponse `json:"products"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"paymentStatus"`
	GatewayOrderID   string  `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string  `json:"gatewayPaymentId,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type MessageEnvelope struct {
	Message string `json:"message"`
}

type BookingEnvelope struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type BookingsEnvelope struct {
	Message  string            `json:"message"`
	Bookings []BookingResponse `json:"bookings"`
}

type OrderEnvelope struct {
	Message  string `json:"message"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"created_at"`
}

type NotificationsEnvelope struct {
	Message       string                 `json:"message"`
	Notifications []NotificationResponse `json:"notifications"`
}

func ToUserResponse(a *domain.Account) UserResponse {
	return UserResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Src:          p.Src,
		Location:     p.Location,
		Price:        p.Price,
		Availability: p.Availability,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func ToProductResponses(products []*domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, ToProductResponse(p))
	}
	return res
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		From:             b.From,
		To:               b.To,
		Date:             b.Date,
		Time:             b.Time,
		Price:            b.Price,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		GatewayOrderID:   b.GatewayOrderID,
		GatewayPaymentID: b.GatewayPaymentID,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, ToBookingResponse(b))
	}
	return res
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponses(notifications []*domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, ToNotificationResponse(n))
	}
	return res
}
