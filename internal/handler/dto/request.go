package dto

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Src          string  `json:"src"`
	Location     string  `json:"location"`
	Price        float64 `json:"price" binding:"gte=0"`
	Availability bool    `json:"availability"`
}

// UpdateProductRequest is a partial patch; omitted fields keep current values.
type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Src          *string  `json:"src"`
	Location     *string  `json:"location"`
	Price        *float64 `json:"price"`
	Availability *bool    `json:"availability"`
}

type CreateBookingRequest struct {
	From  string  `json:"from" binding:"required,uuid"`
	To    string  `json:"to" binding:"required,uuid"`
	Date  string  `json:"date" binding:"required"`
	Time  string  `json:"time" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

type CreateOrderRequest struct {
	BookingID string `json:"bookingId" binding:"required,uuid"`
}

type VerifyPaymentRequest struct {
	BookingID        string `json:"bookingId" binding:"required,uuid"`
	GatewayOrderID   string `json:"gatewayOrderId" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}
