package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AccountSvc interface {
	SignUp(ctx context.Context, in domain.SignUpInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}

type ProductSvc interface {
	Add(ctx context.Context, ownerID string, in domain.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, ownerID, productID string, patch domain.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, ownerID, productID string) ([]*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
}

type BookingSvc interface {
	Create(ctx context.Context, ownerID string, in domain.CreateBookingInput) (*domain.Booking, error)
	Accept(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	Reject(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	ListByParty(ctx context.Context, partyID string) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	CreateOrder(ctx context.Context, bookingID string) (*domain.PaymentOrder, error)
	Verify(ctx context.Context, in domain.VerifyPaymentInput) (*domain.Booking, error)
}

type NotificationSvc interface {
	List(ctx context.Context, accountID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, accountID, notificationID string) error
}

type Handler struct {
	accountService      AccountSvc
	productService      ProductSvc
	bookingService      BookingSvc
	paymentService      PaymentSvc
	notificationService NotificationSvc
}

func NewHandler(
	accountService AccountSvc,
	productService ProductSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	notificationService NotificationSvc,
) *Handler {
	return &Handler{
		accountService:      accountService,
		productService:      productService,
		bookingService:      bookingService,
		paymentService:      paymentService,
		notificationService: notificationService,
	}
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	account, err := h.accountService.SignUp(c.Request.Context(), domain.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignUpResponse{
		Message: "User created successfully!",
		User:    dto.ToUserResponse(account),
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	token, account, err := h.accountService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(account),
	})
}

// Products

func (h *Handler) AddProduct(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	product, err := h.productService.Add(c.Request.Context(), ownerID, domain.CreateProductInput{
		Name:         req.Name,
		Src:          req.Src,
		Location:     req.Location,
		Price:        req.Price,
		Availability: req.Availability,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ProductEnvelope{
		Message: "Product added",
		Product: dto.ToProductResponse(product),
	})
}

func (h *Handler) UpdateProduct(c *ginext.Context) {
	ownerID := c.Param("userId")
	productID := c.Param("productId")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid product id"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), ownerID, productID, domain.UpdateProductInput{
		Name:         req.Name,
		Src:          req.Src,
		Location:     req.Location,
		Price:        req.Price,
		Availability: req.Availability,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductEnvelope{
		Message: "Product updated successfully",
		Product: dto.ToProductResponse(product),
	})
}

func (h *Handler) DeleteProduct(c *ginext.Context) {
	ownerID := c.Param("userId")
	productID := c.Param("productId")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid product id"})
		return
	}

	products, err := h.productService.Delete(c.Request.Context(), ownerID, productID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductsEnvelope{
		Message:  "Product deleted successfully",
		Products: dto.ToProductResponses(products),
	})
}

func (h *Handler) GetProducts(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}

	products, err := h.productService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductsEnvelope{
		Message:  "Products fetched",
		Products: dto.ToProductResponses(products),
	})
}

func (h *Handler) GetAllProducts(c *ginext.Context) {
	products, err := h.productService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductsEnvelope{
		Message:  "All products fetched",
		Products: dto.ToProductResponses(products),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid owner id"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	_, err := h.bookingService.Create(c.Request.Context(), ownerID, domain.CreateBookingInput{
		From:  req.From,
		To:    req.To,
		Date:  req.Date,
		Time:  req.Time,
		Price: req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageEnvelope{
		Message: "Booking added and owner notified",
	})
}

func (h *Handler) AcceptBooking(c *ginext.Context) {
	h.transitionBooking(c, h.bookingService.Accept, "Booking accepted")
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.transitionBooking(c, h.bookingService.Reject, "Booking rejected")
}

func (h *Handler) transitionBooking(
	c *ginext.Context,
	transition func(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error),
	message string,
) {
	ownerID := c.Param("id")
	bookingID := c.Param("bookingId")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid booking id"})
		return
	}

	booking, err := transition(c.Request.Context(), ownerID, bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingEnvelope{
		Message: message,
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) GetBookings(c *ginext.Context) {
	partyID := c.Param("id")
	if _, err := uuid.Parse(partyID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByParty(c.Request.Context(), partyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingsEnvelope{
		Message:  "Bookings fetched",
		Bookings: dto.ToBookingResponses(bookings),
	})
}

// Payments

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.BookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{
		Message:  "Order created",
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      order.Key,
	})
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	booking, err := h.paymentService.Verify(c.Request.Context(), domain.VerifyPaymentInput{
		BookingID: req.BookingID,
		OrderID:   req.GatewayOrderID,
		PaymentID: req.GatewayPaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingEnvelope{
		Message: "Payment verified and booking updated",
		Booking: dto.ToBookingResponse(booking),
	})
}

// Notifications

func (h *Handler) GetNotifications(c *ginext.Context) {
	accountID := c.Param("userId")
	if _, err := uuid.Parse(accountID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), accountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotificationsEnvelope{
		Message:       "Notifications fetched",
		Notifications: dto.ToNotificationResponses(notifications),
	})
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	accountID := c.Param("userId")
	notificationID := c.Param("notificationId")
	if _, err := uuid.Parse(accountID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid user id"})
		return
	}
	if _, err := uuid.Parse(notificationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid notification id"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), accountID, notificationID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageEnvelope{
		Message: "Notification marked as read",
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrBookingFinalized):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrOwnerMismatch),
		errors.Is(err, domain.ErrBookingNotAccepted),
		errors.Is(err, domain.ErrSignatureMismatch),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
