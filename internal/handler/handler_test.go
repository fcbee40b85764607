package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/handler/mocks"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testEnv struct {
	router       *ginext.Engine
	account      *mocks.MockAccountSvc
	product      *mocks.MockProductSvc
	booking      *mocks.MockBookingSvc
	payment      *mocks.MockPaymentSvc
	notification *mocks.MockNotificationSvc
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		account:      mocks.NewMockAccountSvc(t),
		product:      mocks.NewMockProductSvc(t),
		booking:      mocks.NewMockBookingSvc(t),
		payment:      mocks.NewMockPaymentSvc(t),
		notification: mocks.NewMockNotificationSvc(t),
	}

	h := NewHandler(env.account, env.product, env.booking, env.payment, env.notification)
	env.router = router.InitRouter("test", h)

	return env
}

func (e *testEnv) perform(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// Auth

func TestHandler_SignUp(t *testing.T) {
	env := newTestEnv(t)

	env.account.EXPECT().SignUp(mock.Anything, domain.SignUpInput{
		Name:     "Tim",
		Email:    "tim@example.com",
		Password: "hunter22",
	}).Return(&domain.Account{ID: uuid.NewString(), Name: "Tim", Email: "tim@example.com"}, nil)

	rec := env.perform(t, http.MethodPost, "/api/signup", map[string]any{
		"name":     "Tim",
		"email":    "tim@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User created successfully!", decodeBody(t, rec)["message"])
}

func TestHandler_SignUp_MalformedEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.perform(t, http.MethodPost, "/api/signup", map[string]any{
		"name":     "Tim",
		"email":    "not-an-email",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	env := newTestEnv(t)

	env.account.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	rec := env.perform(t, http.MethodPost, "/api/signup", map[string]any{
		"name":     "Tim",
		"email":    "tim@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	env := newTestEnv(t)

	env.account.EXPECT().Login(mock.Anything, "tim@example.com", "hunter22").
		Return("jwt-token", &domain.Account{ID: uuid.NewString(), Email: "tim@example.com"}, nil)

	rec := env.perform(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "tim@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "jwt-token", body["token"])
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	env.account.EXPECT().Login(mock.Anything, "tim@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	rec := env.perform(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "tim@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Products

func TestHandler_AddProduct(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()

	env.product.EXPECT().Add(mock.Anything, ownerID, mock.Anything).
		Return(&domain.Product{ID: uuid.NewString(), OwnerID: ownerID, Name: "Studio flat"}, nil)

	rec := env.perform(t, http.MethodPost, "/api/products/"+ownerID, map[string]any{
		"name":         "Studio flat",
		"location":     "Pune",
		"price":        500,
		"availability": true,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product added", decodeBody(t, rec)["message"])
}

func TestHandler_AddProduct_InvalidOwnerID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.perform(t, http.MethodPost, "/api/products/not-a-uuid", map[string]any{
		"name": "Studio flat",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetAllProducts(t *testing.T) {
	env := newTestEnv(t)

	env.product.EXPECT().ListAll(mock.Anything).Return([]*domain.Product{
		{ID: uuid.NewString(), Name: "Studio flat"},
		{ID: uuid.NewString(), Name: "Cottage"},
	}, nil)

	rec := env.perform(t, http.MethodGet, "/api/products", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["products"], 2)
}

func TestHandler_DeleteProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	productID := uuid.NewString()

	env.product.EXPECT().Delete(mock.Anything, ownerID, productID).Return(nil, domain.ErrProductNotFound)

	rec := env.perform(t, http.MethodDelete, "/api/products/"+ownerID+"/"+productID, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Bookings

func TestHandler_CreateBooking(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	tenantID := uuid.NewString()

	env.booking.EXPECT().Create(mock.Anything, ownerID, domain.CreateBookingInput{
		From:  tenantID,
		To:    ownerID,
		Date:  "2024-05-01",
		Time:  "10:00",
		Price: 500,
	}).Return(&domain.Booking{ID: uuid.NewString(), Status: domain.BookingStatusPending}, nil)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID, map[string]any{
		"from":  tenantID,
		"to":    ownerID,
		"date":  "2024-05-01",
		"time":  "10:00",
		"price": 500,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Booking added and owner notified", decodeBody(t, rec)["message"])
}

func TestHandler_CreateBooking_OwnerMismatch(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	tenantID := uuid.NewString()

	env.booking.EXPECT().Create(mock.Anything, ownerID, mock.Anything).Return(nil, domain.ErrOwnerMismatch)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID, map[string]any{
		"from":  tenantID,
		"to":    uuid.NewString(),
		"date":  "2024-05-01",
		"time":  "10:00",
		"price": 500,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateBooking_OwnerNotFound(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()

	env.booking.EXPECT().Create(mock.Anything, ownerID, mock.Anything).Return(nil, domain.ErrAccountNotFound)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID, map[string]any{
		"from":  uuid.NewString(),
		"to":    ownerID,
		"date":  "2024-05-01",
		"time":  "10:00",
		"price": 500,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AcceptBooking(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	bookingID := uuid.NewString()

	env.booking.EXPECT().Accept(mock.Anything, ownerID, bookingID).Return(&domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusAccepted,
		PaymentStatus: domain.PaymentStatusPending,
	}, nil)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID+"/"+bookingID+"/accept", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	booking, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "accepted", booking["status"])
	assert.Equal(t, "pending", booking["paymentStatus"])
}

func TestHandler_AcceptBooking_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	bookingID := uuid.NewString()

	env.booking.EXPECT().Accept(mock.Anything, ownerID, bookingID).Return(nil, domain.ErrBookingNotFound)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID+"/"+bookingID+"/accept", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AcceptBooking_Finalized(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	bookingID := uuid.NewString()

	env.booking.EXPECT().Accept(mock.Anything, ownerID, bookingID).Return(nil, domain.ErrBookingFinalized)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID+"/"+bookingID+"/accept", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_RejectBooking(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()
	bookingID := uuid.NewString()

	env.booking.EXPECT().Reject(mock.Anything, ownerID, bookingID).Return(&domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusRejected,
		PaymentStatus: domain.PaymentStatusFailed,
	}, nil)

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID+"/"+bookingID+"/reject", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	booking, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rejected", booking["status"])
	assert.Equal(t, "failed", booking["paymentStatus"])
}

func TestHandler_GetBookings(t *testing.T) {
	env := newTestEnv(t)
	partyID := uuid.NewString()

	env.booking.EXPECT().ListByParty(mock.Anything, partyID).Return([]*domain.Booking{
		{ID: uuid.NewString(), Status: domain.BookingStatusPending},
	}, nil)

	rec := env.perform(t, http.MethodGet, "/api/bookings/"+partyID, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["bookings"], 1)
}

func TestHandler_TransitionBooking_InvalidBookingID(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.NewString()

	rec := env.perform(t, http.MethodPost, "/api/bookings/"+ownerID+"/not-a-uuid/accept", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Payments

func TestHandler_CreateOrder(t *testing.T) {
	env := newTestEnv(t)
	bookingID := uuid.NewString()

	env.payment.EXPECT().CreateOrder(mock.Anything, bookingID).Return(&domain.PaymentOrder{
		OrderID:  "order_1",
		Amount:   50000,
		Currency: "INR",
		Key:      "rzp_test_key",
	}, nil)

	rec := env.perform(t, http.MethodPost, "/api/payments/create-order", map[string]any{
		"bookingId": bookingID,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "order_1", body["orderId"])
	assert.Equal(t, float64(50000), body["amount"])
	assert.Equal(t, "INR", body["currency"])
	assert.Equal(t, "rzp_test_key", body["key"])
}

func TestHandler_CreateOrder_NotAccepted(t *testing.T) {
	env := newTestEnv(t)
	bookingID := uuid.NewString()

	env.payment.EXPECT().CreateOrder(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotAccepted)

	rec := env.perform(t, http.MethodPost, "/api/payments/create-order", map[string]any{
		"bookingId": bookingID,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateOrder_GatewayDown(t *testing.T) {
	env := newTestEnv(t)
	bookingID := uuid.NewString()

	env.payment.EXPECT().CreateOrder(mock.Anything, bookingID).Return(nil, domain.ErrGatewayUnavailable)

	rec := env.perform(t, http.MethodPost, "/api/payments/create-order", map[string]any{
		"bookingId": bookingID,
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_VerifyPayment(t *testing.T) {
	env := newTestEnv(t)
	bookingID := uuid.NewString()

	env.payment.EXPECT().Verify(mock.Anything, domain.VerifyPaymentInput{
		BookingID: bookingID,
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
	}).Return(&domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingStatusAccepted,
		PaymentStatus: domain.PaymentStatusSuccess,
	}, nil)

	rec := env.perform(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"bookingId":        bookingID,
		"gatewayOrderId":   "order_1",
		"gatewayPaymentId": "pay_1",
		"signature":        "sig",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	booking, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "success", booking["paymentStatus"])
}

func TestHandler_VerifyPayment_BadSignature(t *testing.T) {
	env := newTestEnv(t)
	bookingID := uuid.NewString()

	env.payment.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil, domain.ErrSignatureMismatch)

	rec := env.perform(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"bookingId":        bookingID,
		"gatewayOrderId":   "order_1",
		"gatewayPaymentId": "pay_1",
		"signature":        "forged",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_VerifyPayment_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.perform(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"bookingId": uuid.NewString(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Notifications

func TestHandler_GetNotifications(t *testing.T) {
	env := newTestEnv(t)
	accountID := uuid.NewString()

	env.notification.EXPECT().List(mock.Anything, accountID).Return([]*domain.Notification{
		{ID: uuid.NewString(), AccountID: accountID, Title: "Booking Accepted"},
	}, nil)

	rec := env.perform(t, http.MethodGet, "/api/"+accountID+"/notifications", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["notifications"], 1)
}

func TestHandler_GetNotifications_AccountNotFound(t *testing.T) {
	env := newTestEnv(t)
	accountID := uuid.NewString()

	env.notification.EXPECT().List(mock.Anything, accountID).Return(nil, domain.ErrAccountNotFound)

	rec := env.perform(t, http.MethodGet, "/api/"+accountID+"/notifications", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_MarkNotificationRead(t *testing.T) {
	env := newTestEnv(t)
	accountID := uuid.NewString()
	notificationID := uuid.NewString()

	env.notification.EXPECT().MarkRead(mock.Anything, accountID, notificationID).Return(nil)

	rec := env.perform(t, http.MethodPut, "/api/"+accountID+"/notifications/"+notificationID+"/read", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Notification marked as read", decodeBody(t, rec)["message"])
}

func TestHandler_MarkNotificationRead_NotFound(t *testing.T) {
	env := newTestEnv(t)
	accountID := uuid.NewString()
	notificationID := uuid.NewString()

	env.notification.EXPECT().MarkRead(mock.Anything, accountID, notificationID).
		Return(domain.ErrNotificationNotFound)

	rec := env.perform(t, http.MethodPut, "/api/"+accountID+"/notifications/"+notificationID+"/read", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.perform(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
