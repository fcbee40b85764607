package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
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

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(50000), req["amount"])
		assert.Equal(t, "INR", req["currency"])
		assert.Equal(t, "renthub_rcpt_b1", req["receipt"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"order_1","amount":50000,"currency":"INR"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", 5*time.Second, newTestLogger(t))

	order, err := client.CreateOrder(context.Background(), 50000, "INR", "renthub_rcpt_b1")

	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(50000), order.AmountMinor)
	assert.Equal(t, "INR", order.Currency)
}

func TestClient_CreateOrder_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"description":"bad credentials"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key_id", "wrong", 5*time.Second, newTestLogger(t))

	_, err := client.CreateOrder(context.Background(), 50000, "INR", "renthub_rcpt_b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestClient_CreateOrder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "key_id", "key_secret", time.Second, newTestLogger(t))

	_, err := client.CreateOrder(context.Background(), 50000, "INR", "renthub_rcpt_b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestClient_VerifySignature(t *testing.T) {
	client := NewClient("https://unused", "key_id", "key_secret", time.Second, newTestLogger(t))

	mac := hmac.New(sha256.New, []byte("key_secret"))
	mac.Write([]byte("order_1|pay_1"))
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifySignature("order_1", "pay_1", signature))
}

func TestClient_VerifySignature_Tampered(t *testing.T) {
	client := NewClient("https://unused", "key_id", "key_secret", time.Second, newTestLogger(t))

	mac := hmac.New(sha256.New, []byte("key_secret"))
	mac.Write([]byte("order_1|pay_1"))
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.False(t, client.VerifySignature("order_1", "pay_2", signature))
	assert.False(t, client.VerifySignature("order_1", "pay_1", "0"+signature))
	assert.False(t, client.VerifySignature("order_1", "pay_1", "not-a-signature"))
}
