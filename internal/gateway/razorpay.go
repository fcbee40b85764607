package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/domain"
	"github.com/RuthlessG-CYBER/RentHub-Backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Client drives the Razorpay order API over REST. There is no official Go
// SDK, so this is a thin adapter: basic auth with the key pair, JSON bodies.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*ports.GatewayOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer res.Body.Close()

	resBody, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Error("gateway rejected order",
			logger.Int("status", res.StatusCode),
			logger.String("body", string(resBody)),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, res.StatusCode)
	}

	var order orderResponse
	if err := json.Unmarshal(resBody, &order); err != nil {
		return nil, fmt.Errorf("%w: parse order response: %v", domain.ErrGatewayUnavailable, err)
	}

	return &ports.GatewayOrder{
		ID:          order.ID,
		AmountMinor: order.Amount,
		Currency:    order.Currency,
	}, nil
}

// VerifySignature checks the callback signature against
// HMAC-SHA256(secret, orderID + "|" + paymentID) in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
