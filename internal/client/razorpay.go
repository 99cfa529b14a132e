package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"course-checkout-api/internal/config"
)

type RazorpayClient interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*RazorpayOrder, error)
}

// CreateOrderRequest mirrors the gateway's order-create payload. Amount is in
// minor currency units (paise).
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type RazorpayOrder struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	AmountDue int64  `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

func NewRazorpayClient(cfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, orderReq *CreateOrderRequest) (*RazorpayOrder, error) {
	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("razorpay error %d: %s", resp.StatusCode, string(b))
	}

	var order RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode razorpay response: %w", err)
	}

	return &order, nil
}
