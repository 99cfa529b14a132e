package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"course-checkout-api/internal/config"

	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "rzp_test_key", user)
		require.Equal(t, "rzp_test_secret", pass)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(10000), req.Amount)
		require.Equal(t, "INR", req.Currency)

		json.NewEncoder(w).Encode(&RazorpayOrder{
			ID:       "order_MhF2yPW3YgSlW9",
			Entity:   "order",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewRazorpayClient(&config.Razorpay{
		BaseApiURL: srv.URL,
		KeyID:      "rzp_test_key",
		KeySecret:  "rzp_test_secret",
	})

	order, err := c.CreateOrder(context.Background(), &CreateOrderRequest{
		Amount:   10000,
		Currency: "INR",
		Receipt:  "user_u1_1700000000000",
	})
	require.NoError(t, err)
	require.Equal(t, "order_MhF2yPW3YgSlW9", order.ID)
	require.Equal(t, "created", order.Status)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient(&config.Razorpay{
		BaseApiURL: srv.URL,
		KeyID:      "bad",
		KeySecret:  "creds",
	})

	_, err := c.CreateOrder(context.Background(), &CreateOrderRequest{Amount: 100, Currency: "INR"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "razorpay error 401")
}
