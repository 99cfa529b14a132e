package dto

import (
	"time"

	"course-checkout-api/internal/client"
)

// Response is the envelope shared by every endpoint. Error carries fault
// detail outside production only.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the sanitized user shape. The password hash never leaves the
// service layer.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthData struct {
	User  *UserInfo `json:"user"`
	Token string    `json:"token"`
}

type MeData struct {
	User *UserInfo `json:"user"`
}

type CreateOrderRequest struct {
	Amount int64 `json:"amount"` // major currency units
}

type CreateOrderData struct {
	Order  *client.RazorpayOrder `json:"order"`
	Amount int64                 `json:"amount"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type VerifyPaymentData struct {
	CouponCode  string `json:"couponCode"`
	RedirectURL string `json:"redirectUrl"`
}

type PaymentInfo struct {
	ID                uint      `json:"id"`
	Amount            int64     `json:"amount"`
	Status            string    `json:"status"`
	Verified          bool      `json:"verified"`
	CreatedAt         time.Time `json:"created_at"`
	RazorpayPaymentID string    `json:"razorpay_payment_id,omitempty"`
}

type HistoryData struct {
	Payments []*PaymentInfo `json:"payments"`
}

type HealthData struct {
	Status             string    `json:"status"`
	Message            string    `json:"message"`
	Database           string    `json:"database"`
	Timestamp          time.Time `json:"timestamp"`
	Environment        string    `json:"environment"`
	RazorpayConfigured bool      `json:"razorpay_configured"`
}
