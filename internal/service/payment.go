package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-checkout-api/internal/auth"
	"course-checkout-api/internal/client"
	"course-checkout-api/internal/model"
	"course-checkout-api/internal/repository"

	"gorm.io/gorm"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, user *model.User, amount int64) (*client.RazorpayOrder, error)
	VerifyPayment(ctx context.Context, userID, razorpayOrderID, razorpayPaymentID, razorpaySignature string) error
	History(ctx context.Context, userID string) ([]*model.Payment, error)
}

type paymentServiceImpl struct {
	razorpayClient client.RazorpayClient // nil when gateway credentials are absent
	keySecret      string
	paymentRepo    repository.PaymentRepository
}

func NewPaymentService(
	razorpayClient client.RazorpayClient,
	keySecret string,
	paymentRepo repository.PaymentRepository,
) PaymentService {
	return &paymentServiceImpl{
		razorpayClient: razorpayClient,
		keySecret:      keySecret,
		paymentRepo:    paymentRepo,
	}
}

// CreateOrder places a gateway order for amount major units and records a
// pending payment row keyed by the returned order id. No row is written if
// the gateway call fails.
func (s *paymentServiceImpl) CreateOrder(ctx context.Context, user *model.User, amount int64) (*client.RazorpayOrder, error) {
	if s.razorpayClient == nil {
		return nil, ErrGatewayNotConfigured
	}

	order, err := s.razorpayClient.CreateOrder(ctx, &client.CreateOrderRequest{
		Amount:   amount * 100, // paise
		Currency: "INR",
		Receipt:  fmt.Sprintf("user_%s_%d", user.ID, time.Now().UnixMilli()),
		Notes: map[string]string{
			"userId":   user.ID,
			"userName": user.Name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay api create order: %w", err)
	}

	err = s.paymentRepo.Create(ctx, &model.Payment{
		UserID:          user.ID,
		RazorpayOrderID: order.ID,
		Amount:          amount,
		Status:          model.PaymentStatusCreated,
	})
	if err != nil {
		return nil, fmt.Errorf("store payment in db: %w", err)
	}

	return order, nil
}

// VerifyPayment authenticates the gateway callback before touching any
// state: a signature mismatch leaves the payment row untouched.
func (s *paymentServiceImpl) VerifyPayment(ctx context.Context, userID, razorpayOrderID, razorpayPaymentID, razorpaySignature string) error {
	if s.razorpayClient == nil {
		return ErrGatewayNotConfigured
	}

	if !auth.VerifySignature(razorpayOrderID, razorpayPaymentID, razorpaySignature, s.keySecret) {
		return ErrSignatureMismatch
	}

	payment, err := s.paymentRepo.FindByUserAndOrderID(ctx, userID, razorpayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("find payment by order id: %w", err)
	}

	if err := s.paymentRepo.MarkVerified(ctx, payment.ID, razorpayPaymentID, razorpaySignature); err != nil {
		return fmt.Errorf("mark payment verified: %w", err)
	}

	return nil
}

func (s *paymentServiceImpl) History(ctx context.Context, userID string) ([]*model.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}
