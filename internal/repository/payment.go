package repository

import (
	"context"
	"time"

	"course-checkout-api/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByUserAndOrderID(ctx context.Context, userID, razorpayOrderID string) (*model.Payment, error)
	MarkVerified(ctx context.Context, id uint, razorpayPaymentID, razorpaySignature string) error
	ListByUser(ctx context.Context, userID string) ([]*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByUserAndOrderID(ctx context.Context, userID, razorpayOrderID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND razorpay_order_id = ?", userID, razorpayOrderID).
		First(&payment).Error

	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// MarkVerified moves a payment to completed exactly once. A completed row
// never transitions back; re-running the same update is harmless.
func (r *paymentRepoImpl) MarkVerified(ctx context.Context, id uint, razorpayPaymentID, razorpaySignature string) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where(`
			id = ?
			AND status IN ?
		`,
			id,
			[]string{model.PaymentStatusCreated, model.PaymentStatusCompleted},
		).
		Updates(map[string]interface{}{
			"razorpay_payment_id": razorpayPaymentID,
			"razorpay_signature":  razorpaySignature,
			"verified":            true,
			"status":              model.PaymentStatusCompleted,
			"verified_at":         time.Now(),
			"updated_at":          time.Now(),
		}).Error
}

func (r *paymentRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}
