package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Payment struct {
	ID     uint   `gorm:"primaryKey"`
	UserID string `gorm:"size:36;index;not null"` // FK → users.id

	RazorpayOrderID   string `gorm:"size:64;index;not null"`
	RazorpayPaymentID string `gorm:"size:64"` // empty until verified
	RazorpaySignature string // empty until verified

	Amount     int64  `gorm:"not null"`               // major currency units, gateway gets paise
	Status     string `gorm:"size:20;index;not null"` // created, completed, failed
	Verified   bool   `gorm:"not null;default:false"`
	VerifiedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const (
	PaymentStatusCreated   = "created"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)
