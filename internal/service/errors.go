package service

import "errors"

// Error kinds returned by services. Handlers map these to HTTP statuses once
// at the boundary; anything unrecognized becomes an opaque 500.
var (
	ErrEmailTaken           = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrGatewayNotConfigured = errors.New("payment service not configured")
	ErrSignatureMismatch    = errors.New("payment verification failed")
	ErrPaymentNotFound      = errors.New("payment record not found")
)
