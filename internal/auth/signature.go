package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns the lowercase hex HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed by the gateway secret. This is the value the
// gateway attaches to a successful checkout callback.
func ComputeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature recomputes and compares in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := ComputeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
