package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", 7*24*time.Hour)
	userID := "user-123"

	tok, err := codec.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := codec.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if got != userID {
		t.Fatalf("userID mismatch: got %q want %q", got, userID)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", -1*time.Second)

	tok, err := codec.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = codec.Validate(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenCodec("wrong-secret", time.Hour).Validate(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := codec.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
