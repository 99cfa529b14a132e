package service

import (
	"context"
	"testing"
	"time"

	"course-checkout-api/internal/auth"
	"course-checkout-api/internal/repository"

	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	t.Helper()

	db := newTestDB(t)
	codec := auth.NewTokenCodec("test-jwt-secret", time.Hour)
	return NewUserService(repository.NewUserRepository(db), codec)
}

func TestSignup_TokenResolvesToCreatedUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	user, token, err := svc.Signup(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "password1", user.PasswordHash)

	codec := auth.NewTokenCodec("test-jwt-secret", time.Hour)
	userID, err := codec.Validate(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	_, _, err := svc.Signup(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "Other Alice", "alice@x.com", "password2")
	require.ErrorIs(t, err, ErrEmailTaken)

	// a different email is accepted
	_, _, err = svc.Signup(ctx, "Bob", "bob@x.com", "password2")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t)

	created, _, err := svc.Signup(ctx, "Alice", "alice@x.com", "password1")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "alice@x.com", "password1")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.NotEmpty(t, token)

	// unknown email and wrong password yield the identical error kind
	_, _, errUnknown := svc.Login(ctx, "nobody@x.com", "password1")
	_, _, errWrong := svc.Login(ctx, "alice@x.com", "wrongpass")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	require.Equal(t, errUnknown, errWrong)
}
