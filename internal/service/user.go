package service

import (
	"context"
	"errors"
	"fmt"

	"course-checkout-api/internal/auth"
	"course-checkout-api/internal/model"
	"course-checkout-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

func NewUserService(
	userRepo repository.UserRepository,
	codec *auth.TokenCodec,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		codec:    codec,
	}
}

// Signup creates a user and returns it with a fresh session token. A
// duplicate email is reported as ErrEmailTaken whether it is caught by the
// pre-check or by the unique constraint under a concurrent double signup.
func (s *userServiceImpl) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check existing email: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("store user in db: %w", err)
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user by email: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}
