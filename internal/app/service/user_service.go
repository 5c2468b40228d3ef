package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/auth"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

const minPasswordLength = 6

type UserService struct {
	userRepository ports.UserRepository
	tokens         *auth.TokenManager
	hasher         *auth.PasswordHasher
	now            func() time.Time
}

func NewUserService(userRepository ports.UserRepository, tokens *auth.TokenManager, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepository: userRepository,
		tokens:         tokens,
		hasher:         hasher,
		now:            time.Now,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)
	if email == "" || username == "" {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}
	if len(input.Password) < minPasswordLength {
		return domain.User{}, "", domain.ErrPasswordTooShort
	}

	if _, err := s.userRepository.GetByEmail(ctx, email); err == nil {
		return domain.User{}, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, "", err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	if err := s.userRepository.Insert(ctx, user); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.userRepository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

var _ ports.UserService = (*UserService)(nil)
