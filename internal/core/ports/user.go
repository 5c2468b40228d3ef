package ports

import (
	"context"

	"tasklist/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) error
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID string) (domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	Profile(ctx context.Context, userID string) (domain.User, error)
}
