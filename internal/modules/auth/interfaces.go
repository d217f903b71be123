package auth

import (
	"context"

	"roomstay/internal/domain"

	"github.com/google/uuid"
)

// UserRepository defines the user lookups authentication needs
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
