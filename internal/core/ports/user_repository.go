package ports

import (
	"context"

	"github.com/learnhub/learning-platform/internal/core/domain"
)

// UserRepository defines the interface for user record persistence.
// Create must enforce email uniqueness and return domain.ErrUserExists on
// conflict; FindByEmail returns domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
