package ports

import (
	"context"

	"github.com/learnhub/learning-platform/internal/core/domain"
)

// AuthService turns raw credentials into signed session tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}
