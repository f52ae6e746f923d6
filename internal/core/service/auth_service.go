package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/ports"
)

// DefaultBcryptCost is the work factor applied to password hashes.
const DefaultBcryptCost = 10

// maxPasswordBytes is the bcrypt input limit. Longer passwords are truncated
// on both hashing and comparison, so only the first 72 bytes are significant.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// AuthService implements registration and login.
type AuthService struct {
	repo        ports.UserRepository
	tokens      ports.TokenIssuer
	bcryptCost  int
	defaultRole domain.Role
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, bcryptCost int, defaultRole domain.Role) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	if !defaultRole.Valid() {
		defaultRole = domain.RoleStudent
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost, defaultRole: defaultRole}
}

// Register creates a user record and returns a token for it. An empty role
// falls back to the configured default.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", domain.ErrMissingFields
	}
	if role == "" {
		role = s.defaultRole
	}
	if !role.Valid() {
		return "", domain.ErrInvalidRole
	}

	// Early exit only; the store's unique index is the real guarantee.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("register: %w", err)
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return "", fmt.Errorf("register: issue token: %w", err)
	}
	return token, nil
}

// Login verifies credentials and returns a fresh token. Unknown emails and
// wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}
	return token, nil
}
