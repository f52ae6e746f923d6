package ports

import "github.com/learnhub/learning-platform/internal/core/domain"

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Issue(subjectID string, role domain.Role) (string, error)
}

// TokenVerifier checks signature and expiry and returns the embedded identity.
type TokenVerifier interface {
	Verify(raw string) (domain.Identity, error)
}
