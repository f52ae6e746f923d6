package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/ports"
)

const defaultUserTTL = 10 * time.Minute

// CachedUserRepository is a read-through cache in front of a UserRepository.
// User records are never updated, so entries only expire by TTL.
// Key format: user:email:<email>
type CachedUserRepository struct {
	next    ports.UserRepository
	client  *redis.Client
	ttl     time.Duration
	log     zerolog.Logger
	lookups *prometheus.CounterVec
}

// NewCachedUserRepository wraps next with a Redis cache. lookups is a counter
// with a single "result" label (hit, miss or error); nil disables counting.
func NewCachedUserRepository(next ports.UserRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger, lookups *prometheus.CounterVec) *CachedUserRepository {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &CachedUserRepository{next: next, client: client, ttl: ttl, log: log, lookups: lookups}
}

// cachedUser mirrors domain.User but keeps the password hash, which
// domain.User hides from JSON.
type cachedUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FindByEmail serves from Redis when possible. Misses and Redis failures fall
// through to the wrapped repository; not-found results are never cached.
func (r *CachedUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	raw, err := r.client.Get(ctx, r.key(email)).Bytes()
	switch {
	case err == nil:
		var cu cachedUser
		if uerr := json.Unmarshal(raw, &cu); uerr == nil {
			r.count("hit")
			return cu.toDomain(), nil
		}
		r.log.Warn().Str("email", email).Msg("discarding undecodable cache entry")
		r.count("error")
	case errors.Is(err, redis.Nil):
		r.count("miss")
	default:
		r.log.Warn().Err(err).Str("email", email).Msg("user cache lookup failed, reading store")
		r.count("error")
	}

	user, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	r.store(ctx, user)
	return user, nil
}

// Create always writes through to the wrapped repository and primes the cache
// on success.
func (r *CachedUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := r.next.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	r.store(ctx, created)
	return created, nil
}

func (r *CachedUserRepository) store(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(fromDomain(user))
	if err != nil {
		r.log.Warn().Err(err).Str("email", user.Email).Msg("failed to encode cache entry")
		return
	}
	if err := r.client.Set(ctx, r.key(user.Email), raw, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("email", user.Email).Msg("failed to set user cache entry")
	}
}

func (r *CachedUserRepository) count(result string) {
	if r.lookups != nil {
		r.lookups.WithLabelValues(result).Inc()
	}
}

func (r *CachedUserRepository) key(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

func fromDomain(u *domain.User) cachedUser {
	return cachedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (cu cachedUser) toDomain() *domain.User {
	return &domain.User{
		ID:           cu.ID,
		Name:         cu.Name,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
		Role:         domain.Role(cu.Role),
		CreatedAt:    cu.CreatedAt,
		UpdatedAt:    cu.UpdatedAt,
	}
}
