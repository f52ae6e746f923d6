package domain

import "context"

// Identity is the decoded subject of a verified session token. It reflects the
// claims at issuance time and is never re-read from the user store.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

type identityContextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}
