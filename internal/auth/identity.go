package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// State is where an identity is in its resolution lifecycle.
type State int

const (
	StateUnresolved State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unresolved"
	}
}

// Identity is the caller of a request as far as the provider could tell.
// UserID and Email are only set when State is StateAuthenticated.
type Identity struct {
	State  State
	UserID uuid.UUID
	Email  string
}

func (i Identity) Authenticated() bool {
	return i.State == StateAuthenticated
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the stored identity, or an unresolved one.
func IdentityFromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey{}).(Identity); ok {
		return id
	}
	return Identity{State: StateUnresolved}
}
