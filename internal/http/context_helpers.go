package httpx

import (
	"context"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
)

// userKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware agree.
type userKey struct{}

// SetUserInContext returns a child context carrying the authenticated user.
func SetUserInContext(ctx context.Context, user domainauth.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the authenticated user from the context and
// whether one is present.
func GetUserFromContext(ctx context.Context) (domainauth.AuthenticatedUser, bool) {
	user, ok := ctx.Value(userKey{}).(domainauth.AuthenticatedUser)
	return user, ok
}
