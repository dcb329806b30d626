package ports

// Package ports defines interfaces (hexagonal ports) for auth and content
// behavior. Implementations live in internal/adapters and internal/data;
// orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
)

// TokenCodec issues and verifies signed session tokens.
type TokenCodec interface {
	// Issue signs a token for the given user, valid from now for the
	// configured lifetime. Returns the compact token and its expiry.
	Issue(user domainauth.AuthenticatedUser, now time.Time) (token string, expiresAt time.Time, err error)

	// Verify parses and validates a compact token, returning its claims.
	// Expired, malformed, or badly signed tokens all fail verification.
	Verify(token string, now time.Time) (domainauth.Claims, error)
}

// UserStore loads user accounts for authentication.
type UserStore interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuditSink records administrative actions. Implementations must not
// block request handling; failures are logged, never surfaced.
type AuditSink interface {
	Record(ctx context.Context, rec model.AuditRecord) error
}

// PostCache caches rendered public post payloads keyed by slug.
// A miss returns (zero, false, nil).
type PostCache interface {
	GetPost(ctx context.Context, slug string) (model.Post, bool, error)
	SetPost(ctx context.Context, post model.Post, ttl time.Duration) error
	InvalidatePost(ctx context.Context, slug string) error
	InvalidateLists(ctx context.Context) error
	GetPage(ctx context.Context, key string) (model.PostPage, bool, error)
	SetPage(ctx context.Context, key string, page model.PostPage, ttl time.Duration) error
}
