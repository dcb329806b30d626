package core

import (
	"context"

	"github.com/dataetica/dataetica-api/internal/data"
	"github.com/dataetica/dataetica-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal
// architecture). Service implementations depend on these interfaces, not
// on the concrete repositories.

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, p data.CreateParams) (model.Post, error)
	GetByID(ctx context.Context, id string) (model.Post, error)
	GetBySlug(ctx context.Context, slug string) (model.Post, error)
	List(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error)
	Update(ctx context.Context, id string, p data.UpdateParams) (model.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(ctx context.Context, name, slug string, description *string) (model.Category, error)
	GetByID(ctx context.Context, id string) (model.Category, error)
	GetBySlug(ctx context.Context, slug string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id string, name, slug, description *string) (model.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// UserRepository defines the interface for user account data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
}

// AuditRepository defines the interface for the audit trail.
type AuditRepository interface {
	Record(ctx context.Context, rec model.AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditRecord, error)
}
