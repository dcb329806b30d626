package service

import (
	"context"
	"log/slog"

	"github.com/dataetica/dataetica-api/internal/core"
	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// CategoryServiceOptions groups dependencies for CategoryService.
type CategoryServiceOptions struct {
	Categories core.CategoryRepository
	Audit      *AuditService
	Logger     *slog.Logger
}

// CategoryService orchestrates category CRUD and slug assignment.
type CategoryService struct {
	categories core.CategoryRepository
	audit      *AuditService
	logger     *slog.Logger
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(opts CategoryServiceOptions) *CategoryService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryService{
		categories: opts.Categories,
		audit:      opts.Audit,
		logger:     logger.With("component", "categories"),
	}
}

// List returns all categories with their post counts.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

// GetBySlug returns one category by slug.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (model.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

// Create stores a new category with a slug derived from its name.
func (s *CategoryService) Create(
	ctx context.Context,
	actor domainauth.AuthenticatedUser,
	req model.CreateCategoryRequest,
	clientIP string,
) (model.Category, error) {
	if err := req.Validate(); err != nil {
		return model.Category{}, apperrors.Validation(err.Error())
	}

	name := SanitizeText(req.Name, 100)
	slug := model.Slugify(name)
	if slug == "" {
		return model.Category{}, apperrors.ValidationField("name", "name must contain letters or digits")
	}

	cat, err := s.categories.Create(ctx, name, slug, req.Description)
	if err != nil {
		return model.Category{}, err
	}

	if s.audit != nil {
		s.audit.Log(model.AuditCategoryCreate, actor, clientIP, map[string]string{
			"category_id": cat.ID, "slug": cat.Slug,
		})
	}
	return cat, nil
}

// Update applies changes to a category. Renaming regenerates the slug.
func (s *CategoryService) Update(
	ctx context.Context,
	actor domainauth.AuthenticatedUser,
	id string,
	req model.UpdateCategoryRequest,
	clientIP string,
) (model.Category, error) {
	if err := req.Validate(); err != nil {
		return model.Category{}, apperrors.Validation(err.Error())
	}

	var name, slug *string
	if req.Name != nil {
		n := SanitizeText(*req.Name, 100)
		sl := model.Slugify(n)
		if sl == "" {
			return model.Category{}, apperrors.ValidationField("name", "name must contain letters or digits")
		}
		name, slug = &n, &sl
	}

	cat, err := s.categories.Update(ctx, id, name, slug, req.Description)
	if err != nil {
		return model.Category{}, err
	}

	if s.audit != nil {
		s.audit.Log(model.AuditCategoryUpdate, actor, clientIP, map[string]string{
			"category_id": cat.ID, "slug": cat.Slug,
		})
	}
	return cat, nil
}

// Delete removes a category. Categories still referenced by posts are
// refused with a conflict.
func (s *CategoryService) Delete(
	ctx context.Context,
	actor domainauth.AuthenticatedUser,
	id string,
	clientIP string,
) error {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat.PostCount > 0 {
		return apperrors.Conflict("category still has posts assigned")
	}

	ok, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("category not found")
	}

	if s.audit != nil {
		s.audit.Log(model.AuditCategoryDelete, actor, clientIP, map[string]string{
			"category_id": id, "slug": cat.Slug,
		})
	}
	return nil
}
