package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dataetica/dataetica-api/internal/core"
	"github.com/dataetica/dataetica-api/internal/data"
	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/ports"
)

const (
	defaultPostCacheTTL = 5 * time.Minute
	defaultPageCacheTTL = time.Minute
)

// PostServiceOptions groups dependencies for PostService.
type PostServiceOptions struct {
	Posts  core.PostRepository
	Cache  ports.PostCache
	Audit  *AuditService
	Logger *slog.Logger
	Now    func() time.Time

	// PostTTL and PageTTL bound cache entry lifetimes; zero values
	// fall back to the defaults.
	PostTTL time.Duration
	PageTTL time.Duration
}

// PostService orchestrates post CRUD, slug assignment, input
// sanitization, and the public read cache.
type PostService struct {
	posts   core.PostRepository
	cache   ports.PostCache
	audit   *AuditService
	logger  *slog.Logger
	now     func() time.Time
	postTTL time.Duration
	pageTTL time.Duration
}

// NewPostService constructs a PostService. Cache may be nil, in which
// case reads always hit the database.
func NewPostService(opts PostServiceOptions) *PostService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	postTTL := opts.PostTTL
	if postTTL <= 0 {
		postTTL = defaultPostCacheTTL
	}
	pageTTL := opts.PageTTL
	if pageTTL <= 0 {
		pageTTL = defaultPageCacheTTL
	}
	return &PostService{
		posts:   opts.Posts,
		cache:   opts.Cache,
		audit:   opts.Audit,
		logger:  logger.With("component", "posts"),
		now:     now,
		postTTL: postTTL,
		pageTTL: pageTTL,
	}
}

// ListPublished returns a page of published posts for public readers.
// Pages are cached briefly; cache failures fall through to the database.
func (s *PostService) ListPublished(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error) {
	opts.Status = model.StatusPublished
	opts.Normalize()

	key := pageKey(opts)
	if s.cache != nil {
		if page, ok, err := s.cache.GetPage(ctx, key); err != nil {
			s.logger.WarnContext(ctx, "page cache read failed", "err", err)
		} else if ok {
			return page, nil
		}
	}

	page, err := s.posts.List(ctx, opts)
	if err != nil {
		return model.PostPage{}, err
	}
	if s.cache != nil {
		if err := s.cache.SetPage(ctx, key, page, s.pageTTL); err != nil {
			s.logger.WarnContext(ctx, "page cache write failed", "err", err)
		}
	}
	return page, nil
}

// GetPublishedBySlug returns a single published post for public readers.
// Draft and archived posts are indistinguishable from missing ones.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug string) (model.Post, error) {
	if s.cache != nil {
		if post, ok, err := s.cache.GetPost(ctx, slug); err != nil {
			s.logger.WarnContext(ctx, "post cache read failed", "slug", slug, "err", err)
		} else if ok {
			return post, nil
		}
	}

	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return model.Post{}, err
	}
	if post.Status != model.StatusPublished {
		return model.Post{}, apperrors.NotFound("post not found")
	}
	if s.cache != nil {
		if err := s.cache.SetPost(ctx, post, s.postTTL); err != nil {
			s.logger.WarnContext(ctx, "post cache write failed", "slug", slug, "err", err)
		}
	}
	return post, nil
}

// List returns a page of posts with any status, for the admin surface.
func (s *PostService) List(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return model.PostPage{}, apperrors.Validationf("invalid status %q", opts.Status)
	}
	return s.posts.List(ctx, opts)
}

// GetByID returns a post with any status, for the admin surface.
func (s *PostService) GetByID(ctx context.Context, id string) (model.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Create sanitizes and stores a new post authored by actor. The slug is
// derived from the title; on collision an epoch-millisecond suffix is
// appended.
func (s *PostService) Create(
	ctx context.Context,
	actor domainauth.AuthenticatedUser,
	req model.CreatePostRequest,
	clientIP string,
) (model.Post, error) {
	if err := req.Validate(); err != nil {
		return model.Post{}, apperrors.Validation(err.Error())
	}

	slug, err := s.assignSlug(ctx, req.Title)
	if err != nil {
		return model.Post{}, err
	}

	params := data.CreateParams{
		Title:       SanitizeText(req.Title, 200),
		Slug:        slug,
		Excerpt:     SanitizeText(req.Excerpt, 500),
		Content:     SanitizeMarkdown(req.Content),
		Status:      req.Status,
		AuthorID:    actor.ID,
		CategoryIDs: req.CategoryIDs,
	}
	if req.CoverImage != nil {
		params.CoverImage = SanitizeImageURL(*req.CoverImage)
	}
	if req.Status == model.StatusPublished {
		now := s.now().UTC()
		params.PublishedAt = &now
	}

	post, err := s.posts.Create(ctx, params)
	if err != nil {
		return model.Post{}, err
	}

	if s.audit != nil {
		s.audit.Log(model.AuditPostCreate, actor, clientIP, map[string]string{
			"post_id": post.ID, "slug": post.Slug,
		})
	}
	s.invalidateLists(ctx)
	return post, nil
}

// Update sanitizes and applies changes to a post. Publishing a post for
// the first time stamps its publication time; the slug never changes.
func (s *PostService) Update(
	ctx context.Context,
	actor domainauth.AuthenticatedUser,
	id string,
	req model.UpdatePostRequest,
	clientIP string,
) (model.Post, error) {
	if err := req.Validate(); err != nil {
		return model.Post{}, apperrors.Validation(err.Error())
	}

	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return model.Post{}, err
	}

	params := data.UpdateParams{CategoryIDs: req.CategoryIDs}
	if req.Title != nil {
		t := SanitizeText(*req.Title, 200)
		params.Title = &t
	}
	if req.Excerpt != nil {
		e := SanitizeText(*req.Excerpt, 500)
		params.Excerpt = &e
	}
	if req.Content != nil {
		c := SanitizeMarkdown(*req.Content)
		params.Content = &c
	}
	if req.CoverImage != nil {
		if cleaned := SanitizeImageURL(*req.CoverImage); cleaned != nil {
			params.CoverImage = cleaned
		} else {
			empty := ""
			params.CoverImage = &empty
		}
	}
	if req.Status != nil {
		params.Status = req.Status
		if *req.Status == model.StatusPublished && existing.PublishedAt == nil {
			now := s.now().UTC()
			params.PublishedAt = &now
		}
	}

	post, err := s.posts.Update(ctx, id, params)
	if err != nil {
		return model.Post{}, err
	}

	if s.audit != nil {
		s.audit.Log(model.AuditPostUpdate, actor, clientIP, map[string]string{
			"post_id": post.ID, "slug": post.Slug,
		})
	}
	s.invalidatePost(ctx, existing.Slug)
	return post, nil
}

// Delete removes a post.
func (s *PostService) Delete(
	ctx context.Context,
	actor domainauth.AuthenticatedUser,
	id string,
	clientIP string,
) error {
	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("post not found")
	}

	if s.audit != nil {
		s.audit.Log(model.AuditPostDelete, actor, clientIP, map[string]string{
			"post_id": id, "slug": existing.Slug,
		})
	}
	s.invalidatePost(ctx, existing.Slug)
	return nil
}

// assignSlug derives a slug from the title, appending an
// epoch-millisecond suffix when the plain slug is taken.
func (s *PostService) assignSlug(ctx context.Context, title string) (string, error) {
	slug := model.Slugify(title)
	if slug == "" {
		slug = "post"
	}
	taken, err := s.posts.SlugExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if taken {
		slug = slug + "-" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	return slug, nil
}

func pageKey(opts model.ListPostsOptions) string {
	return fmt.Sprintf("p=%d&n=%d&c=%s&q=%s", opts.Page, opts.PageSize, opts.Category, opts.Search)
}

func (s *PostService) invalidatePost(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePost(ctx, slug); err != nil {
		s.logger.WarnContext(ctx, "post cache invalidation failed", "slug", slug, "err", err)
	}
	s.invalidateLists(ctx)
}

func (s *PostService) invalidateLists(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLists(ctx); err != nil {
		s.logger.WarnContext(ctx, "list cache invalidation failed", "err", err)
	}
}
