package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dataetica/dataetica-api/internal/data"
	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/mocks"
)

var testActor = domainauth.AuthenticatedUser{
	ID:    "author-1",
	Email: "admin@dataetica.example",
	Name:  "Admin",
	Role:  domainauth.RoleAdmin,
}

func newPostService(t *testing.T) (*mocks.MockPostRepository, *mocks.MockPostCache, *PostService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	posts := mocks.NewMockPostRepository(ctrl)
	cache := mocks.NewMockPostCache(ctrl)

	svc := NewPostService(PostServiceOptions{
		Posts: posts,
		Cache: cache,
		Now:   func() time.Time { return fixedNow },
	})
	return posts, cache, svc
}

func TestPostService_Create_AssignsSlug(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	req := model.CreatePostRequest{
		Title:       "Ética y Algoritmos",
		Excerpt:     "Una introducción.",
		Content:     "## Intro\n\nTexto.",
		CategoryIDs: []string{"cat-1"},
	}

	posts.EXPECT().SlugExists(ctx, "tica-y-algoritmos").Return(false, nil)
	posts.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p data.CreateParams) (model.Post, error) {
			assert.Equal(t, "tica-y-algoritmos", p.Slug)
			assert.Equal(t, model.StatusDraft, p.Status)
			assert.Nil(t, p.PublishedAt)
			assert.Equal(t, "author-1", p.AuthorID)
			return model.Post{ID: "p-1", Slug: p.Slug, Status: p.Status}, nil
		})
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	post, err := svc.Create(ctx, testActor, req, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "p-1", post.ID)
}

func TestPostService_Create_SlugCollisionGetsSuffix(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	req := model.CreatePostRequest{
		Title:       "Hello World",
		Excerpt:     "x",
		Content:     "y",
		CategoryIDs: []string{"cat-1"},
	}
	wantSlug := "hello-world-" + strconv.FormatInt(fixedNow.UnixMilli(), 10)

	posts.EXPECT().SlugExists(ctx, "hello-world").Return(true, nil)
	posts.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p data.CreateParams) (model.Post, error) {
			assert.Equal(t, wantSlug, p.Slug)
			return model.Post{ID: "p-2", Slug: p.Slug}, nil
		})
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	_, err := svc.Create(ctx, testActor, req, "1.2.3.4")
	require.NoError(t, err)
}

func TestPostService_Create_PublishedStampsTime(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	req := model.CreatePostRequest{
		Title:       "Launch",
		Excerpt:     "x",
		Content:     "y",
		Status:      model.StatusPublished,
		CategoryIDs: []string{"cat-1"},
	}

	posts.EXPECT().SlugExists(ctx, "launch").Return(false, nil)
	posts.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p data.CreateParams) (model.Post, error) {
			require.NotNil(t, p.PublishedAt)
			assert.Equal(t, fixedNow, *p.PublishedAt)
			return model.Post{ID: "p-3", Slug: p.Slug}, nil
		})
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	_, err := svc.Create(ctx, testActor, req, "1.2.3.4")
	require.NoError(t, err)
}

func TestPostService_Create_SanitizesContent(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	req := model.CreatePostRequest{
		Title:       "Safe <script>Title",
		Excerpt:     "plain",
		Content:     "before <script>alert(1)</script> after",
		CategoryIDs: []string{"cat-1"},
	}

	posts.EXPECT().SlugExists(ctx, gomock.Any()).Return(false, nil)
	posts.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p data.CreateParams) (model.Post, error) {
			assert.Equal(t, "Safe scriptTitle", p.Title)
			assert.Equal(t, "before  after", p.Content)
			return model.Post{ID: "p-4", Slug: p.Slug}, nil
		})
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	_, err := svc.Create(ctx, testActor, req, "1.2.3.4")
	require.NoError(t, err)
}

func TestPostService_Update_FirstPublishStampsTime(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	published := model.StatusPublished
	existing := model.Post{ID: "p-1", Slug: "my-post", Status: model.StatusDraft}

	posts.EXPECT().GetByID(ctx, "p-1").Return(existing, nil)
	posts.EXPECT().Update(ctx, "p-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p data.UpdateParams) (model.Post, error) {
			require.NotNil(t, p.PublishedAt)
			assert.Equal(t, fixedNow, *p.PublishedAt)
			return model.Post{ID: "p-1", Slug: "my-post", Status: published}, nil
		})
	cache.EXPECT().InvalidatePost(ctx, "my-post").Return(nil)
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	_, err := svc.Update(ctx, testActor, "p-1", model.UpdatePostRequest{Status: &published}, "1.2.3.4")
	require.NoError(t, err)
}

func TestPostService_Update_RepublishKeepsOriginalTime(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	published := model.StatusPublished
	firstPublish := fixedNow.Add(-48 * time.Hour)
	existing := model.Post{ID: "p-1", Slug: "my-post", Status: model.StatusArchived, PublishedAt: &firstPublish}

	posts.EXPECT().GetByID(ctx, "p-1").Return(existing, nil)
	posts.EXPECT().Update(ctx, "p-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p data.UpdateParams) (model.Post, error) {
			assert.Nil(t, p.PublishedAt)
			return existing, nil
		})
	cache.EXPECT().InvalidatePost(ctx, "my-post").Return(nil)
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	_, err := svc.Update(ctx, testActor, "p-1", model.UpdatePostRequest{Status: &published}, "1.2.3.4")
	require.NoError(t, err)
}

func TestPostService_GetPublishedBySlug(t *testing.T) {
	t.Parallel()

	t.Run("cache hit skips repository", func(t *testing.T) {
		t.Parallel()
		_, cache, svc := newPostService(t)
		ctx := context.Background()
		cached := model.Post{ID: "p-1", Slug: "cached", Status: model.StatusPublished}

		cache.EXPECT().GetPost(ctx, "cached").Return(cached, true, nil)

		post, err := svc.GetPublishedBySlug(ctx, "cached")
		require.NoError(t, err)
		assert.Equal(t, "p-1", post.ID)
	})

	t.Run("draft is reported as missing", func(t *testing.T) {
		t.Parallel()
		posts, cache, svc := newPostService(t)
		ctx := context.Background()

		cache.EXPECT().GetPost(ctx, "hidden").Return(model.Post{}, false, nil)
		posts.EXPECT().GetBySlug(ctx, "hidden").
			Return(model.Post{ID: "p-2", Slug: "hidden", Status: model.StatusDraft}, nil)

		_, err := svc.GetPublishedBySlug(ctx, "hidden")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("miss populates cache", func(t *testing.T) {
		t.Parallel()
		posts, cache, svc := newPostService(t)
		ctx := context.Background()
		stored := model.Post{ID: "p-3", Slug: "live", Status: model.StatusPublished}

		cache.EXPECT().GetPost(ctx, "live").Return(model.Post{}, false, nil)
		posts.EXPECT().GetBySlug(ctx, "live").Return(stored, nil)
		cache.EXPECT().SetPost(ctx, stored, defaultPostCacheTTL).Return(nil)

		post, err := svc.GetPublishedBySlug(ctx, "live")
		require.NoError(t, err)
		assert.Equal(t, "p-3", post.ID)
	})
}

func TestPostService_ListPublished_ForcesPublishedFilter(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	cache.EXPECT().GetPage(ctx, gomock.Any()).Return(model.PostPage{}, false, nil)
	posts.EXPECT().List(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.ListPostsOptions) (model.PostPage, error) {
			assert.Equal(t, model.StatusPublished, opts.Status)
			assert.Equal(t, 1, opts.Page)
			return model.PostPage{Pagination: model.Pagination{Page: 1}}, nil
		})
	cache.EXPECT().SetPage(ctx, gomock.Any(), gomock.Any(), defaultPageCacheTTL).Return(nil)

	// Callers cannot smuggle another status into the public listing.
	_, err := svc.ListPublished(ctx, model.ListPostsOptions{Status: model.StatusDraft})
	require.NoError(t, err)
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()
	posts, cache, svc := newPostService(t)
	ctx := context.Background()

	posts.EXPECT().GetByID(ctx, "p-1").
		Return(model.Post{ID: "p-1", Slug: "doomed"}, nil)
	posts.EXPECT().Delete(ctx, "p-1").Return(true, nil)
	cache.EXPECT().InvalidatePost(ctx, "doomed").Return(nil)
	cache.EXPECT().InvalidateLists(ctx).Return(nil)

	require.NoError(t, svc.Delete(ctx, testActor, "p-1", "1.2.3.4"))
}
