package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// PostServiceInterface defines the interface for post service operations.
type PostServiceInterface interface {
	ListPublished(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error)
	GetPublishedBySlug(ctx context.Context, slug string) (model.Post, error)
	List(ctx context.Context, opts model.ListPostsOptions) (model.PostPage, error)
	GetByID(ctx context.Context, id string) (model.Post, error)
	Create(ctx context.Context, actor domainauth.AuthenticatedUser, req model.CreatePostRequest, clientIP string) (model.Post, error)
	Update(ctx context.Context, actor domainauth.AuthenticatedUser, id string, req model.UpdatePostRequest, clientIP string) (model.Post, error)
	Delete(ctx context.Context, actor domainauth.AuthenticatedUser, id string, clientIP string) error
}

// PostHandlers provides HTTP handlers for public and admin post operations.
type PostHandlers struct {
	Svc    PostServiceInterface
	Logger *slog.Logger
}

func (h *PostHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// ListPublished handles the public article listing endpoint.
// GET /api/posts.
func (h *PostHandlers) ListPublished(w http.ResponseWriter, r *http.Request) {
	page, err := h.Svc.ListPublished(r.Context(), ParseListOptions(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// GetBySlug handles the public article read endpoint.
// GET /api/posts/{slug}.
func (h *PostHandlers) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"post": post})
}

// List handles the admin post listing endpoint, covering every status.
// GET /api/admin/posts.
func (h *PostHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Svc.List(r.Context(), ParseListOptions(r))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles the admin single-post endpoint.
// GET /api/admin/posts/{id}.
func (h *PostHandlers) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Create handles the admin post creation endpoint.
// POST /api/admin/posts.
func (h *PostHandlers) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required"})
		return
	}

	var req model.CreatePostRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.Svc.Create(r.Context(), actor, req, ClientIP(r))
	if err != nil {
		if code := apperrors.GetCode(err); code == "" || code == apperrors.ErrCodeInternal {
			h.logger().ErrorContext(r.Context(), "post create failed", "err", err)
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"post": post})
}

// Update handles the admin post update endpoint.
// PUT /api/admin/posts/{id}.
func (h *PostHandlers) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required"})
		return
	}

	var req model.UpdatePostRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	post, err := h.Svc.Update(r.Context(), actor, r.PathValue("id"), req, ClientIP(r))
	if err != nil {
		if code := apperrors.GetCode(err); code == "" || code == apperrors.ErrCodeInternal {
			h.logger().ErrorContext(r.Context(), "post update failed", "err", err)
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Delete handles the admin post deletion endpoint.
// DELETE /api/admin/posts/{id}.
func (h *PostHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required"})
		return
	}

	if err := h.Svc.Delete(r.Context(), actor, r.PathValue("id"), ClientIP(r)); err != nil {
		if code := apperrors.GetCode(err); code == "" || code == apperrors.ErrCodeInternal {
			h.logger().ErrorContext(r.Context(), "post delete failed", "err", err)
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
