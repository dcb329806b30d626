package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

// CategoryServiceInterface defines the interface for category service operations.
type CategoryServiceInterface interface {
	List(ctx context.Context) ([]model.Category, error)
	GetBySlug(ctx context.Context, slug string) (model.Category, error)
	Create(ctx context.Context, actor domainauth.AuthenticatedUser, req model.CreateCategoryRequest, clientIP string) (model.Category, error)
	Update(ctx context.Context, actor domainauth.AuthenticatedUser, id string, req model.UpdateCategoryRequest, clientIP string) (model.Category, error)
	Delete(ctx context.Context, actor domainauth.AuthenticatedUser, id string, clientIP string) error
}

// CategoryHandlers provides HTTP handlers for public and admin category operations.
type CategoryHandlers struct {
	Svc    CategoryServiceInterface
	Logger *slog.Logger
}

func (h *CategoryHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// List handles the public category listing endpoint.
// GET /api/categories.
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// ListAdmin handles the admin category listing endpoint. The payload is
// the same as the public listing; the route is gated so dashboard
// clients fail fast when the session is gone.
// GET /api/admin/categories.
func (h *CategoryHandlers) ListAdmin(w http.ResponseWriter, r *http.Request) {
	h.List(w, r)
}

// GetBySlug handles the public single-category endpoint.
// GET /api/categories/{slug}.
func (h *CategoryHandlers) GetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"category": category})
}

// Create handles the admin category creation endpoint.
// POST /api/admin/categories.
func (h *CategoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required"})
		return
	}

	var req model.CreateCategoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	category, err := h.Svc.Create(r.Context(), actor, req, ClientIP(r))
	if err != nil {
		if code := apperrors.GetCode(err); code == "" || code == apperrors.ErrCodeInternal {
			h.logger().ErrorContext(r.Context(), "category create failed", "err", err)
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{"category": category})
}

// Update handles the admin category update endpoint.
// PUT /api/admin/categories/{id}.
func (h *CategoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required"})
		return
	}

	var req model.UpdateCategoryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	category, err := h.Svc.Update(r.Context(), actor, r.PathValue("id"), req, ClientIP(r))
	if err != nil {
		if code := apperrors.GetCode(err); code == "" || code == apperrors.ErrCodeInternal {
			h.logger().ErrorContext(r.Context(), "category update failed", "err", err)
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"category": category})
}

// Delete handles the admin category deletion endpoint. Categories that
// still have posts assigned refuse deletion with a conflict.
// DELETE /api/admin/categories/{id}.
func (h *CategoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := GetUserFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required"})
		return
	}

	if err := h.Svc.Delete(r.Context(), actor, r.PathValue("id"), ClientIP(r)); err != nil {
		if code := apperrors.GetCode(err); code == "" || code == apperrors.ErrCodeInternal {
			h.logger().ErrorContext(r.Context(), "category delete failed", "err", err)
		}
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
