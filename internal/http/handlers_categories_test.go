package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

type fakeCategoryService struct {
	categories []model.Category
	category   model.Category
	err        error
	deletedID  string
}

func (f *fakeCategoryService) List(_ context.Context) ([]model.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryService) GetBySlug(_ context.Context, _ string) (model.Category, error) {
	return f.category, f.err
}

func (f *fakeCategoryService) Create(_ context.Context, _ domainauth.AuthenticatedUser, _ model.CreateCategoryRequest, _ string) (model.Category, error) {
	return f.category, f.err
}

func (f *fakeCategoryService) Update(_ context.Context, _ domainauth.AuthenticatedUser, _ string, _ model.UpdateCategoryRequest, _ string) (model.Category, error) {
	return f.category, f.err
}

func (f *fakeCategoryService) Delete(_ context.Context, _ domainauth.AuthenticatedUser, id string, _ string) error {
	f.deletedID = id
	return f.err
}

func TestCategoryHandlersList(t *testing.T) {
	svc := &fakeCategoryService{
		categories: []model.Category{
			{ID: "c-1", Name: "Gobernanza de IA", Slug: "gobernanza-de-ia", PostCount: 3},
			{ID: "c-2", Name: "Privacidad", Slug: "privacidad"},
		},
	}
	h := &CategoryHandlers{Svc: svc}

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string][]model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body["categories"], 2)
	assert.Equal(t, 3, body["categories"][0].PostCount)
}

func TestCategoryHandlersGetBySlugNotFound(t *testing.T) {
	svc := &fakeCategoryService{err: apperrors.NotFound("category not found")}
	h := &CategoryHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/categories/nope", nil)
	r.SetPathValue("slug", "nope")
	h.GetBySlug(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandlersCreate(t *testing.T) {
	svc := &fakeCategoryService{
		category: model.Category{ID: "c-1", Name: "Gobernanza de IA", Slug: "gobernanza-de-ia"},
	}
	h := &CategoryHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"name":"Gobernanza de IA"}`))
	r = r.WithContext(SetUserInContext(r.Context(), testAdmin))
	h.Create(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "gobernanza-de-ia", body["category"].Slug)
}

func TestCategoryHandlersDeleteConflict(t *testing.T) {
	svc := &fakeCategoryService{err: apperrors.Conflict("category still has posts assigned")}
	h := &CategoryHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/c-1", nil)
	r.SetPathValue("id", "c-1")
	r = r.WithContext(SetUserInContext(r.Context(), testAdmin))
	h.Delete(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "conflict", body["code"])
}

func TestCategoryHandlersDelete(t *testing.T) {
	svc := &fakeCategoryService{}
	h := &CategoryHandlers{Svc: svc}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/c-2", nil)
	r.SetPathValue("id", "c-2")
	r = r.WithContext(SetUserInContext(r.Context(), testAdmin))
	h.Delete(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c-2", svc.deletedID)
}
