package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTaxonomyRouter(categories *MockCategoryUseCase, tags *MockTagUseCase) http.Handler {
	handler := NewTaxonomyHandler(categories, tags, logger.New())

	router := setupTestRouter()
	router.GET("/categories", handler.ListCategories)
	router.GET("/categories/:slug", handler.GetCategory)
	router.POST("/admin/categories", handler.CreateCategory)
	router.PUT("/admin/categories/:id", handler.UpdateCategory)
	router.DELETE("/admin/categories/:id", handler.DeleteCategory)
	router.GET("/tags", handler.ListTags)
	router.POST("/admin/tags", handler.CreateTag)
	router.DELETE("/admin/tags/:id", handler.DeleteTag)
	return router
}

func TestListCategories(t *testing.T) {
	categories := new(MockCategoryUseCase)
	router := newTaxonomyRouter(categories, new(MockTagUseCase))

	categories.On("List", mock.Anything).Return([]*entity.Category{
		{ID: "1", Name: "Redação", Slug: "redacao"},
		{ID: "2", Name: "Vestibular", Slug: "vestibular"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, "redacao", response[0]["slug"])
}

func TestGetCategory_NotFound(t *testing.T) {
	categories := new(MockCategoryUseCase)
	router := newTaxonomyRouter(categories, new(MockTagUseCase))

	categories.On("GetBySlug", mock.Anything, "nada").
		Return(nil, fmt.Errorf("failed to get category nada: %w", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories/nada", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	categories := new(MockCategoryUseCase)
	router := newTaxonomyRouter(categories, new(MockTagUseCase))

	categories.On("Create", mock.Anything, usecase.CreateCategoryInput{Name: "Redação"}).
		Return(nil, fmt.Errorf("%w: categories_slug_key", entity.ErrDuplicate))

	body, _ := json.Marshal(map[string]string{"name": "Redação"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	categories.AssertExpectations(t)
}

func TestUpdateCategory_Success(t *testing.T) {
	categories := new(MockCategoryUseCase)
	router := newTaxonomyRouter(categories, new(MockTagUseCase))

	color := "#ff0000"
	categories.On("Update", mock.Anything, "cat-1", usecase.UpdateCategoryInput{Color: &color}).
		Return(&entity.Category{ID: "cat-1", Name: "Redação", Slug: "redacao", Color: &color}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/categories/cat-1", bytes.NewBufferString(`{"color":"#ff0000"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "#ff0000", response["color"])
}

func TestDeleteCategory_Success(t *testing.T) {
	categories := new(MockCategoryUseCase)
	router := newTaxonomyRouter(categories, new(MockTagUseCase))

	categories.On("Delete", mock.Anything, "cat-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/categories/cat-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	categories.AssertExpectations(t)
}

func TestTags(t *testing.T) {
	tags := new(MockTagUseCase)
	router := newTaxonomyRouter(new(MockCategoryUseCase), tags)

	tags.On("List", mock.Anything).Return([]entity.Tag{{ID: "t1", Name: "ENEM", Slug: "enem"}}, nil)
	tags.On("Create", mock.Anything, usecase.CreateTagInput{Name: "Fuvest"}).
		Return(&entity.Tag{ID: "t2", Name: "Fuvest", Slug: "fuvest"}, nil)
	tags.On("Delete", mock.Anything, "t1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/tags", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"enem"`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/admin/tags", bytes.NewBufferString(`{"name":"Fuvest"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/admin/tags/t1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	tags.AssertExpectations(t)
}
