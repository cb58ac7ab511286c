package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"imersao-completa/internal/entity"
	"imersao-completa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublicListings(t *testing.T) {
	mockUseCase := new(MockPublicPostUseCase)
	handler := NewPublicHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/featured", handler.Featured)
	router.GET("/posts/recent", handler.Recent)
	router.GET("/posts/popular", handler.Popular)

	mockUseCase.On("Featured", mock.Anything).Return([]*entity.Post{{ID: "a"}, {ID: "b"}}, nil)
	mockUseCase.On("Recent", mock.Anything).Return([]*entity.Post{{ID: "c"}}, nil)
	mockUseCase.On("Popular", mock.Anything).Return(nil, nil)

	for path, want := range map[string]int{
		"/posts/featured": 2,
		"/posts/recent":   1,
		"/posts/popular":  0,
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		var response []map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), path)
		assert.Len(t, response, want, path)
	}

	mockUseCase.AssertExpectations(t)
}

func TestPublicSearch_PassesQuery(t *testing.T) {
	mockUseCase := new(MockPublicPostUseCase)
	handler := NewPublicHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.Search)

	mockUseCase.On("Search", mock.Anything, "redação").Return([]*entity.Post{{ID: "a"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts?search=reda%C3%A7%C3%A3o", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPublicByCategory_UnknownCategoryIsEmpty(t *testing.T) {
	mockUseCase := new(MockPublicPostUseCase)
	handler := NewPublicHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/categories/:slug/posts", handler.ByCategory)

	mockUseCase.On("ByCategory", mock.Anything, "nada").Return([]*entity.Post{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories/nada/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPublicBySlug(t *testing.T) {
	mockUseCase := new(MockPublicPostUseCase)
	handler := NewPublicHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/slug/:slug", handler.BySlug)

	mockUseCase.On("BySlug", mock.Anything, "como-estudar").
		Return(&entity.Post{ID: "post-1", Slug: "como-estudar", Status: entity.StatusPublished}, nil)
	mockUseCase.On("BySlug", mock.Anything, "rascunho").
		Return(nil, fmt.Errorf("failed to get post rascunho: %w", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/slug/como-estudar", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/posts/slug/rascunho", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicRelated(t *testing.T) {
	mockUseCase := new(MockPublicPostUseCase)
	handler := NewPublicHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/related", handler.Related)

	mockUseCase.On("Related", mock.Anything, "post-1", "cat-1").Return([]*entity.Post{{ID: "post-2"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/related?category_id=cat-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPublicRelated_MalformedID(t *testing.T) {
	mockUseCase := new(MockPublicPostUseCase)
	handler := NewPublicHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/related", handler.Related)

	malformed := fmt.Errorf("failed to list public posts: %w",
		fmt.Errorf("%w: invalid input syntax for type uuid: \"abc\"", entity.ErrNotFound))
	mockUseCase.On("Related", mock.Anything, "abc", "").Return(nil, malformed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/abc/related", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "uuid")
	mockUseCase.AssertExpectations(t)
}
